package payment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/member"
)

// Handler exposes settlement HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/payments", func(r chi.Router) {
		r.Post("/settle", h.settle)  // POST /api/v1/payments/settle
		r.Get("/preview", h.preview) // GET  /api/v1/payments/preview?discount_rate=
	})
}

func (h *Handler) settle(w http.ResponseWriter, r *http.Request) {
	var req SettleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var (
		receipt *Receipt
		err     error
	)
	if req.MemberID != nil {
		receipt, err = h.service.SettleForMember(r.Context(), *req.MemberID)
	} else {
		receipt, err = h.service.Settle(r.Context(), req.DiscountRate)
	}
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, receipt)
}

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	rate := 0.0
	if raw := r.URL.Query().Get("discount_rate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": "invalid discount_rate"})
			return
		}
		rate = parsed
	}
	totals, err := h.service.Preview(r.Context(), rate)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, totals)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrEmptyCart):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInvalidDiscountRate):
		return http.StatusBadRequest
	case errors.Is(err, member.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
