package sales

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/B1ockchainEngineer/Software-Maintenance/internal/modules/stock"
)

// Handler exposes cart HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", h.listCart)                 // GET    /api/v1/cart
		r.Post("/", h.addToCart)               // POST   /api/v1/cart
		r.Get("/{order_no}", h.getLine)        // GET    /api/v1/cart/{order_no}
		r.Patch("/{order_no}", h.editLine)     // PATCH  /api/v1/cart/{order_no}
		r.Delete("/{order_no}", h.removeOrder) // DELETE /api/v1/cart/{order_no}
	})
}

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	lines := h.service.ListCart(r.Context())
	if lines == nil {
		lines = []*OrderLine{}
	}
	respond(w, http.StatusOK, lines)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	line, err := h.service.AddToCart(r.Context(), req.ProductID, req.Qty)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, line)
}

func (h *Handler) getLine(w http.ResponseWriter, r *http.Request) {
	orderNo, err := strconv.Atoi(chi.URLParam(r, "order_no"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid order number"})
		return
	}
	line, err := h.service.FindLine(r.Context(), orderNo)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, line)
}

func (h *Handler) editLine(w http.ResponseWriter, r *http.Request) {
	orderNo, err := strconv.Atoi(chi.URLParam(r, "order_no"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid order number"})
		return
	}
	var req EditOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	dir, err := ParseDirection(req.Direction)
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	line, err := h.service.EditOrderQuantity(r.Context(), orderNo, req.Delta, dir)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, line)
}

func (h *Handler) removeOrder(w http.ResponseWriter, r *http.Request) {
	orderNo, err := strconv.Atoi(chi.URLParam(r, "order_no"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid order number"})
		return
	}
	if err := h.service.RemoveOrder(r.Context(), orderNo); err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "removed"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrLineNotFound), errors.Is(err, stock.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidQuantity), errors.Is(err, ErrInvalidDirection):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
