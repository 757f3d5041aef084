package ledger

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes ledger HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/ledger", func(r chi.Router) {
		r.Get("/transactions", h.listTransactions) // GET /api/v1/ledger/transactions
		r.Get("/paid-items", h.listPaidItems)      // GET /api/v1/ledger/paid-items
		r.Get("/report", h.report)                 // GET /api/v1/ledger/report
	})
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListTransactions(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if records == nil {
		records = []*TransactionRecord{}
	}
	respond(w, http.StatusOK, records)
}

func (h *Handler) listPaidItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListPaidItems(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if items == nil {
		items = []*PaidItem{}
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.Report(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
