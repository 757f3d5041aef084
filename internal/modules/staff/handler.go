package staff

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes staff HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/staff", func(r chi.Router) {
		r.Get("/", h.list)      // GET  /api/v1/staff
		r.Post("/", h.register) // POST /api/v1/staff
		r.Get("/{id}", h.get)   // GET  /api/v1/staff/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.ListStaff(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if staff == nil {
		staff = []*Staff{}
	}
	respond(w, http.StatusOK, staff)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	st, err := h.service.RegisterStaff(r.Context(), req)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrDuplicateIC) {
			code = http.StatusConflict
		} else if strings.Contains(err.Error(), "required") {
			code = http.StatusBadRequest
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, st)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid staff id"})
		return
	}
	st, err := h.service.GetStaff(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, ErrNotFound) {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, st)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
