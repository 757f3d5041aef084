package member

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes membership HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/members", func(r chi.Router) {
		r.Get("/", h.list)          // GET    /api/v1/members
		r.Post("/", h.register)     // POST   /api/v1/members
		r.Get("/{id}", h.get)       // GET    /api/v1/members/{id}
		r.Put("/{id}", h.update)    // PUT    /api/v1/members/{id}
		r.Delete("/{id}", h.delete) // DELETE /api/v1/members/{id}
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.ListMembers(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if members == nil {
		members = []*Member{}
	}
	respond(w, http.StatusOK, members)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.RegisterMember(r.Context(), req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusCreated, m)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid member id"})
		return
	}
	m, err := h.service.GetMember(r.Context(), id)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, m)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid member id"})
		return
	}
	var req UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	m, err := h.service.UpdateMember(r.Context(), id, req)
	if err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, m)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid member id"})
		return
	}
	if err := h.service.DeleteMember(r.Context(), id); err != nil {
		respond(w, statusFor(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateIC):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownTier), strings.Contains(err.Error(), "required"):
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
