package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coop-sync/internal/core/domain"
)

// handleCreateRetailer decodes a retailer from the request body and
// stores it. The name in the payload is authoritative. On success it
// returns the stored entity with its server-side timestamps filled in.
func (h *Handler) handleCreateRetailer(w http.ResponseWriter, r *http.Request) {
	var rc domain.RetailerConfig
	if err := json.NewDecoder(r.Body).Decode(&rc); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.cfg.CreateRetailer(r.Context(), &rc); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rc)
}

// handleUpdateRetailer overwrites the named retailer with the payload.
// The URL name wins over any name in the body.
func (h *Handler) handleUpdateRetailer(w http.ResponseWriter, r *http.Request) {
	var rc domain.RetailerConfig
	if err := json.NewDecoder(r.Body).Decode(&rc); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	rc.Name = chi.URLParam(r, "name")
	if err := h.cfg.UpdateRetailer(r.Context(), &rc); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rc)
}

func (h *Handler) handleGetRetailer(w http.ResponseWriter, r *http.Request) {
	rc, err := h.cfg.GetRetailer(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rc)
}

func (h *Handler) handleListRetailers(w http.ResponseWriter, r *http.Request) {
	list, err := h.cfg.ListRetailers(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if list == nil {
		list = []domain.RetailerConfig{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteRetailer(w http.ResponseWriter, r *http.Request) {
	if err := h.cfg.DeleteRetailer(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
