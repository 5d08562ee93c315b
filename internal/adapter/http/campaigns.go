package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"coop-sync/internal/core/domain"
)

// handleCreateCampaign decodes a campaign from the request body and
// stores it. The referenced retailer must already exist; a dangling
// reference surfaces as a validation error.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var cc domain.CoopCampaignConfig
	if err := json.NewDecoder(r.Body).Decode(&cc); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.cfg.CreateCampaign(r.Context(), &cc); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, cc)
}

// handleUpdateCampaign overwrites the named campaign with the payload.
// The URL name wins over any name in the body.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var cc domain.CoopCampaignConfig
	if err := json.NewDecoder(r.Body).Decode(&cc); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	cc.Name = chi.URLParam(r, "name")
	if err := h.cfg.UpdateCampaign(r.Context(), &cc); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cc)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	cc, err := h.cfg.GetCampaign(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cc)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.cfg.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if list == nil {
		list = []domain.CoopCampaignConfig{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.cfg.DeleteCampaign(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
