package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// handleRunSweep triggers one full reconciliation sweep synchronously.
// The scheduler that calls this route treats any 2xx as success;
// per-entity failures are logged inside the sweep and do not fail the
// request.
func (h *Handler) handleRunSweep(w http.ResponseWriter, r *http.Request) {
	if err := h.sync.RunSweep(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleExportConversions streams the named campaign's conversion feed
// as CSV. An inactive campaign or an empty feed yields HTTP 204 so the
// downstream importer skips the cycle.
func (h *Handler) handleExportConversions(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	csv, err := h.export.ExportConversions(r.Context(), name)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if csv == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	if _, err := w.Write([]byte(csv)); err != nil {
		h.logger.Error("write csv response error",
			slog.String("campaign", name), slog.Any("error", err))
	}
}

// handleDeliverConversions uploads pending conversions for every active
// campaign and returns the per-batch report as JSON.
func (h *Handler) handleDeliverConversions(w http.ResponseWriter, r *http.Request) {
	report, err := h.delivery.DeliverAll(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
