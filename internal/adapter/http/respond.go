package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"coop-sync/internal/core/port"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the JSON content type. Encoding failures are
// logged; the status line has already been sent at that point.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors onto HTTP statuses: validation errors
// become 422, missing entities 404, duplicates 409, and warehouse or
// upstream unavailability 502. Everything else is a 500 with the detail
// kept out of the response body.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *port.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorBody{Error: verr.Error()})
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, port.ErrAlreadyExists):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: "already exists"})
	case errors.Is(err, port.ErrUnavailable):
		h.logger.Error("upstream unavailable", slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: "upstream unavailable"})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
