package httpadapter

import (
	"coop-sync/internal/core/port"
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the configuration and scheduler use cases plus a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	cfg      port.ConfigUseCase
	sync     port.SyncUseCase
	export   port.ExportUseCase
	delivery port.DeliveryUseCase
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts the
// use case implementations and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(cfg port.ConfigUseCase, sync port.SyncUseCase, export port.ExportUseCase, delivery port.DeliveryUseCase, logger *slog.Logger) *Handler {
	h := &Handler{cfg: cfg, sync: sync, export: export, delivery: delivery, logger: logger}
	r := chi.NewRouter()

	r.Route("/api", func(r chi.Router) {
		r.Route("/retailers", func(r chi.Router) {
			r.Get("/", h.handleListRetailers)
			r.Post("/", h.handleCreateRetailer)
			r.Get("/{name}", h.handleGetRetailer)
			r.Put("/{name}", h.handleUpdateRetailer)
			r.Delete("/{name}", h.handleDeleteRetailer)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{name}", h.handleGetCampaign)
			r.Put("/{name}", h.handleUpdateCampaign)
			r.Delete("/{name}", h.handleDeleteCampaign)
		})
		r.Route("/scheduler", func(r chi.Router) {
			r.Post("/run_sweep", h.handleRunSweep)
			r.Get("/export_conversions/{name}", h.handleExportConversions)
			r.Post("/deliver_conversions", h.handleDeliverConversions)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
