package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"slotserve/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: it decodes requests, delegates to the usecases and maps errors to
// status codes. Authorization for the mutating routes is expected from a
// layer in front of this one.
type Handler struct {
	catalog   port.CatalogUseCase
	serving   port.ServingUseCase
	events    port.EventUseCase
	analytics port.AnalyticsUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured on a new
// chi.Router.
func NewHandler(
	catalog port.CatalogUseCase,
	serving port.ServingUseCase,
	events port.EventUseCase,
	analytics port.AnalyticsUseCase,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		catalog:   catalog,
		serving:   serving,
		events:    events,
		analytics: analytics,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(instrument(logger))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/providers", func(r chi.Router) {
			r.Post("/", h.handleProviderCreate)
			r.Get("/", h.handleProviderList)
			r.Get("/{id}", h.handleProviderGet)
			r.Patch("/{id}", h.handleProviderUpdate)
			r.Delete("/{id}", h.handleProviderDelete)
		})
		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCampaignCreate)
			r.Get("/", h.handleCampaignList)
			r.Get("/{id}", h.handleCampaignGet)
			r.Patch("/{id}", h.handleCampaignUpdate)
			r.Delete("/{id}", h.handleCampaignDelete)
		})
		r.Route("/slots", func(r chi.Router) {
			r.Post("/", h.handleSlotCreate)
			r.Get("/", h.handleSlotList)
			r.Get("/{id}", h.handleSlotGet)
			r.Patch("/{id}", h.handleSlotUpdate)
			r.Delete("/{id}", h.handleSlotDelete)
		})
		r.Route("/assignments", func(r chi.Router) {
			r.Post("/", h.handleAssignmentCreate)
			r.Get("/", h.handleAssignmentList)
			r.Get("/{id}", h.handleAssignmentGet)
			r.Patch("/{id}", h.handleAssignmentUpdate)
			r.Delete("/{id}", h.handleAssignmentDelete)
		})

		r.Get("/serve/slot/{slotID}", h.handleResolveSlot)
		r.Get("/serve/page/{page}", h.handleServePage)
		r.Post("/events", h.handleRecordEvent)
		r.Get("/stats", h.handleStats)
		r.Get("/stats/daily/{date}", h.handleDailyStats)
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
