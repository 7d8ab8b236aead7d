// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/initiative-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/initiative-tracker/internal/domain"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	trackerHandler *handlers.TrackerHandler,
	commandHandler *handlers.CommandHandler,
	eventsHandler *handlers.EventsHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, fmt.Errorf("route %s: %w", r.URL.Path, domain.ErrNotFound))
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/roster", trackerHandler.GetRoster)

		r.Post("/actors", trackerHandler.CreateActor)
		r.Get("/actors/{id}", trackerHandler.GetActor)
		r.Patch("/actors/{id}", trackerHandler.UpdateActor)
		r.Delete("/actors/{id}", trackerHandler.DeleteActor)
		r.Post("/actors/{id}/activate", trackerHandler.ActivateActor)
		r.Post("/actors/{id}/select", trackerHandler.SelectActor)

		// Conditions.
		r.Post("/actors/{id}/conditions", trackerHandler.AddCondition)
		r.Delete("/actors/{id}/conditions", trackerHandler.ClearConditions)
		r.Post("/actors/{id}/conditions/rotate", trackerHandler.RotateConditions)
		r.Delete("/actors/{id}/conditions/{label}", trackerHandler.RemoveCondition)

		// Keyboard commands and the notification stream.
		r.Post("/commands", commandHandler.Dispatch)
		r.Get("/events", eventsHandler.Stream)
	})

	return r
}
