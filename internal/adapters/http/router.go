// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/middleware"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is composed with middleware.Chain and mounted once, so the
// first entry is outermost. It runs inside chi, which lets it read the
// matched route pattern after the handler returns.
func NewRouter(
	roleHandler *handlers.LifecycleHandler,
	categoryHandler *handlers.LifecycleHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/roles", lifecycleRoutes(roleHandler))
		r.Route("/categories", lifecycleRoutes(categoryHandler))
	})

	return r
}

// lifecycleRoutes registers the command routes shared by every lifecycle kind.
// Routes addressing one aggregate carry its kind and id into logs and spans.
func lifecycleRoutes(h *handlers.LifecycleHandler) func(chi.Router) {
	return func(r chi.Router) {
		r.Post("/", h.Define)
		r.Post("/bulk-deactivate", h.BulkDeactivate)

		one := r.With(middleware.Aggregate(string(h.Kind())))
		one.Get("/{id}", h.Get)
		one.Post("/{id}/activate", h.Activate)
		one.Post("/{id}/deactivate", h.Deactivate)
		one.Post("/{id}/destroy", h.Destroy)
		one.Post("/{id}/revoke", h.Revoke)
	}
}
