package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
)

// Aggregate returns route-level middleware for the /{id} command routes of
// one aggregate kind. It adds aggregate_kind and aggregate_id to the context
// logger, so unit-of-work and store logs name the aggregate they touched,
// and sets the same values on the server span.
//
// Mount it with chi's With on the routes themselves: URL params are only
// known once chi has matched the endpoint.
func Aggregate(kind string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			trace.SpanFromContext(ctx).SetAttributes(
				telemetry.AttrAggregateKind.String(kind),
				telemetry.AttrAggregateID.String(id),
			)
			ctx = logging.With(ctx, "aggregate_kind", kind, "aggregate_id", id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
