package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
)

// Logging puts a logger carrying the request and correlation ids on the
// request context, where the service and unit of work pick it up, and logs a
// start and a completion line. Completion is info for 2xx/3xx, warn for 4xx
// and error for 5xx, and names the aggregate when the route targets one.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			status := rw.statusCode()
			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(ctx)),
				slog.Int("status", status),
				slog.Int64("bytes", rw.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if id := chi.URLParam(r, "id"); id != "" {
				attrs = append(attrs, slog.String("aggregate_id", id))
			}
			child.LogAttrs(ctx, completionLevel(status), "request completed", attrs...)
		})
	}
}

func completionLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
