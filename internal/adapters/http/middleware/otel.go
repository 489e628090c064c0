package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/storefront-core/internal/adapters/http"

// OpenTelemetry opens a server span per request, continuing any W3C trace
// context the caller sent, and records the server request instruments.
// After routing the span takes the chi pattern as its name
// ("HTTP POST /api/v1/roles/{id}/activate") so aggregate ids never become
// span names or metric labels. A nil metrics records spans only.
//
// Only 5xx marks the span as an error: a 409 or 422 is the lifecycle
// answering a command, not the service failing.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, spanName(r.Method, r.URL.Path),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			route := routePattern(ctx)
			if route != "" {
				span.SetName(spanName(r.Method, route))
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			}
			status := rw.statusCode()
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if metrics != nil {
				attrs := metric.WithAttributes(
					telemetry.AttrHTTPMethod.String(r.Method),
					telemetry.AttrHTTPStatus.Int(status),
					telemetry.AttrHTTPRoute.String(route),
					telemetry.AttrResult.String(commandResult(status)),
				)
				metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
				metrics.ServerRequestTotal.Add(ctx, 1, attrs)
			}
		})
	}
}

func spanName(method, path string) string {
	return "HTTP " + method + " " + path
}

// commandResult buckets a response status for the server request metrics.
func commandResult(status int) string {
	switch {
	case status >= http.StatusInternalServerError:
		return "failed"
	case status >= http.StatusBadRequest:
		return "rejected"
	default:
		return "applied"
	}
}

// routePattern returns the matched chi route, or "" outside a chi router.
func routePattern(ctx context.Context) string {
	if rctx := chi.RouteContext(ctx); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
