package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/storefront-core/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// maxTraceIDLen bounds caller-supplied ids. They end up in every log
	// line and on every event batch sent to the gateway.
	maxTraceIDLen = 128
)

// Context keys are private to this package. httpclient keeps its own keys
// so it does not import the inbound adapter.
type (
	requestIDKey     struct{}
	correlationIDKey struct{}
)

// WithRequestID stores id in ctx for handlers and for outbound gateway calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return httpclient.WithRequestID(context.WithValue(ctx, requestIDKey{}, id), id)
}

// RequestIDFromContext returns the request id, or "" if none was stored.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithCorrelationID stores id in ctx for handlers and for outbound gateway
// calls.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return httpclient.WithCorrelationID(context.WithValue(ctx, correlationIDKey{}, id), id)
}

// CorrelationIDFromContext returns the correlation id, or "" if none was
// stored.
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// RequestID returns middleware that assigns every request an X-Request-ID.
// A usable incoming header is kept; a missing, oversized or non-printable one
// is replaced with a random UUID. The id is echoed on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerRequestID)
			if !usableTraceID(id) {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// CorrelationID returns middleware that assigns every request an
// X-Correlation-ID, falling back to the request id when the caller sent none
// or sent one that is not usable. It must run after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(headerCorrelationID)
			if !usableTraceID(id) {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}

// usableTraceID reports whether a caller-supplied id can be propagated as is:
// non-empty, at most maxTraceIDLen bytes, printable ASCII without spaces.
func usableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}
	for i := range len(id) {
		if c := id[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}
