package middleware

import (
	"net/http"
	"slices"
)

// Chain composes middleware so that the first argument is outermost:
// Chain(Recovery, RequestID, Logging)(h) is Recovery(RequestID(Logging(h))).
// The router mounts the whole stack through one Chain call.
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for _, mw := range slices.Backward(middlewares) {
			handler = mw(handler)
		}
		return handler
	}
}
