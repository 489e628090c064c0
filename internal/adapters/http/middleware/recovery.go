package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/dto"
)

// errCommandPanicked is the only detail a client sees after a panic. The
// panic may have struck between two collection commits, so like a timeout
// the outcome is reported as unknown.
var errCommandPanicked = errors.New("internal error; the command may have been partially applied, read the resource before retrying")

// Recovery returns middleware that turns a handler panic into a 500 problem
// response and an error log carrying the stack, the matched route and the
// target aggregate id. http.ErrAbortHandler is re-raised so net/http can
// abort the connection as intended. Nothing is written when the handler had
// already started its response.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				// chi fills the shared route context while routing, so the
				// pattern and id params are visible here after the fact.
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("route", routePattern(r.Context())),
					slog.String("aggregate_id", chi.URLParam(r, "id")),
					slog.String("stack", string(debug.Stack())),
				)

				if !rw.wroteHeader {
					dto.WriteErrorResponse(rw, r, errCommandPanicked)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
