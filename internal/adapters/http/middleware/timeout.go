package middleware

import (
	"cmp"
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/dto"
)

// errRequestTimeout is reported when a command outlives its deadline. A unit
// of work interrupted mid-commit is not rolled back, so the client is told the
// outcome is unknown rather than that nothing happened.
var errRequestTimeout = errors.New("request timed out; the command may have been partially applied, read the resource before retrying")

// Timeout bounds a command by d. The handler sees the deadline on its
// context, so store calls stop once it passes. Its response is buffered and
// only sent if it finishes in time; otherwise the client gets a 504 and
// anything the handler writes later is dropped.
//
// The handler runs on its own goroutine. A panic there is re-raised on the
// serving goroutine so Recovery still handles it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			buf := &deadlineWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)
			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				buf.sendTo(w)
			case <-ctx.Done():
				buf.expire()
				dto.WriteErrorResponse(w, r, timeoutError{errRequestTimeout})
			}
		})
	}
}

// deadlineWriter holds a handler's response until Timeout decides whether
// to send it. After expire every write fails with http.ErrHandlerTimeout.
type deadlineWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

func (dw *deadlineWriter) Header() http.Header {
	// Headers are copied out only by sendTo, after the handler returned.
	return dw.header
}

func (dw *deadlineWriter) WriteHeader(code int) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.status == 0 && !dw.expired {
		dw.status = code
	}
}

func (dw *deadlineWriter) Write(b []byte) (int, error) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if dw.status == 0 {
		dw.status = http.StatusOK
	}
	dw.body = append(dw.body, b...)
	return len(b), nil
}

func (dw *deadlineWriter) expire() {
	dw.mu.Lock()
	dw.expired = true
	dw.mu.Unlock()
}

// sendTo writes the finished response to w. A handler that wrote nothing
// gets the implicit 200.
func (dw *deadlineWriter) sendTo(w http.ResponseWriter) {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	maps.Copy(w.Header(), dw.header)
	w.WriteHeader(cmp.Or(dw.status, http.StatusOK))
	if len(dw.body) > 0 {
		_, _ = w.Write(dw.body)
	}
}

// timeoutError maps to 504 rather than the 500 a bare error would get.
type timeoutError struct{ error }

func (timeoutError) StatusCode() int { return http.StatusGatewayTimeout }
