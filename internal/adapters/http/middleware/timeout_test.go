package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/middleware"
)

func TestTimeout_FinishedHandlerIsFlushed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "explicit status and header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Location", "/api/v1/roles/admin")
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id":"admin"}`))
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"id":"admin"}`,
			wantHeader: "/api/v1/roles/admin",
		},
		{
			name: "implicit 200",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"status":"active"}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"active"}`,
		},
		{
			name: "deadline visible to the command",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if _, ok := r.Context().Deadline(); !ok {
					w.WriteHeader(http.StatusTeapot)
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(time.Second)(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/roles/", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Location"); got != tt.wantHeader {
				t.Errorf("Location = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestTimeout_SlowCommandGets504(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan struct{})
	handler := middleware.Timeout(50 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"inactive"}`))
		close(lateWrite)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/categories/bulk-deactivate", http.NoBody))
	<-lateWrite

	if rec.Code != http.StatusGatewayTimeout {
		t.Errorf("status = %d, want 504", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "partially applied") {
		t.Errorf("body = %q, want the partial-apply warning", body)
	}
	if strings.Contains(body, "inactive") {
		t.Errorf("late handler output reached the client: %q", body)
	}
}
