package http_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/storefront-core/internal/adapters/http"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
	"github.com/jsamuelsen11/storefront-core/mocks"
)

func newTestRouter(t *testing.T, mws ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockLifecycleService, *mocks.MockHealthRegistry) {
	t.Helper()
	svc := mocks.NewMockLifecycleService(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewLifecycleHandler(svc, lifecycle.KindRole),
		handlers.NewLifecycleHandler(svc, lifecycle.KindCategory),
		handlers.NewHealthHandler(registry),
		mws...,
	)
	return router, svc, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expected := []string{
		"GET /health/live",
		"GET /health/ready",
	}
	for _, kind := range []string{"roles", "categories"} {
		base := "/api/v1/" + kind
		expected = append(expected,
			"POST "+base+"/",
			"POST "+base+"/bulk-deactivate",
			"GET "+base+"/{id}",
			"POST "+base+"/{id}/activate",
			"POST "+base+"/{id}/deactivate",
			"POST "+base+"/{id}/destroy",
			"POST "+base+"/{id}/revoke",
		)
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range expected {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router, _, registry := newTestRouter(t, testMW)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_RoutesToKind(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)
	svc.EXPECT().Activate(mock.Anything, lifecycle.KindRole, identifier.Text("admin")).
		Return(&lifecycle.Snapshot{ID: identifier.Text("admin"), Kind: lifecycle.KindRole, Status: lifecycle.StatusActive}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roles/admin/activate", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_RuleViolationProblemDetails(t *testing.T) {
	t.Parallel()

	router, svc, _ := newTestRouter(t)
	svc.EXPECT().Destroy(mock.Anything, lifecycle.KindRole, identifier.Text("admin")).
		Return(nil, &domain.RuleViolationError{Rule: "Disabled", Message: "role must be disabled"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roles/admin/destroy", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"rule.Disabled"`) {
		t.Errorf("body = %s, want rule.Disabled location", rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/roles/admin", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

func TestRouter_CommandLogsNameTheAggregate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	router, svc, _ := newTestRouter(t, middleware.Logging(logger))
	svc.EXPECT().Activate(mock.Anything, lifecycle.KindCategory, mock.Anything).
		RunAndReturn(func(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error) {
			logging.FromContext(ctx).InfoContext(ctx, "unit of work committed")
			return &lifecycle.Snapshot{ID: id, Kind: kind, Status: lifecycle.StatusActive}, nil
		})

	const id = "3f1c8a52-7a4e-4d2b-9a51-0c6f1e2d4b7a"
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/"+id+"/activate", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		switch {
		case strings.Contains(line, "unit of work committed"):
			if !strings.Contains(line, "aggregate_kind=category") || !strings.Contains(line, "aggregate_id="+id) {
				t.Errorf("service log missing aggregate scope: %s", line)
			}
		case strings.Contains(line, "request completed"):
			if !strings.Contains(line, "aggregate_id="+id) {
				t.Errorf("completion log missing aggregate_id: %s", line)
			}
		case strings.Contains(line, "request started"):
			if strings.Contains(line, "aggregate_id") {
				t.Errorf("start log has aggregate_id before routing: %s", line)
			}
		}
	}
}

func TestRouter_RecoveryLogsRouteAndAggregate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	router, svc, _ := newTestRouter(t, middleware.Recovery(logger))
	svc.EXPECT().Revoke(mock.Anything, lifecycle.KindRole, identifier.Text("admin"), mock.Anything).
		RunAndReturn(func(context.Context, lifecycle.Kind, identifier.ID, string) (*lifecycle.Snapshot, error) {
			panic("stream decode")
		})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/roles/admin/revoke", strings.NewReader(`{"reason":"compromised"}`))
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	out := buf.String()
	for _, want := range []string{"route=/api/v1/roles/{id}/revoke", "aggregate_id=admin", "panic=\"stream decode\""} {
		if !strings.Contains(out, want) {
			t.Errorf("recovery log missing %q: %s", want, out)
		}
	}
}
