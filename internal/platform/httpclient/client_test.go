package httpclient_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/storefront-core/internal/platform/config"
	"github.com/jsamuelsen11/storefront-core/internal/platform/httpclient"
)

const eventBatch = `{"events":[{"type":"lifecycle.activated","aggregate_id":"admin","version":3}]}`

func testConfig(baseURL string) *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 5 * time.Millisecond,
			MaxInterval:     20 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// scriptedGateway answers with statuses in order and repeats the last one.
// It returns the server and a counter of requests received.
func scriptedGateway(t *testing.T, statuses ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := int(calls.Add(1))
		status := statuses[min(n, len(statuses))-1]
		w.WriteHeader(status)
		_, _ = io.WriteString(w, http.StatusText(status))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func postBatch(t *testing.T, ctx context.Context, c *httpclient.Client, url string) (*http.Response, error) {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"/events", strings.NewReader(eventBatch))
	if err != nil {
		t.Fatalf("creating request: %v", err)
	}
	resp, err := c.Do(ctx, req)
	if resp != nil {
		t.Cleanup(func() { _ = resp.Body.Close() })
	}
	return resp, err
}

func TestDo_GatewayResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statuses   []int
		wantCalls  int32
		wantStatus int
		wantErr    bool
	}{
		{name: "accepted first time", statuses: []int{http.StatusAccepted}, wantCalls: 1, wantStatus: http.StatusAccepted},
		{name: "5xx retried until accepted", statuses: []int{500, 502, 202}, wantCalls: 3, wantStatus: http.StatusAccepted},
		{name: "429 retried", statuses: []int{429, 202}, wantCalls: 2, wantStatus: http.StatusAccepted},
		{name: "4xx not retried", statuses: []int{http.StatusUnprocessableEntity}, wantCalls: 1, wantStatus: http.StatusUnprocessableEntity},
		{name: "attempts exhausted", statuses: []int{http.StatusServiceUnavailable}, wantCalls: 3, wantStatus: http.StatusServiceUnavailable, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv, calls := scriptedGateway(t, tt.statuses...)
			client := httpclient.New(testConfig(srv.URL), "event-gateway", nil, testLogger())

			resp, err := postBatch(t, context.Background(), client, srv.URL)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Do() error = %v, wantErr %v", err, tt.wantErr)
			}
			if resp == nil {
				t.Fatal("Do() response = nil, want the final gateway response")
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			// The final response body reaches the caller even after retries.
			if body, _ := io.ReadAll(resp.Body); string(body) != http.StatusText(tt.wantStatus) {
				t.Errorf("body = %q, want %q", body, http.StatusText(tt.wantStatus))
			}
			if got := calls.Load(); got != tt.wantCalls {
				t.Errorf("gateway calls = %d, want %d", got, tt.wantCalls)
			}
		})
	}
}

func TestDo_ReplaysEventBatchOnRetry(t *testing.T) {
	t.Parallel()

	var (
		mu     sync.Mutex
		bodies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(b))
		first := len(bodies) == 1
		mu.Unlock()
		if first {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(srv.URL), "event-gateway", nil, testLogger())
	if _, err := postBatch(t, context.Background(), client, srv.URL); err != nil {
		t.Fatalf("Do() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 2 {
		t.Fatalf("attempts = %d, want 2", len(bodies))
	}
	for i, b := range bodies {
		if b != eventBatch {
			t.Errorf("attempt %d body = %q, want the original batch", i+1, b)
		}
	}
}

func TestDo_ForwardsCommandIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      func() context.Context
		wantReq  string
		wantCorr string
	}{
		{
			name: "ids set by inbound middleware",
			ctx: func() context.Context {
				ctx := httpclient.WithRequestID(context.Background(), "req-7f3a")
				return httpclient.WithCorrelationID(ctx, "order-991")
			},
			wantReq:  "req-7f3a",
			wantCorr: "order-991",
		},
		{
			name: "background work without ids",
			ctx:  context.Background,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := make(chan http.Header, 1)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got <- r.Header.Clone()
				w.WriteHeader(http.StatusAccepted)
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(srv.URL), "event-gateway", nil, testLogger())
			if _, err := postBatch(t, tt.ctx(), client, srv.URL); err != nil {
				t.Fatalf("Do() error = %v", err)
			}

			h := <-got
			if v := h.Get("X-Request-ID"); v != tt.wantReq {
				t.Errorf("X-Request-ID = %q, want %q", v, tt.wantReq)
			}
			if v := h.Get("X-Correlation-ID"); v != tt.wantCorr {
				t.Errorf("X-Correlation-ID = %q, want %q", v, tt.wantCorr)
			}
		})
	}
}

func TestDo_BreakerOpensAndRecovers(t *testing.T) {
	t.Parallel()

	var down atomic.Bool
	down.Store(true)
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		if down.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	cfg.CircuitBreaker.Timeout = 100 * time.Millisecond
	cfg.Retry.MaxAttempts = 1
	client := httpclient.New(cfg, "event-gateway", nil, testLogger())
	ctx := context.Background()

	if err := client.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck() on a fresh client = %v, want nil", err)
	}

	_, _ = postBatch(t, ctx, client, srv.URL)
	before := calls.Load()
	if _, err := postBatch(t, ctx, client, srv.URL); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("Do() with open breaker error = %v, want gobreaker.ErrOpenState", err)
	}
	if calls.Load() != before {
		t.Error("gateway reached while the breaker was open")
	}
	if err := client.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "failing") {
		t.Errorf("HealthCheck() with open breaker = %v, want failing", err)
	}

	time.Sleep(150 * time.Millisecond)
	if err := client.HealthCheck(ctx); err == nil || !strings.Contains(err.Error(), "degraded") {
		t.Errorf("HealthCheck() with half-open breaker = %v, want degraded", err)
	}

	down.Store(false)
	resp, err := postBatch(t, ctx, client, srv.URL)
	if err != nil || resp.StatusCode != http.StatusAccepted {
		t.Fatalf("Do() after recovery = %v, %v, want 202", resp, err)
	}
	if err := client.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck() after recovery = %v, want nil", err)
	}
}

func TestDo_CanceledCallerDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv, calls := scriptedGateway(t, http.StatusAccepted)
	cfg := testConfig(srv.URL)
	cfg.CircuitBreaker.MaxFailures = 1
	client := httpclient.New(cfg, "event-gateway", nil, testLogger())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := postBatch(t, canceled, client, srv.URL); !errors.Is(err, context.Canceled) {
		t.Fatalf("Do() with canceled ctx error = %v, want context.Canceled", err)
	}

	if _, err := postBatch(t, context.Background(), client, srv.URL); err != nil {
		t.Fatalf("Do() after a canceled call error = %v, want nil", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("gateway calls = %d, want 1", got)
	}
}

func TestDo_RateLimitWaitHonorsContext(t *testing.T) {
	t.Parallel()

	srv, calls := scriptedGateway(t, http.StatusAccepted)
	cfg := testConfig(srv.URL)
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.5, BurstSize: 1}
	client := httpclient.New(cfg, "event-gateway", nil, testLogger())

	if _, err := postBatch(t, context.Background(), client, srv.URL); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := postBatch(t, ctx, client, srv.URL); err == nil {
		t.Fatal("second Do() error = nil, want rate limit wait to fail within the deadline")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("gateway calls = %d, want 1", got)
	}
}

func TestClient_Name(t *testing.T) {
	t.Parallel()

	client := httpclient.New(testConfig("http://localhost"), "event-gateway", nil, testLogger())
	if got := client.Name(); got != "event-gateway" {
		t.Errorf("Name() = %q, want event-gateway", got)
	}
}
