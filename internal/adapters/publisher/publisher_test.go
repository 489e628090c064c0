package publisher_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/publisher"
	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/platform/config"
	"github.com/jsamuelsen11/storefront-core/internal/platform/httpclient"
)

var occurred = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleEvents() []aggregate.Event {
	id := identifier.Text("admin")
	return []aggregate.Event{
		{Type: "lifecycle.defined", AggregateID: id, Sequence: 1, OccurredAt: occurred, Payload: json.RawMessage(`{"kind":"role","name":"Admin"}`)},
		{Type: "lifecycle.activated", AggregateID: id, Sequence: 2, OccurredAt: occurred},
	}
}

func TestLog_Publish(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	if err := publisher.NewLog(logger).Publish(context.Background(), sampleEvents()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("logged %d lines, want 2", len(lines))
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatalf("decoding log line: %v", err)
	}
	if entry["event_type"] != "lifecycle.activated" {
		t.Errorf("event_type = %v, want lifecycle.activated", entry["event_type"])
	}
	if entry["aggregate_id"] != "admin" {
		t.Errorf("aggregate_id = %v, want admin", entry["aggregate_id"])
	}
}

func webhookClient(baseURL string) *httpclient.Client {
	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
			Multiplier:      1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Second, HalfOpenLimit: 1},
	}
	return httpclient.New(cfg, "event-gateway", nil, slog.New(slog.DiscardHandler))
}

func TestWebhook_PostsBatch(t *testing.T) {
	t.Parallel()

	received := make(chan publisher.Batch, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			t.Errorf("path = %q, want /events", r.URL.Path)
		}
		var b publisher.Batch
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		received <- b
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	pub := publisher.NewWebhook(webhookClient(srv.URL), "/events")
	if err := pub.Publish(context.Background(), sampleEvents()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if n := len(received); n != 1 {
		t.Fatalf("gateway called %d times, want 1", n)
	}
	got := <-received
	if len(got.Events) != 2 {
		t.Fatalf("batch has %d events, want 2", len(got.Events))
	}
	first := got.Events[0]
	if first.Type != "lifecycle.defined" || first.AggregateID != "admin" || first.Sequence != 1 {
		t.Errorf("first event = %+v", first)
	}
	if !first.OccurredAt.Equal(occurred) {
		t.Errorf("OccurredAt = %v, want %v", first.OccurredAt, occurred)
	}
}

func TestWebhook_EmptyBatchSkipsCall(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("gateway should not be called for an empty batch")
	}))
	t.Cleanup(srv.Close)

	if err := publisher.NewWebhook(webhookClient(srv.URL), "/events").Publish(context.Background(), nil); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
}

func TestWebhook_GatewayRejects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(srv.Close)

	err := publisher.NewWebhook(webhookClient(srv.URL), "/events").Publish(context.Background(), sampleEvents())

	var statusErr *httpclient.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Publish() error = %v, want *httpclient.StatusError", err)
	}
}

func TestRedis_PublishesInOrder(t *testing.T) {
	t.Parallel()

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	ctx := context.Background()
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })

	channel := "storefront.test." + t.Name()
	sub := rdb.Subscribe(ctx, channel)
	t.Cleanup(func() { _ = sub.Close() })
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	pub := publisher.NewRedis(rdb, channel)
	if err := pub.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck() error = %v", err)
	}
	if err := pub.Publish(ctx, sampleEvents()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	for _, want := range []string{"lifecycle.defined", "lifecycle.activated"} {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			t.Fatalf("ReceiveMessage() error = %v", err)
		}
		var got publisher.Message
		if err := json.Unmarshal([]byte(msg.Payload), &got); err != nil {
			t.Fatalf("decoding message: %v", err)
		}
		if got.Type != want {
			t.Errorf("message type = %q, want %q", got.Type, want)
		}
	}
}
