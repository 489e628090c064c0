// Package docstore holds the document store adapters and the Guard that
// fronts whichever one is configured.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/platform/config"
	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

var _ ports.DocumentStore = (*Guard)(nil)

// Store operation names used in spans and metrics.
const (
	opFind    = "find"
	opInsert  = "insert"
	opReplace = "replace"
	opDelete  = "delete"
)

// pinger is implemented by stores that hold a connection.
type pinger interface {
	Ping(ctx context.Context) error
}

// Guard wraps a DocumentStore with a circuit breaker, tracing and metrics.
// Failed calls are never retried: a unit of work commit must surface the
// first failure as it happened.
type Guard struct {
	inner   ports.DocumentStore
	driver  string
	breaker *gobreaker.CircuitBreaker[[]byte]
	metrics *telemetry.Metrics
}

// NewGuard wraps inner. driver names the backing store in telemetry and in
// health results. metrics may be nil.
func NewGuard(
	inner ports.DocumentStore,
	driver string,
	cfg config.CircuitBreakerConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Guard {
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "docstore-" + driver,
		MaxRequests: toUint32(cfg.HalfOpenLimit),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.MaxFailures
		},
		IsSuccessful: isHealthyOutcome,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Guard{inner: inner, driver: driver, breaker: cb, metrics: metrics}
}

// FindByID implements ports.DocumentStore.
func (g *Guard) FindByID(ctx context.Context, collection string, id identifier.ID) ([]byte, bool, error) {
	var found bool
	body, err := g.call(ctx, opFind, collection, func(ctx context.Context) ([]byte, error) {
		b, ok, err := g.inner.FindByID(ctx, collection, id)
		found = ok
		return b, err
	})
	if err != nil {
		return nil, false, err
	}
	return body, found, nil
}

// InsertMany implements ports.DocumentStore.
func (g *Guard) InsertMany(ctx context.Context, collection string, records []ports.Record) error {
	_, err := g.call(ctx, opInsert, collection, func(ctx context.Context) ([]byte, error) {
		return nil, g.inner.InsertMany(ctx, collection, records)
	})
	return err
}

// ReplaceByID implements ports.DocumentStore.
func (g *Guard) ReplaceByID(ctx context.Context, collection string, rec ports.Record) error {
	_, err := g.call(ctx, opReplace, collection, func(ctx context.Context) ([]byte, error) {
		return nil, g.inner.ReplaceByID(ctx, collection, rec)
	})
	return err
}

// DeleteByID implements ports.DocumentStore.
func (g *Guard) DeleteByID(ctx context.Context, collection string, id identifier.ID) error {
	_, err := g.call(ctx, opDelete, collection, func(ctx context.Context) ([]byte, error) {
		return nil, g.inner.DeleteByID(ctx, collection, id)
	})
	return err
}

// Name identifies the store in readiness results.
func (g *Guard) Name() string {
	return "document-store"
}

// HealthCheck fails while the breaker is open and, for connection-backed
// stores, when a ping fails.
func (g *Guard) HealthCheck(ctx context.Context) error {
	switch state := g.breaker.State(); state {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.driver)
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.driver)
	}

	if p, ok := g.inner.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return fmt.Errorf("%s: %w", g.driver, err)
		}
	}
	return nil
}

func (g *Guard) call(
	ctx context.Context,
	op, collection string,
	fn func(context.Context) ([]byte, error),
) ([]byte, error) {
	start := time.Now()

	ctx, span := otel.GetTracerProvider().Tracer("docstore").Start(ctx, "docstore."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", g.driver),
			attribute.String("db.collection.name", collection),
			attribute.String("db.operation.name", op),
		),
	)
	defer span.End()

	body, err := g.breaker.Execute(func() ([]byte, error) {
		return fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s store: %w: %w", g.driver, domain.ErrUnavailable, err)
	}

	if err != nil && !isHealthyOutcome(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	g.record(ctx, op, collection, start, err)

	return body, err
}

func (g *Guard) record(ctx context.Context, op, collection string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, domain.ErrUnavailable):
		result = "circuit_open"
	case err != nil && isHealthyOutcome(err):
		result = "rejected"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStoreDriver.String(g.driver),
		telemetry.AttrCollection.String(collection),
		telemetry.AttrOperation.String(op),
		telemetry.AttrResult.String(result),
	)
	g.metrics.StoreOpDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreOpTotal.Add(ctx, 1, attrs)
}

// isHealthyOutcome reports whether err says nothing about store health.
// Conflicts, missing documents and bad collection names are answers, not
// outages, and must not trip the breaker.
func isHealthyOutcome(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation)
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	return uint32(min(v, int(^uint32(0)>>1)))
}
