package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/app/fanout"
	"github.com/jsamuelsen11/storefront-core/internal/app/uow"
	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// Compile-time check that LifecycleService implements ports.LifecycleService.
var _ ports.LifecycleService = (*LifecycleService)(nil)

// defaultBulkWorkers bounds BulkDeactivate concurrency when not configured.
const defaultBulkWorkers = 4

// LifecycleService implements ports.LifecycleService. Each command loads one
// aggregate, runs one behavior, and saves it inside its own unit of work.
// Events are published only after the unit of work commits. Commands on the
// same aggregate id are serialized in-process; running several replicas
// against one store needs an external lock, which this service does not take.
type LifecycleService struct {
	store       ports.DocumentStore
	publisher   ports.EventPublisher
	repo        *LifecycleRepository
	locks       *aggregateLocks
	uowOpts     []uow.Option
	bulkWorkers int
	logger      *slog.Logger
}

// ServiceOption configures a LifecycleService.
type ServiceOption func(*LifecycleService)

// WithCollectionPrefix sets the prefix of every collection name.
func WithCollectionPrefix(prefix string) ServiceOption {
	return func(s *LifecycleService) { s.uowOpts = append(s.uowOpts, uow.WithPrefix(prefix)) }
}

// WithMetrics records unit of work commit outcomes.
func WithMetrics(m *telemetry.Metrics) ServiceOption {
	return func(s *LifecycleService) { s.uowOpts = append(s.uowOpts, uow.WithMetrics(m)) }
}

// WithBulkWorkers bounds the concurrency of bulk commands.
func WithBulkWorkers(n int) ServiceOption {
	return func(s *LifecycleService) {
		if n > 0 {
			s.bulkWorkers = n
		}
	}
}

// WithClock overrides the clock used to stamp events and views.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *LifecycleService) { s.repo = NewLifecycleRepository(now) }
}

// NewLifecycleService creates a LifecycleService. A nil publisher drops
// events after commit; a nil logger discards logs.
func NewLifecycleService(store ports.DocumentStore, publisher ports.EventPublisher, logger *slog.Logger, opts ...ServiceOption) *LifecycleService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &LifecycleService{
		store:       store,
		publisher:   publisher,
		repo:        NewLifecycleRepository(nil),
		locks:       newAggregateLocks(),
		bulkWorkers: defaultBulkWorkers,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Define creates a new aggregate. Categories get a generated id when id is
// zero; roles must supply a slug.
func (s *LifecycleService) Define(ctx context.Context, kind lifecycle.Kind, id identifier.ID, name string) (*lifecycle.Snapshot, error) {
	if id.IsZero() && kind == lifecycle.KindCategory {
		id = identifier.NewUnique()
	}
	s.logger.InfoContext(ctx, "defining aggregate",
		slog.String("kind", string(kind)),
		slog.String("id", id.Key()),
	)
	if err := kind.ValidateID(id); err != nil {
		return nil, err
	}
	return s.run(ctx, "Define", kind, id, true, lifecycle.Define(kind, name))
}

// Activate runs the Activate behavior.
func (s *LifecycleService) Activate(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error) {
	return s.command(ctx, "Activate", kind, id, lifecycle.Activate())
}

// Deactivate runs the Deactivate behavior.
func (s *LifecycleService) Deactivate(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error) {
	return s.command(ctx, "Deactivate", kind, id, lifecycle.Deactivate())
}

// Destroy runs the Destroy behavior.
func (s *LifecycleService) Destroy(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error) {
	return s.command(ctx, "Destroy", kind, id, lifecycle.Destroy())
}

// Revoke runs the Revoke behavior.
func (s *LifecycleService) Revoke(ctx context.Context, kind lifecycle.Kind, id identifier.ID, reason string) (*lifecycle.Snapshot, error) {
	return s.command(ctx, "Revoke", kind, id, lifecycle.Revoke(reason))
}

// Get returns the stored read view.
func (s *LifecycleService) Get(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error) {
	if err := kind.ValidateID(id); err != nil {
		return nil, err
	}

	u := uow.New(s.store, s.uowOpts...)
	u.Begin()
	view, found, err := uow.Get[LifecycleView](ctx, u, id)
	if endErr := u.End(ctx, err); endErr != nil {
		s.logger.ErrorContext(ctx, "failed to fetch aggregate",
			slog.String("operation", "Get"),
			slog.String("kind", string(kind)),
			slog.String("id", id.Key()),
			slog.Any("error", endErr),
		)
		return nil, endErr
	}
	if !found || view.Kind != kind {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}

	snap := view.Snapshot()
	return &snap, nil
}

// BulkDeactivate deactivates each id in its own unit of work, running at
// most the configured number of commands at once. Duplicate ids are
// rejected: the second would only wait for the first and then fail the
// Active rule.
func (s *LifecycleService) BulkDeactivate(ctx context.Context, kind lifecycle.Kind, ids []identifier.ID) (*ports.BulkResult, error) {
	s.logger.InfoContext(ctx, "bulk deactivating",
		slog.String("kind", string(kind)),
		slog.Int("count", len(ids)),
	)

	if len(ids) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"ids": "must not be empty"}}
	}
	seen := make(map[identifier.ID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, &domain.ValidationError{Fields: map[string]string{
				"ids": fmt.Sprintf("duplicate id %s", id),
			}}
		}
		seen[id] = struct{}{}
	}

	outcomes := fanout.Run(ctx, s.bulkWorkers, ids, func(ctx context.Context, id identifier.ID) (*lifecycle.Snapshot, error) {
		return s.Deactivate(ctx, kind, id)
	})

	succeeded, failed := fanout.Split(outcomes)
	out := &ports.BulkResult{}
	for _, o := range succeeded {
		out.Succeeded = append(out.Succeeded, *o.Value)
	}
	for _, o := range failed {
		out.Errors = append(out.Errors, ports.BulkItemError{ID: o.Item, Err: o.Err})
	}
	return out, nil
}

func (s *LifecycleService) command(ctx context.Context, op string, kind lifecycle.Kind, id identifier.ID, behavior aggregate.Behavior[lifecycle.State]) (*lifecycle.Snapshot, error) {
	s.logger.InfoContext(ctx, "running command",
		slog.String("operation", op),
		slog.String("kind", string(kind)),
		slog.String("id", id.Key()),
	)
	if err := kind.ValidateID(id); err != nil {
		return nil, err
	}
	return s.run(ctx, op, kind, id, false, behavior)
}

// run executes one behavior inside a fresh unit of work and publishes the
// resulting events once the unit of work has committed. The aggregate's lock
// is held across load, commit and publish so events leave in stream order.
func (s *LifecycleService) run(ctx context.Context, op string, kind lifecycle.Kind, id identifier.ID, create bool, behavior aggregate.Behavior[lifecycle.State]) (*lifecycle.Snapshot, error) {
	release, err := s.locks.acquire(ctx, id)
	if err != nil {
		s.logFailure(ctx, op, kind, id, err)
		return nil, fmt.Errorf("waiting for %s %s: %w", kind, id, err)
	}
	defer release()

	u := uow.New(s.store, s.uowOpts...)
	u.Begin()

	snap, events, err := s.execute(ctx, u, kind, id, create, behavior)
	if err = u.End(ctx, err); err != nil {
		s.logFailure(ctx, op, kind, id, err)
		return nil, err
	}

	s.publish(ctx, op, id, events)
	return &snap, nil
}

func (s *LifecycleService) execute(ctx context.Context, u *uow.UnitOfWork, kind lifecycle.Kind, id identifier.ID, create bool, behavior aggregate.Behavior[lifecycle.State]) (lifecycle.Snapshot, []aggregate.Event, error) {
	var (
		agg *LifecycleAggregate
		err error
	)
	if create {
		agg, err = s.repo.Create(ctx, u, kind, id)
	} else {
		agg, err = s.repo.Load(ctx, u, kind, id)
	}
	if err != nil {
		return lifecycle.Snapshot{}, nil, err
	}

	if err := agg.Execute(behavior); err != nil {
		return lifecycle.Snapshot{}, nil, err
	}

	events := agg.PendingEvents()
	snap, err := s.repo.Save(u, agg)
	if err != nil {
		return lifecycle.Snapshot{}, nil, err
	}
	agg.ClearPendingEvents()
	return snap, events, nil
}

func (s *LifecycleService) publish(ctx context.Context, op string, id identifier.ID, events []aggregate.Event) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish committed events",
			slog.String("operation", op),
			slog.String("id", id.Key()),
			slog.Int("events", len(events)),
			slog.Any("error", err),
		)
	}
}

func (s *LifecycleService) logFailure(ctx context.Context, op string, kind lifecycle.Kind, id identifier.ID, err error) {
	attrs := []any{
		slog.String("operation", op),
		slog.String("kind", string(kind)),
		slog.String("id", id.Key()),
		slog.Any("error", err),
	}
	switch {
	case errors.Is(err, domain.ErrRuleViolation),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrConflict):
		s.logger.WarnContext(ctx, "command rejected", attrs...)
	default:
		s.logger.ErrorContext(ctx, "command failed", attrs...)
	}
}
