package uow

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
	"github.com/jsamuelsen11/storefront-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// Commit outcomes recorded on uow.commit.total.
const (
	resultCommitted = "committed"
	resultAbandoned = "abandoned"
	resultPartial   = "partial"
	resultEmpty     = "empty"
)

// UnitOfWork owns the staged collections and the touched-identifiers bag for
// one logical command.
type UnitOfWork struct {
	store   ports.DocumentStore
	prefix  string
	metrics *telemetry.Metrics

	collections map[reflect.Type]committer
	order       []committer

	touched map[identifier.ID]struct{}
	ended   bool
}

// Option configures a UnitOfWork.
type Option func(*UnitOfWork)

// WithPrefix sets the collection name prefix. The default is DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(u *UnitOfWork) { u.prefix = prefix }
}

// WithMetrics records commit outcomes on m.UoWCommitTotal.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(u *UnitOfWork) { u.metrics = m }
}

// New creates a UnitOfWork writing to store.
func New(store ports.DocumentStore, opts ...Option) *UnitOfWork {
	u := &UnitOfWork{
		store:       store,
		prefix:      DefaultPrefix,
		collections: make(map[reflect.Type]committer),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Begin initializes the touched-identifiers bag. Calling Begin again before
// End keeps the existing bag.
func (u *UnitOfWork) Begin() {
	if u.touched == nil && !u.ended {
		u.touched = make(map[identifier.ID]struct{})
	}
}

// Touch marks id as touched and reports whether this is the first time it
// was marked in this unit of work.
func (u *UnitOfWork) Touch(id identifier.ID) (bool, error) {
	if u.touched == nil {
		return false, u.notActive()
	}
	if _, seen := u.touched[id]; seen {
		return false, nil
	}
	u.touched[id] = struct{}{}
	return true, nil
}

// Touched reports whether id has been marked.
func (u *UnitOfWork) Touched(id identifier.ID) (bool, error) {
	if u.touched == nil {
		return false, u.notActive()
	}
	_, seen := u.touched[id]
	return seen, nil
}

func (u *UnitOfWork) notActive() error {
	if u.ended {
		return ErrAlreadyEnded
	}
	return ErrNotBegun
}

// Collections returns the registered collection names in creation order.
func (u *UnitOfWork) Collections() []string {
	names := make([]string, len(u.order))
	for i, c := range u.order {
		names[i] = c.Name()
	}
	return names
}

// End finishes the unit of work. When cause is non-nil nothing is committed
// and cause is returned unchanged. Otherwise every registered collection is
// committed in creation order; the first failure stops the pass and is
// returned as a *PartialCommitError. Collections committed before the
// failure are not rolled back.
//
// The touched bag is discarded and the unit of work cannot be reused.
func (u *UnitOfWork) End(ctx context.Context, cause error) error {
	if u.ended {
		return ErrAlreadyEnded
	}
	u.ended = true
	u.touched = nil

	logger := logging.FromContext(ctx)

	if cause != nil {
		logger.DebugContext(ctx, "abandoning unit of work",
			slog.String("operation", "UnitOfWork.End"),
			slog.Int("collections", len(u.order)),
			slog.Any("cause", cause),
		)
		u.record(ctx, resultAbandoned)
		return cause
	}

	committed := make([]string, 0, len(u.order))
	for _, c := range u.order {
		if c.Empty() {
			continue
		}
		if err := c.Commit(ctx); err != nil {
			logger.ErrorContext(ctx, "unit of work commit failed",
				slog.String("operation", "UnitOfWork.End"),
				slog.String("collection", c.Name()),
				slog.Any("committed", committed),
				slog.Any("error", err),
			)
			u.record(ctx, resultPartial)
			return &PartialCommitError{Failed: c.Name(), Committed: committed, Err: err}
		}
		committed = append(committed, c.Name())
	}

	if len(committed) == 0 {
		u.record(ctx, resultEmpty)
		return nil
	}
	logger.DebugContext(ctx, "unit of work committed",
		slog.String("operation", "UnitOfWork.End"),
		slog.Any("collections", committed),
	)
	u.record(ctx, resultCommitted)
	return nil
}

func (u *UnitOfWork) record(ctx context.Context, result string) {
	if u.metrics == nil {
		return
	}
	u.metrics.UoWCommitTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(string(telemetry.AttrResult), result),
	))
}

// CollectionOf returns the collection for T, creating and registering it on
// first use.
func CollectionOf[T any](u *UnitOfWork) (*Collection[T], error) {
	if u.ended {
		return nil, ErrAlreadyEnded
	}

	t := reflect.TypeFor[T]()
	if c, ok := u.collections[t]; ok {
		return c.(*Collection[T]), nil
	}

	name, err := collectionName(t, u.prefix)
	if err != nil {
		return nil, err
	}
	c := NewCollection[T](name, u.store)
	u.collections[t] = c
	u.order = append(u.order, c)
	return c, nil
}

// Add stages doc as a new document of type T.
func Add[T any](u *UnitOfWork, id identifier.ID, doc T) error {
	c, err := CollectionOf[T](u)
	if err != nil {
		return err
	}
	return c.StageAdd(id, doc)
}

// Update stages doc as a replacement for the document of type T under id.
func Update[T any](u *UnitOfWork, id identifier.ID, doc T) error {
	c, err := CollectionOf[T](u)
	if err != nil {
		return err
	}
	return c.StageUpdate(id, doc)
}

// Delete stages removal of the document of type T under id.
func Delete[T any](u *UnitOfWork, id identifier.ID) error {
	c, err := CollectionOf[T](u)
	if err != nil {
		return err
	}
	return c.StageDelete(id)
}

// Get reads the committed document of type T under id. Writes staged in u
// are not visible.
func Get[T any](ctx context.Context, u *UnitOfWork, id identifier.ID) (T, bool, error) {
	c, err := CollectionOf[T](u)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return c.Get(ctx, id)
}

// QueryDefinition describes a read-model query.
type QueryDefinition struct {
	Filter map[string]any
	Limit  int
}

// Query is not served by the unit of work; read models answer queries.
// It always returns domain.ErrUnsupported.
func Query[T any](_ context.Context, _ *UnitOfWork, _ QueryDefinition) ([]T, error) {
	return nil, fmt.Errorf("uow: query %s: %w", reflect.TypeFor[T](), domain.ErrUnsupported)
}
