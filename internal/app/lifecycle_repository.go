package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/app/uow"
	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
)

// LifecycleAggregate is a loaded lifecycle root plus what the repository
// needs to persist it.
type LifecycleAggregate struct {
	*aggregate.Root[lifecycle.State]
	stream EventStream
	exists bool
}

// Exists reports whether the aggregate was loaded from a stored stream.
func (a *LifecycleAggregate) Exists() bool { return a.exists }

// Snapshot returns the aggregate's current state as a read view.
func (a *LifecycleAggregate) Snapshot(updatedAt time.Time) lifecycle.Snapshot {
	s := a.State()
	return lifecycle.Snapshot{
		ID:        a.ID(),
		Kind:      s.Kind,
		Name:      s.Name,
		Status:    s.Status,
		Revoked:   s.Revoked,
		Version:   a.Version(),
		UpdatedAt: updatedAt,
	}
}

// LifecycleRepository loads and saves lifecycle aggregates through a unit of
// work. The event stream is the source of truth; the view is rewritten on
// every save.
type LifecycleRepository struct {
	now func() time.Time
}

// NewLifecycleRepository creates a repository. A nil clock uses time.Now.
func NewLifecycleRepository(now func() time.Time) *LifecycleRepository {
	if now == nil {
		now = time.Now
	}
	return &LifecycleRepository{now: now}
}

// Load replays the stored stream for id. It returns domain.ErrNotFound when
// no stream exists or the stream belongs to another kind.
func (r *LifecycleRepository) Load(ctx context.Context, u *uow.UnitOfWork, kind lifecycle.Kind, id identifier.ID) (*LifecycleAggregate, error) {
	stream, found, err := uow.Get[EventStream](ctx, u, id)
	if err != nil {
		return nil, fmt.Errorf("loading %s %s: %w", kind, id, err)
	}
	if !found || stream.Kind != kind {
		return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}

	root := r.newRoot(kind, id)
	if err := root.Replay(stream.Events); err != nil {
		return nil, fmt.Errorf("replaying %s %s: %w", kind, id, err)
	}
	return &LifecycleAggregate{Root: root, stream: stream, exists: true}, nil
}

// Create returns a fresh aggregate for id. It returns domain.ErrConflict when
// a stream for id is already stored.
func (r *LifecycleRepository) Create(ctx context.Context, u *uow.UnitOfWork, kind lifecycle.Kind, id identifier.ID) (*LifecycleAggregate, error) {
	_, found, err := uow.Get[EventStream](ctx, u, id)
	if err != nil {
		return nil, fmt.Errorf("checking %s %s: %w", kind, id, err)
	}
	if found {
		return nil, fmt.Errorf("%s %s already defined: %w", kind, id, domain.ErrConflict)
	}
	return &LifecycleAggregate{
		Root:   r.newRoot(kind, id),
		stream: EventStream{ID: id, Kind: kind},
	}, nil
}

// Save stages the aggregate's pending events and its refreshed view. Saving
// the same aggregate twice in one unit of work returns domain.ErrConflict.
func (r *LifecycleRepository) Save(u *uow.UnitOfWork, agg *LifecycleAggregate) (lifecycle.Snapshot, error) {
	first, err := u.Touch(agg.ID())
	if err != nil {
		return lifecycle.Snapshot{}, err
	}
	if !first {
		return lifecycle.Snapshot{}, fmt.Errorf("%s saved twice in one unit of work: %w", agg.ID(), domain.ErrConflict)
	}

	stream := agg.stream
	stream.Events = append(append([]aggregate.Event(nil), stream.Events...), agg.PendingEvents()...)
	snap := agg.Snapshot(r.now().UTC())
	view := LifecycleView{
		ID:        snap.ID,
		Kind:      snap.Kind,
		Name:      snap.Name,
		Status:    snap.Status,
		Revoked:   snap.Revoked,
		Version:   snap.Version,
		UpdatedAt: snap.UpdatedAt,
	}

	stage := uow.Add[EventStream]
	stageView := uow.Add[LifecycleView]
	if agg.exists {
		stage = uow.Update[EventStream]
		stageView = uow.Update[LifecycleView]
	}
	if err := stage(u, agg.ID(), stream); err != nil {
		return lifecycle.Snapshot{}, err
	}
	if err := stageView(u, agg.ID(), view); err != nil {
		return lifecycle.Snapshot{}, err
	}
	return snap, nil
}

func (r *LifecycleRepository) newRoot(kind lifecycle.Kind, id identifier.ID) *aggregate.Root[lifecycle.State] {
	root := aggregate.New(id, lifecycle.Initial(kind), lifecycle.Fold)
	root.SetClock(r.now)
	return root
}
