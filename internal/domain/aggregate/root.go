package aggregate

import (
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
)

// ErrHistoryMismatch is returned by Replay when the history does not belong
// to the aggregate or is out of sequence.
var ErrHistoryMismatch = errors.New("aggregate: history does not match aggregate")

// ErrAlreadyLoaded is returned by Replay when the root already holds state.
var ErrAlreadyLoaded = errors.New("aggregate: replay requires a fresh aggregate")

// FoldFunc applies one event to state and returns the resulting state. It
// must be deterministic: the same state and event always produce the same
// result. It is registered once per aggregate type and shared by replay and
// by Execute.
type FoldFunc[S any] func(S, Event) (S, error)

// Root holds the state snapshot of one aggregate instance and its pending
// (not yet persisted) events. Each Root owns exactly one state value; it is
// never shared with another aggregate.
type Root[S any] struct {
	id      identifier.ID
	state   S
	version int64
	pending []Event
	fold    FoldFunc[S]
	now     func() time.Time
}

// New creates a Root for id starting from initial state.
func New[S any](id identifier.ID, initial S, fold FoldFunc[S]) *Root[S] {
	return &Root[S]{
		id:    id,
		state: initial,
		fold:  fold,
		now:   time.Now,
	}
}

// SetClock overrides the clock used to stamp accepted events.
func (r *Root[S]) SetClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// ID returns the aggregate's identifier.
func (r *Root[S]) ID() identifier.ID { return r.id }

// State returns the current state snapshot.
func (r *Root[S]) State() S { return r.state }

// Version returns the sequence number of the last event folded into state,
// whether replayed or newly accepted. A fresh aggregate has version 0.
func (r *Root[S]) Version() int64 { return r.version }

// PendingEvents returns a copy of the events accepted since the aggregate
// was loaded, in the order they were applied.
func (r *Root[S]) PendingEvents() []Event {
	out := make([]Event, len(r.pending))
	for i, evt := range r.pending {
		out[i] = evt.clone()
	}
	return out
}

// ClearPendingEvents drops the pending list once a dispatcher has drained it.
func (r *Root[S]) ClearPendingEvents() {
	r.pending = nil
}

// Replay folds a full historical event sequence into the fresh state. Events
// must belong to this aggregate and carry consecutive sequence numbers
// starting at 1. Replayed events are not pending.
func (r *Root[S]) Replay(history []Event) error {
	if r.version != 0 || len(r.pending) > 0 {
		return ErrAlreadyLoaded
	}

	state := r.state
	for i, evt := range history {
		want := int64(i + 1)
		if evt.AggregateID != r.id {
			return fmt.Errorf("%w: event %d addressed to %s", ErrHistoryMismatch, want, evt.AggregateID.Key())
		}
		if evt.Sequence != want {
			return fmt.Errorf("%w: sequence %d, want %d", ErrHistoryMismatch, evt.Sequence, want)
		}
		next, err := r.fold(state, evt)
		if err != nil {
			return fmt.Errorf("replaying %s #%d: %w", evt.Type, evt.Sequence, err)
		}
		state = next
	}

	r.state = state
	r.version = int64(len(history))
	return nil
}

// Execute runs a behavior against the current state. A rejected decision is
// returned as a *domain.RuleViolationError and leaves state, version, and the
// pending list untouched. Accepted events are stamped, folded into state, and
// appended to the pending list; if any fold fails, nothing is applied.
func (r *Root[S]) Execute(decide Behavior[S]) error {
	d := decide(r.state)
	if d.Err != nil {
		return d.Err
	}
	if d.Rejection != nil {
		return d.Rejection
	}

	state := r.state
	version := r.version
	accepted := make([]Event, 0, len(d.Events))
	for _, evt := range d.Events {
		version++
		evt.AggregateID = r.id
		evt.Sequence = version
		evt.OccurredAt = r.now().UTC()

		next, err := r.fold(state, evt)
		if err != nil {
			return fmt.Errorf("applying %s: %w", evt.Type, err)
		}
		state = next
		accepted = append(accepted, evt)
	}

	r.state = state
	r.version = version
	r.pending = append(r.pending, accepted...)
	return nil
}
