package uow

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// Commit phases, used in error messages and logs.
const (
	phaseInsert  = "insert"
	phaseReplace = "replace"
	phaseDelete  = "delete"
)

// Collection buffers pending writes for documents of type T bound to one
// named collection. Writes are coalesced per identifier:
//
//   - StageAdd records a save and cancels a pending replace or delete.
//   - StageUpdate folds into a pending save when one exists, otherwise
//     records a replace. It is rejected for an identifier staged for
//     deletion.
//   - StageDelete cancels a pending save outright, since that document never
//     reached the store. Otherwise it records a delete and cancels any
//     pending replace.
//
// Get always reads from the store: pending writes are not visible until
// Commit. A document added and then read back within the same unit of work
// is reported as not found.
type Collection[T any] struct {
	name           string
	store          ports.DocumentStore
	pendingSaves   map[identifier.ID]T
	pendingUpdates map[identifier.ID]T
	pendingDeletes map[identifier.ID]struct{}
}

// PendingState describes what is buffered for one identifier.
type PendingState[T any] struct {
	InSaves   bool
	InUpdates bool
	InDeletes bool
	Document  T
}

// NewCollection binds a Collection for T to a store collection name.
func NewCollection[T any](name string, store ports.DocumentStore) *Collection[T] {
	return &Collection[T]{
		name:           name,
		store:          store,
		pendingSaves:   make(map[identifier.ID]T),
		pendingUpdates: make(map[identifier.ID]T),
		pendingDeletes: make(map[identifier.ID]struct{}),
	}
}

// Name returns the store collection name.
func (c *Collection[T]) Name() string { return c.name }

// Get reads the committed document stored under id. A missing document
// returns found=false and a nil error.
func (c *Collection[T]) Get(ctx context.Context, id identifier.ID) (T, bool, error) {
	var zero T
	if err := id.Validate(); err != nil {
		return zero, false, err
	}

	body, found, err := c.store.FindByID(ctx, c.name, id)
	if err != nil {
		return zero, false, fmt.Errorf("finding %s in %s: %w", id.Key(), c.name, err)
	}
	if !found {
		logging.FromContext(ctx).DebugContext(ctx, "document not found",
			slog.String("operation", "Collection.Get"),
			slog.String("collection", c.name),
			slog.String("id", id.Key()),
		)
		return zero, false, nil
	}

	var doc T
	if err := json.Unmarshal(body, &doc); err != nil {
		return zero, false, fmt.Errorf("decoding %s in %s: %w", id.Key(), c.name, err)
	}
	return doc, true, nil
}

// StageAdd buffers doc as a new document. The add is the latest intent for
// id, so it replaces any pending update or delete.
func (c *Collection[T]) StageAdd(id identifier.ID, doc T) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.pendingSaves[id] = doc
	delete(c.pendingUpdates, id)
	delete(c.pendingDeletes, id)
	return nil
}

// StageUpdate buffers doc as a replacement. An update to a document staged
// by StageAdd in the same unit of work overwrites the pending save instead.
// Updating an identifier staged for deletion returns domain.ErrConflict and
// leaves the delete in place; use StageAdd to write it again.
func (c *Collection[T]) StageUpdate(id identifier.ID, doc T) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if _, ok := c.pendingDeletes[id]; ok {
		return fmt.Errorf("%w: %s in %s is staged for deletion", domain.ErrConflict, id.Key(), c.name)
	}
	if _, ok := c.pendingSaves[id]; ok {
		c.pendingSaves[id] = doc
		return nil
	}
	c.pendingUpdates[id] = doc
	return nil
}

// StageDelete buffers a delete and drops any pending update for id. A
// document only staged by StageAdd is dropped without a store delete.
func (c *Collection[T]) StageDelete(id identifier.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	delete(c.pendingUpdates, id)
	if _, ok := c.pendingSaves[id]; ok {
		delete(c.pendingSaves, id)
		return nil
	}
	c.pendingDeletes[id] = struct{}{}
	return nil
}

// Pending reports what is buffered for id.
func (c *Collection[T]) Pending(id identifier.ID) PendingState[T] {
	var ps PendingState[T]
	if doc, ok := c.pendingSaves[id]; ok {
		ps.InSaves = true
		ps.Document = doc
	}
	if doc, ok := c.pendingUpdates[id]; ok {
		ps.InUpdates = true
		ps.Document = doc
	}
	_, ps.InDeletes = c.pendingDeletes[id]
	return ps
}

// Empty reports whether nothing is buffered.
func (c *Collection[T]) Empty() bool {
	return len(c.pendingSaves) == 0 && len(c.pendingUpdates) == 0 && len(c.pendingDeletes) == 0
}

// Commit flushes the buffers to the store in three phases: one bulk insert
// of all pending saves, one replace per pending update, then one delete per
// pending delete. Phases with nothing to do issue no store call. Within a
// phase, documents are written in identifier order.
//
// The first failure stops the commit. Buffers are not cleared, so a second
// Commit repeats every phase.
func (c *Collection[T]) Commit(ctx context.Context) error {
	if len(c.pendingSaves) > 0 {
		records := make([]ports.Record, 0, len(c.pendingSaves))
		for _, id := range sortedIDs(c.pendingSaves) {
			rec, err := c.encode(id, c.pendingSaves[id])
			if err != nil {
				return c.phaseError(phaseInsert, err)
			}
			records = append(records, rec)
		}
		if err := c.store.InsertMany(ctx, c.name, records); err != nil {
			return c.phaseError(phaseInsert, err)
		}
	}

	for _, id := range sortedIDs(c.pendingUpdates) {
		rec, err := c.encode(id, c.pendingUpdates[id])
		if err != nil {
			return c.phaseError(phaseReplace, err)
		}
		if err := c.store.ReplaceByID(ctx, c.name, rec); err != nil {
			return c.phaseError(phaseReplace, fmt.Errorf("%s: %w", id.Key(), err))
		}
	}

	for _, id := range sortedIDs(c.pendingDeletes) {
		if err := c.store.DeleteByID(ctx, c.name, id); err != nil {
			return c.phaseError(phaseDelete, fmt.Errorf("%s: %w", id.Key(), err))
		}
	}

	return nil
}

func (c *Collection[T]) encode(id identifier.ID, doc T) (ports.Record, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return ports.Record{}, fmt.Errorf("encoding %s: %w", id.Key(), err)
	}
	return ports.Record{ID: id, Body: body}, nil
}

func (c *Collection[T]) phaseError(phase string, err error) error {
	return fmt.Errorf("%s %s: %w", phase, c.name, err)
}

func sortedIDs[V any](m map[identifier.ID]V) []identifier.ID {
	return slices.SortedFunc(maps.Keys(m), func(a, b identifier.ID) int {
		return cmp.Compare(a.Key(), b.Key())
	})
}

// Compile-time check that Collection satisfies the interface the unit of
// work commits through.
var _ committer = (*Collection[struct{}])(nil)

// committer is the type-erased view of a Collection held by UnitOfWork.
type committer interface {
	Name() string
	Empty() bool
	Commit(ctx context.Context) error
}
