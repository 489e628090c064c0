package app

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
)

// aggregateLocks serializes commands per aggregate id within this process.
// A command holds its id's lock from load until its events are published,
// so two commands on one aggregate never replay the same stream version.
// Entries are reference counted and dropped once no command waits on them.
type aggregateLocks struct {
	mu      sync.Mutex
	entries map[identifier.ID]*lockEntry
}

type lockEntry struct {
	held chan struct{}
	refs int
}

func newAggregateLocks() *aggregateLocks {
	return &aggregateLocks{entries: make(map[identifier.ID]*lockEntry)}
}

// acquire blocks until id is free or ctx is done. The returned func releases
// the lock and must be called exactly once.
func (l *aggregateLocks) acquire(ctx context.Context, id identifier.ID) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{held: make(chan struct{}, 1)}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.held <- struct{}{}:
		return func() {
			<-e.held
			l.unref(id, e)
		}, nil
	case <-ctx.Done():
		l.unref(id, e)
		return nil, ctx.Err()
	}
}

func (l *aggregateLocks) unref(id identifier.ID, e *lockEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, id)
	}
}

// size reports how many ids have a holder or waiter.
func (l *aggregateLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
