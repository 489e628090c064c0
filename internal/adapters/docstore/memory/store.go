// Package memory provides a map-backed document store for the local profile
// and for tests. Documents live only as long as the process.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// Compile-time check that Store implements ports.DocumentStore.
var _ ports.DocumentStore = (*Store)(nil)

// Store is a concurrency-safe in-memory ports.DocumentStore.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[identifier.ID][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{collections: make(map[string]map[identifier.ID][]byte)}
}

// FindByID returns a copy of the stored body.
func (s *Store) FindByID(_ context.Context, collection string, id identifier.ID) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	body, ok := s.collections[collection][id]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(body), true, nil
}

// InsertMany inserts all records or none. An id that already exists, or
// appears twice in records, fails the whole batch with domain.ErrConflict.
func (s *Store) InsertMany(_ context.Context, collection string, records []ports.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	seen := make(map[identifier.ID]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%s %s: duplicate in batch: %w", collection, r.ID.Key(), domain.ErrConflict)
		}
		seen[r.ID] = struct{}{}
		if _, exists := docs[r.ID]; exists {
			return fmt.Errorf("%s %s: %w", collection, r.ID.Key(), domain.ErrConflict)
		}
	}

	if docs == nil {
		docs = make(map[identifier.ID][]byte, len(records))
		s.collections[collection] = docs
	}
	for _, r := range records {
		docs[r.ID] = bytes.Clone(r.Body)
	}
	return nil
}

// ReplaceByID overwrites an existing document.
func (s *Store) ReplaceByID(_ context.Context, collection string, rec ports.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	if _, exists := docs[rec.ID]; !exists {
		return fmt.Errorf("%s %s: %w", collection, rec.ID.Key(), domain.ErrNotFound)
	}
	docs[rec.ID] = bytes.Clone(rec.Body)
	return nil
}

// DeleteByID removes a document if present.
func (s *Store) DeleteByID(_ context.Context, collection string, id identifier.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

// Len returns the number of documents in collection.
func (s *Store) Len(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}
