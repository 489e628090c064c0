package ports

import (
	"context"

	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
)

// Record is one encoded document addressed by its identifier.
type Record struct {
	ID   identifier.ID
	Body []byte
}

// DocumentStore is the persistence port used by the unit of work. Each
// collection is a flat keyspace of identifier -> opaque document body.
// Implemented by the docstore adapters (memory, sqlite, redis).
type DocumentStore interface {
	// FindByID returns the body stored under id. A missing document is
	// reported as found=false with a nil error.
	FindByID(ctx context.Context, collection string, id identifier.ID) (body []byte, found bool, err error)

	// InsertMany inserts records in one batch. Implementations return
	// domain.ErrConflict when a record's id already exists.
	InsertMany(ctx context.Context, collection string, records []Record) error

	// ReplaceByID overwrites the document stored under rec.ID.
	// Returns domain.ErrNotFound if no such document exists.
	ReplaceByID(ctx context.Context, collection string, rec Record) error

	// DeleteByID removes the document stored under id. Deleting a missing
	// document is not an error.
	DeleteByID(ctx context.Context, collection string, id identifier.ID) error
}
