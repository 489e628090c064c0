package ports

import (
	"context"

	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
)

// LifecycleService defines the service port for role and category lifecycle
// commands. Implemented by the application layer; called by inbound adapters
// (handlers). Every command runs in its own unit of work.
type LifecycleService interface {
	// Define creates a new aggregate of the given kind. A zero id asks the
	// service to assign one (categories only; roles require a slug).
	// Returns domain.ErrConflict if the id is already defined.
	// Returns domain.ErrValidation if the name or id is invalid.
	Define(ctx context.Context, kind lifecycle.Kind, id identifier.ID, name string) (*lifecycle.Snapshot, error)

	// Activate, Deactivate, Destroy and Revoke run the matching behavior.
	// They return domain.ErrNotFound for an unknown id and a
	// *domain.RuleViolationError when a guard rule does not hold.
	Activate(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error)
	Deactivate(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error)
	Destroy(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error)
	Revoke(ctx context.Context, kind lifecycle.Kind, id identifier.ID, reason string) (*lifecycle.Snapshot, error)

	// Get returns the current read projection.
	// Returns domain.ErrNotFound if the aggregate does not exist.
	Get(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error)

	// BulkDeactivate deactivates several aggregates concurrently. Uses partial
	// success semantics: each command succeeds or fails independently and
	// per-item failures are collected in BulkResult.Errors.
	BulkDeactivate(ctx context.Context, kind lifecycle.Kind, ids []identifier.ID) (*BulkResult, error)
}

// BulkItemError records a single failed command within a bulk operation.
type BulkItemError struct {
	ID  identifier.ID
	Err error
}

// BulkResult holds the outcomes of a bulk command.
type BulkResult struct {
	Succeeded []lifecycle.Snapshot
	Errors    []BulkItemError
}
