package lifecycle

import (
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
)

// Snapshot is the read view of one lifecycle aggregate.
type Snapshot struct {
	ID        identifier.ID
	Kind      Kind
	Name      string
	Status    Status
	Revoked   bool
	Version   int64
	UpdatedAt time.Time
}
