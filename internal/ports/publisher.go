package ports

import (
	"context"

	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
)

// EventPublisher dispatches committed aggregate events to the outside world.
// Publish is called only after the unit of work that produced the events has
// committed.
type EventPublisher interface {
	Publish(ctx context.Context, events []aggregate.Event) error
}
