package publisher

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

var _ ports.EventPublisher = (*Log)(nil)

// Log publishes events by logging them at info level. It is the default
// publisher for local runs.
type Log struct {
	logger *slog.Logger
}

// NewLog returns a Log publisher. When logger is nil the request-scoped
// logger from the context is used.
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Publish implements ports.EventPublisher. It never fails.
func (l *Log) Publish(ctx context.Context, events []aggregate.Event) error {
	logger := l.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	for _, evt := range events {
		logger.InfoContext(ctx, "event published",
			slog.String("event_type", string(evt.Type)),
			slog.String("aggregate_id", evt.AggregateID.String()),
			slog.Int64("sequence", evt.Sequence),
		)
	}
	return nil
}
