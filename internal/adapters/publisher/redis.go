package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

var _ ports.EventPublisher = (*Redis)(nil)

// Redis publishes each event as a JSON message on one pub/sub channel.
// Messages in a batch are sent in a single pipeline, in event order.
type Redis struct {
	rdb     goredis.UniversalClient
	channel string
}

// NewRedis returns a publisher that sends to channel.
func NewRedis(rdb goredis.UniversalClient, channel string) *Redis {
	return &Redis{rdb: rdb, channel: channel}
}

// Publish implements ports.EventPublisher.
func (r *Redis) Publish(ctx context.Context, events []aggregate.Event) error {
	if len(events) == 0 {
		return nil
	}

	_, err := r.rdb.Pipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, evt := range events {
			data, err := json.Marshal(toMessage(evt))
			if err != nil {
				return fmt.Errorf("encoding %s: %w", evt.Type, err)
			}
			pipe.Publish(ctx, r.channel, data)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis publish to %s: %w", r.channel, err)
	}
	return nil
}

// Name identifies the publisher in readiness results.
func (r *Redis) Name() string {
	return "event-publisher"
}

// HealthCheck pings the Redis server.
func (r *Redis) HealthCheck(ctx context.Context) error {
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis publisher: %w", err)
	}
	return nil
}
