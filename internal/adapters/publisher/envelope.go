package publisher

import (
	"encoding/json"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
)

// Message is the wire form of one committed event.
type Message struct {
	Type        string          `json:"type"`
	AggregateID string          `json:"aggregate_id"`
	Sequence    int64           `json:"sequence"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// Batch is the webhook request body.
type Batch struct {
	Events []Message `json:"events"`
}

func toMessage(evt aggregate.Event) Message {
	return Message{
		Type:        string(evt.Type),
		AggregateID: evt.AggregateID.String(),
		Sequence:    evt.Sequence,
		OccurredAt:  evt.OccurredAt.UTC(),
		Payload:     evt.Payload,
	}
}

func toBatch(events []aggregate.Event) Batch {
	b := Batch{Events: make([]Message, 0, len(events))}
	for _, evt := range events {
		b.Events = append(b.Events, toMessage(evt))
	}
	return b
}
