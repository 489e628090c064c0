package aggregate

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
)

// Type names the fact an event records (e.g. "role.activated").
type Type string

// Event is an immutable record of a state-changing fact. Deciders create the
// type and payload; Root stamps the aggregate ID, sequence number, and time
// when the event is accepted.
type Event struct {
	Type        Type            `json:"type"`
	AggregateID identifier.ID   `json:"aggregate_id"`
	Sequence    int64           `json:"sequence"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// DecodePayload unmarshals the event payload into P.
func DecodePayload[P any](evt Event) (P, error) {
	var p P
	if len(evt.Payload) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(evt.Payload, &p); err != nil {
		return p, fmt.Errorf("decoding %s payload: %w", evt.Type, err)
	}
	return p, nil
}

// clone returns a copy whose payload does not alias the receiver's.
func (e Event) clone() Event {
	if e.Payload != nil {
		e.Payload = append(json.RawMessage(nil), e.Payload...)
	}
	return e
}
