package aggregate

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
)

// Decision is the pure outcome of a behavior: the events to emit, or the
// rule violation that rejected the behavior. Err reports a failure to build
// the decision itself (for example an unencodable payload).
type Decision struct {
	Events    []Event
	Rejection *domain.RuleViolationError
	Err       error
}

// Behavior decides what happens when a command runs against state S.
type Behavior[S any] func(S) Decision

// Accept returns a decision that emits the given events.
func Accept(events ...Event) Decision {
	return Decision{Events: append([]Event(nil), events...)}
}

// Reject returns a decision carrying a rule violation.
func Reject(violation *domain.RuleViolationError) Decision {
	return Decision{Rejection: violation}
}

// Emit returns a decision that emits one event of type t with payload
// encoded as JSON.
func Emit(t Type, payload any) Decision {
	evt := Event{Type: t}
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return Decision{Err: fmt.Errorf("encoding %s payload: %w", t, err)}
		}
		evt.Payload = data
	}
	return Accept(evt)
}

// Rejected reports whether the decision carries a rule violation.
func (d Decision) Rejected() bool {
	return d.Rejection != nil
}
