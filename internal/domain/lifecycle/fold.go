package lifecycle

import (
	"fmt"

	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
)

// Fold applies one lifecycle event to state.
func Fold(s State, evt aggregate.Event) (State, error) {
	switch evt.Type {
	case EventDefined:
		p, err := aggregate.DecodePayload[DefinedPayload](evt)
		if err != nil {
			return s, err
		}
		if p.Kind != "" {
			s.Kind = p.Kind
		}
		s.Name = p.Name
		if s.Status == "" {
			s.Status = StatusUndefined
		}
	case EventActivated:
		// Reinstating a revoked aggregate lifts the revocation.
		s.Status = StatusActive
		s.Revoked = false
	case EventDeactivated:
		s.Status = StatusDisabled
	case EventDestroyed:
		s.Status = StatusDestroyed
	case EventRevoked:
		s.Status = StatusDisabled
		s.Revoked = true
	default:
		return s, fmt.Errorf("lifecycle: unknown event type %q", evt.Type)
	}
	return s, nil
}
