package lifecycle

import (
	"strings"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/domain/rules"
)

// Rule names reported in violations.
const (
	RuleNotDestroyed = "NotDestroyed"
	RuleDisabled     = "Disabled"
	RuleActive       = "Active"
)

var (
	notDestroyed = rules.New(RuleNotDestroyed,
		func(s State) bool { return s.Status != StatusDestroyed },
		"has been destroyed")
	isDisabled = rules.New(RuleDisabled,
		func(s State) bool { return s.Status == StatusDisabled },
		"must be disabled")
	isActive = rules.New(RuleActive,
		func(s State) bool { return s.Status == StatusActive },
		"must be active")
)

// Define names the aggregate. It has no guard rules; the name is validated
// as input before a decision is made.
func Define(kind Kind, name string) aggregate.Behavior[State] {
	name = strings.TrimSpace(name)
	return func(State) aggregate.Decision {
		if name == "" {
			return aggregate.Decision{Err: &domain.ValidationError{Fields: map[string]string{"name": "is required"}}}
		}
		return aggregate.Emit(EventDefined, DefinedPayload{Kind: kind, Name: name})
	}
}

// Activate moves a disabled aggregate to active.
func Activate() aggregate.Behavior[State] {
	return guarded(EventActivated, nil, notDestroyed, isDisabled)
}

// Deactivate moves an active aggregate to disabled.
func Deactivate() aggregate.Behavior[State] {
	return guarded(EventDeactivated, nil, notDestroyed, isActive)
}

// Destroy permanently retires a disabled aggregate.
func Destroy() aggregate.Behavior[State] {
	return guarded(EventDestroyed, nil, isDisabled)
}

// Revoke withdraws the aggregate from use, leaving it disabled.
func Revoke(reason string) aggregate.Behavior[State] {
	return guarded(EventRevoked, RevokedPayload{Reason: strings.TrimSpace(reason)}, notDestroyed)
}

func guarded(t aggregate.Type, payload any, guards ...rules.Rule[State]) aggregate.Behavior[State] {
	return func(s State) aggregate.Decision {
		if v := rules.Check(s, guards...); v != nil {
			return aggregate.Reject(v)
		}
		return aggregate.Emit(t, payload)
	}
}
