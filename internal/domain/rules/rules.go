// Package rules is a minimal named-predicate checker used by aggregate
// behaviors to guard state transitions. Rules only read the aggregate's own
// state, so evaluating them has no side effects.
package rules

import "github.com/jsamuelsen11/storefront-core/internal/domain"

// Rule is a named precondition over state S. Message is reported to the
// caller when Holds returns false.
type Rule[S any] struct {
	Name    string
	Holds   func(S) bool
	Message string
}

// New builds a Rule.
func New[S any](name string, holds func(S) bool, message string) Rule[S] {
	return Rule[S]{Name: name, Holds: holds, Message: message}
}

// Check evaluates rules in order against state and returns the first one
// that does not hold as a *domain.RuleViolationError. Later rules are not
// evaluated. A rule with a nil predicate never holds.
func Check[S any](state S, rules ...Rule[S]) *domain.RuleViolationError {
	for _, r := range rules {
		if r.Holds == nil || !r.Holds(state) {
			return &domain.RuleViolationError{Rule: r.Name, Message: r.Message}
		}
	}
	return nil
}
