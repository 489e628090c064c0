package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")
	ErrForbidden     = errors.New("forbidden")
	ErrUnavailable   = errors.New("unavailable")
	ErrRuleViolation = errors.New("business rule violation")
	ErrUnsupported   = errors.New("not implemented")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// RuleViolationError is the structured rejection produced when an aggregate
// behavior's guard rule does not hold. Rule is the rule's name and Message is
// safe to return to the caller verbatim.
//
// Rule violations are always detected before any state is mutated, so the
// command can be retried once the triggering condition is corrected.
type RuleViolationError struct {
	Rule    string
	Message string
}

func (e *RuleViolationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrRuleViolation.Error(), e.Rule, e.Message)
}

func (e *RuleViolationError) Unwrap() error {
	return ErrRuleViolation
}
