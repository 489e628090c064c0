package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := &ValidationError{Fields: map[string]string{
		"name": "is required",
		"id":   "must not be empty",
	}}

	want := "validation error: id: must not be empty; name: is required"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	var err error = &ValidationError{Fields: map[string]string{"name": "is required"}}
	wrapped := fmt.Errorf("defining role: %w", err)

	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped, ErrValidation) = false, want true")
	}

	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if verr.Fields["name"] != "is required" {
		t.Errorf("Fields[name] = %q, want %q", verr.Fields["name"], "is required")
	}
}

func TestRuleViolationError(t *testing.T) {
	t.Parallel()

	var err error = &RuleViolationError{Rule: "Disabled", Message: "must be disabled before activation"}

	if !errors.Is(err, ErrRuleViolation) {
		t.Error("errors.Is(err, ErrRuleViolation) = false, want true")
	}
	if errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = true, want false")
	}

	want := "business rule violation: Disabled: must be disabled before activation"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var rv *RuleViolationError
	if !errors.As(fmt.Errorf("activate: %w", err), &rv) {
		t.Fatal("errors.As(*RuleViolationError) = false, want true")
	}
	if rv.Rule != "Disabled" {
		t.Errorf("Rule = %q, want %q", rv.Rule, "Disabled")
	}
}
