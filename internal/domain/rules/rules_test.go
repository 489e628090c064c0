package rules

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
)

type counter struct {
	n int
}

func TestCheck(t *testing.T) {
	t.Parallel()

	positive := New("Positive", func(c counter) bool { return c.n > 0 }, "must be positive")
	small := New("Small", func(c counter) bool { return c.n < 10 }, "must be below ten")

	tests := []struct {
		name     string
		state    counter
		rules    []Rule[counter]
		wantRule string
	}{
		{name: "no rules always pass", state: counter{n: -1}},
		{name: "all hold", state: counter{n: 5}, rules: []Rule[counter]{positive, small}},
		{name: "first failing rule is reported", state: counter{n: -1}, rules: []Rule[counter]{positive, small}, wantRule: "Positive"},
		{name: "second rule fails", state: counter{n: 11}, rules: []Rule[counter]{positive, small}, wantRule: "Small"},
		{name: "nil predicate fails", state: counter{n: 1}, rules: []Rule[counter]{{Name: "Broken", Message: "no predicate"}}, wantRule: "Broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			violation := Check(tt.state, tt.rules...)
			if tt.wantRule == "" {
				if violation != nil {
					t.Fatalf("Check() = %v, want nil", violation)
				}
				return
			}
			if violation == nil {
				t.Fatalf("Check() = nil, want violation of %q", tt.wantRule)
			}
			if violation.Rule != tt.wantRule {
				t.Errorf("Rule = %q, want %q", violation.Rule, tt.wantRule)
			}
			if !errors.Is(violation, domain.ErrRuleViolation) {
				t.Error("errors.Is(violation, ErrRuleViolation) = false, want true")
			}
		})
	}
}

func TestCheck_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	evaluated := 0
	failing := New("Fails", func(int) bool { evaluated++; return false }, "fails")
	neverRun := New("NeverRun", func(int) bool { evaluated++; return true }, "unused")

	if v := Check(0, failing, neverRun); v == nil || v.Rule != "Fails" {
		t.Fatalf("Check() = %v, want violation of Fails", v)
	}
	if evaluated != 1 {
		t.Errorf("evaluated %d predicates, want 1", evaluated)
	}
}
