package lifecycle

import (
	"strings"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
)

// Status is the lifecycle status of an aggregate.
type Status string

// Valid Status values.
const (
	StatusUndefined Status = "undefined"
	StatusActive    Status = "active"
	StatusDisabled  Status = "disabled"
	StatusDestroyed Status = "destroyed"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusUndefined, StatusActive, StatusDisabled, StatusDestroyed:
		return true
	default:
		return false
	}
}

// Kind distinguishes the aggregates that share this lifecycle.
type Kind string

// Supported kinds.
const (
	KindRole     Kind = "role"
	KindCategory Kind = "category"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRole, KindCategory:
		return k, nil
	default:
		return "", &domain.ValidationError{Fields: map[string]string{"kind": "must be one of: role, category"}}
	}
}

// State is the snapshot owned by one lifecycle aggregate.
type State struct {
	Kind   Kind
	Name   string
	Status Status
	// Revoked is set by Revoke and cleared by the next Activate.
	Revoked bool
}

// Initial returns the explicit starting state for a kind.
func Initial(kind Kind) State {
	return State{Kind: kind, Status: StatusUndefined}
}
