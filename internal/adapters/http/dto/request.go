package dto

import (
	"strconv"
	"strings"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
)

const (
	msgRequired = "is required"

	maxNameLength   = 200
	maxReasonLength = 500
	maxBulkIDs      = 100
)

// DefineRequest is the JSON body for defining a role or category. ID is
// required for roles and optional for categories (one is generated).
type DefineRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Validate checks field presence and length.
// Returns a *domain.ValidationError if any checks fail.
func (r *DefineRequest) Validate() error {
	fields := make(map[string]string)

	name := strings.TrimSpace(r.Name)
	switch {
	case name == "":
		fields["name"] = msgRequired
	case len(name) > maxNameLength:
		fields["name"] = "must be at most " + strconv.Itoa(maxNameLength) + " characters"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// RevokeRequest is the optional JSON body for revoking an aggregate.
type RevokeRequest struct {
	Reason string `json:"reason"`
}

// Validate bounds the reason length.
func (r *RevokeRequest) Validate() error {
	if len(r.Reason) > maxReasonLength {
		return &domain.ValidationError{Fields: map[string]string{
			"reason": "must be at most " + strconv.Itoa(maxReasonLength) + " characters",
		}}
	}
	return nil
}

// BulkDeactivateRequest is the JSON body for deactivating several
// aggregates in one call.
type BulkDeactivateRequest struct {
	IDs []string `json:"ids"`
}

// Validate checks that between 1 and maxBulkIDs non-blank ids are given.
func (r *BulkDeactivateRequest) Validate() error {
	fields := make(map[string]string)

	switch {
	case len(r.IDs) == 0:
		fields["ids"] = msgRequired
	case len(r.IDs) > maxBulkIDs:
		fields["ids"] = "must contain at most " + strconv.Itoa(maxBulkIDs) + " items"
	default:
		for i, id := range r.IDs {
			if strings.TrimSpace(id) == "" {
				fields["ids["+strconv.Itoa(i)+"]"] = "must not be empty"
			}
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
