// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// LifecycleResponse represents one role or category in HTTP responses.
type LifecycleResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Revoked   bool   `json:"revoked"`
	Version   int64  `json:"version"`
	UpdatedAt string `json:"updated_at"`
}

// ToLifecycleResponse converts a snapshot to its HTTP form.
func ToLifecycleResponse(s *lifecycle.Snapshot) LifecycleResponse {
	return LifecycleResponse{
		ID:        s.ID.String(),
		Kind:      string(s.Kind),
		Name:      s.Name,
		Status:    string(s.Status),
		Revoked:   s.Revoked,
		Version:   s.Version,
		UpdatedAt: s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// BulkItemErrorResponse describes one failed item in a bulk response.
type BulkItemErrorResponse struct {
	ID     string `json:"id"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

// BulkDeactivateResponse reports per-item outcomes of a bulk deactivation.
type BulkDeactivateResponse struct {
	Succeeded []LifecycleResponse     `json:"succeeded"`
	Errors    []BulkItemErrorResponse `json:"errors,omitempty"`
	Count     int                     `json:"count"`
}

// ToBulkDeactivateResponse converts a bulk result to its HTTP form. Each
// item error carries the status its single-item call would have returned.
func ToBulkDeactivateResponse(res *ports.BulkResult) BulkDeactivateResponse {
	out := BulkDeactivateResponse{
		Succeeded: make([]LifecycleResponse, len(res.Succeeded)),
		Count:     len(res.Succeeded),
	}
	for i := range res.Succeeded {
		out.Succeeded[i] = ToLifecycleResponse(&res.Succeeded[i])
	}
	for _, item := range res.Errors {
		out.Errors = append(out.Errors, BulkItemErrorResponse{
			ID:     item.ID.String(),
			Status: statusOf(item.Err),
			Detail: item.Err.Error(),
		})
	}
	return out
}

// BulkStatus picks the response status for a bulk result: 200 when every
// item succeeded, 207 otherwise.
func BulkStatus(res *ports.BulkResult) int {
	if len(res.Errors) == 0 {
		return http.StatusOK
	}
	return http.StatusMultiStatus
}
