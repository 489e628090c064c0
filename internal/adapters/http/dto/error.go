package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
)

const problemContentType = "application/problem+json"

// ErrorResponse is an RFC 9457 problem document.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail points at what caused the problem: "body.<field>" for a bad
// request field, "rule.<Name>" for the lifecycle rule a command broke.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// sentinelStatus is checked in order; the first match wins.
var sentinelStatus = []struct {
	err    error
	status int
}{
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrRuleViolation, http.StatusUnprocessableEntity},
	{domain.ErrUnsupported, http.StatusNotImplemented},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// NewErrorResponse describes err as a problem for the request r.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := statusOf(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	var rerr *domain.RuleViolationError
	switch {
	case errors.As(err, &rerr):
		resp.Detail = rerr.Message
		resp.Errors = []ErrorDetail{{Location: "rule." + rerr.Rule, Message: rerr.Message}}
	case errors.As(err, &verr):
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse sends err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Int("status", resp.Status),
			slog.Any("error", encErr),
		)
	}
}

// statusOf prefers a status the error chooses itself (timeouts, gateway
// replies) over the domain sentinel mapping.
func statusOf(err error) int {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	for _, m := range sentinelStatus {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// fieldDetails locates each field under "body."; the "body" key itself
// describes the whole document.
func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body"
		if field != "body" {
			loc += "." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
