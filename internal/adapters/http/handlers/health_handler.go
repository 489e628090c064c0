package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/storefront-core/internal/platform/logging"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

const (
	checkOK          = "ok"
	checkUnavailable = "unavailable"
)

// readinessResponse is the body of GET /health/ready. Checks maps every
// registered dependency (document store, event gateway) to ok or
// unavailable; Failing lists the unavailable ones in name order.
type readinessResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Failing []string          `json:"failing,omitempty"`
}

// HealthHandler serves the liveness and readiness endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": checkOK})
}

// Readiness handles GET /health/ready: 200 when every dependency check
// passes, 503 otherwise. Check errors can carry store addresses, so they are
// logged rather than returned.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := readinessResponse{Status: "ready", Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = checkOK
			continue
		}
		resp.Checks[name] = checkUnavailable
		resp.Failing = append(resp.Failing, name)
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	code := http.StatusOK
	if len(resp.Failing) > 0 {
		slices.Sort(resp.Failing)
		resp.Status = "not_ready"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, r, code, resp)
}
