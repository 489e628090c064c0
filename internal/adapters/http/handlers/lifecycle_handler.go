package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/storefront-core/internal/adapters/http/dto"
	"github.com/jsamuelsen11/storefront-core/internal/domain"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

// LifecycleHandler serves the lifecycle commands for one aggregate kind.
// The router mounts one instance for roles and one for categories.
type LifecycleHandler struct {
	svc  ports.LifecycleService
	kind lifecycle.Kind
}

// NewLifecycleHandler creates a handler for kind backed by svc.
func NewLifecycleHandler(svc ports.LifecycleService, kind lifecycle.Kind) *LifecycleHandler {
	return &LifecycleHandler{svc: svc, kind: kind}
}

// Kind returns the aggregate kind served by h.
func (h *LifecycleHandler) Kind() lifecycle.Kind {
	return h.kind
}

// Define handles POST /api/v1/{roles|categories}.
func (h *LifecycleHandler) Define(w http.ResponseWriter, r *http.Request) {
	var req dto.DefineRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	var id identifier.ID
	if req.ID != "" {
		parsed, err := h.kind.ParseID(req.ID)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		id = parsed
	} else if h.kind == lifecycle.KindRole {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{"id": "is required"}})
		return
	}

	snap, err := h.svc.Define(r.Context(), h.kind, id, req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", r.URL.Path+"/"+snap.ID.String())
	writeJSON(w, r, http.StatusCreated, dto.ToLifecycleResponse(snap))
}

// Get handles GET /api/v1/{roles|categories}/{id}.
func (h *LifecycleHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Get)
}

// Activate handles POST /api/v1/{roles|categories}/{id}/activate.
func (h *LifecycleHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Activate)
}

// Deactivate handles POST /api/v1/{roles|categories}/{id}/deactivate.
func (h *LifecycleHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Deactivate)
}

// Destroy handles POST /api/v1/{roles|categories}/{id}/destroy.
func (h *LifecycleHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.svc.Destroy)
}

// Revoke handles POST /api/v1/{roles|categories}/{id}/revoke. The body is
// optional.
func (h *LifecycleHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	var req dto.RevokeRequest
	if !decodeAndValidate(w, r, &req, true) {
		return
	}
	h.respond(w, r, func(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error) {
		return h.svc.Revoke(ctx, kind, id, req.Reason)
	})
}

// BulkDeactivate handles POST /api/v1/{roles|categories}/bulk-deactivate.
// Responds 200 when every item succeeded and 207 otherwise.
func (h *LifecycleHandler) BulkDeactivate(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeactivateRequest
	if !decodeAndValidate(w, r, &req, false) {
		return
	}

	ids := make([]identifier.ID, len(req.IDs))
	for i, raw := range req.IDs {
		id, err := h.kind.ParseID(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		ids[i] = id
	}

	res, err := h.svc.BulkDeactivate(r.Context(), h.kind, ids)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, dto.BulkStatus(res), dto.ToBulkDeactivateResponse(res))
}

type idCommand func(ctx context.Context, kind lifecycle.Kind, id identifier.ID) (*lifecycle.Snapshot, error)

func (h *LifecycleHandler) respond(w http.ResponseWriter, r *http.Request, cmd idCommand) {
	id, err := parseID(r, h.kind)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snap, err := cmd(r.Context(), h.kind, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToLifecycleResponse(snap))
}
