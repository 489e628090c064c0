package app

import (
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"
	"github.com/jsamuelsen11/storefront-core/internal/domain/identifier"
	"github.com/jsamuelsen11/storefront-core/internal/domain/lifecycle"
)

// EventStream is the persisted event log of one lifecycle aggregate and the
// source of truth its state is replayed from.
type EventStream struct {
	ID     identifier.ID     `json:"id"`
	Kind   lifecycle.Kind    `json:"kind"`
	Events []aggregate.Event `json:"events"`
}

// LifecycleView is the read projection written alongside the stream.
type LifecycleView struct {
	ID        identifier.ID    `json:"id"`
	Kind      lifecycle.Kind   `json:"kind"`
	Name      string           `json:"name"`
	Status    lifecycle.Status `json:"status"`
	Revoked   bool             `json:"revoked"`
	Version   int64            `json:"version"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Snapshot converts the view to its domain form.
func (v LifecycleView) Snapshot() lifecycle.Snapshot {
	return lifecycle.Snapshot{
		ID:        v.ID,
		Kind:      v.Kind,
		Name:      v.Name,
		Status:    v.Status,
		Revoked:   v.Revoked,
		Version:   v.Version,
		UpdatedAt: v.UpdatedAt,
	}
}
