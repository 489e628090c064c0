package lifecycle

import "github.com/jsamuelsen11/storefront-core/internal/domain/aggregate"

// Event types.
const (
	EventDefined     aggregate.Type = "lifecycle.defined"
	EventActivated   aggregate.Type = "lifecycle.activated"
	EventDeactivated aggregate.Type = "lifecycle.deactivated"
	EventDestroyed   aggregate.Type = "lifecycle.destroyed"
	EventRevoked     aggregate.Type = "lifecycle.revoked"
)

// DefinedPayload is the payload of EventDefined.
type DefinedPayload struct {
	Kind Kind   `json:"kind"`
	Name string `json:"name"`
}

// RevokedPayload is the payload of EventRevoked.
type RevokedPayload struct {
	Reason string `json:"reason,omitempty"`
}
