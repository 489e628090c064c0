// Package lifecycle implements the status-machine aggregate shared by the
// storefront's definable entities: identity roles and catalog categories.
//
// States move Undefined -> ... -> Active <-> Disabled -> Destroyed. Each
// transition has exactly one behavior, guarded by rules that read only the
// aggregate's own state:
//
//	Define      (no rules)                -> Defined
//	Activate    NotDestroyed, Disabled    -> Activated
//	Deactivate  NotDestroyed, Active      -> Deactivated
//	Destroy     Disabled                  -> Destroyed
//	Revoke      NotDestroyed              -> Revoked
//
// Undefined is an explicit initial status and does not satisfy the Disabled
// rule, so a freshly defined aggregate cannot be activated directly. Revoke
// moves an Undefined or Active aggregate to Disabled.
package lifecycle
