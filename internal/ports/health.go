package ports

import "context"

// HealthChecker reports whether a backing component of the command path
// (document store, event gateway, cache) can serve requests right now.
type HealthChecker interface {
	// Name keys the check in readiness output, e.g. "document-store".
	Name() string
	// HealthCheck returns nil when the component is usable. It must honor
	// ctx, which carries the per-check deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry fans a readiness request out to every registered checker.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll maps checker names to their result; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
