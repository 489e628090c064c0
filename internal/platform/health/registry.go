// Package health tracks the readiness of the service's backing components:
// the document store, the event publisher and any outbound client. The
// readiness endpoint reports ready only when every registered check passes.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/storefront-core/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

const defaultCheckTimeout = 2 * time.Second

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout bounds each individual check. Zero disables the bound.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.checkTimeout = d
	}
}

// Registry is a thread-safe [ports.HealthRegistry].
type Registry struct {
	mu           sync.RWMutex
	checkers     []ports.HealthChecker
	checkTimeout time.Duration
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: defaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results keyed
// by checker name. Nil values indicate healthy components. When two checkers
// share a name the one registered last wins.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = r.check(ctx, c)
		}()
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.checkTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.checkTimeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}
