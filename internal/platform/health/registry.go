// Package health keeps the set of dependency checks behind the readiness
// endpoint. For this service that is the document store; the registry stays
// generic so additional dependencies can report alongside it.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-service/internal/ports"
)

// DefaultCheckTimeout bounds a single dependency check.
const DefaultCheckTimeout = 2 * time.Second

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout overrides DefaultCheckTimeout. Non-positive values disable
// the per-check deadline; the caller's context still applies.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		r.timeout = d
	}
}

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Checkers are keyed by name; registering a second checker under an existing
// name replaces the first.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty health check registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		checkers: make(map[string]ports.HealthChecker),
		timeout:  DefaultCheckTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[name] = checker
}

// CheckAll runs every registered check concurrently and returns results keyed
// by checker name. Nil values indicate healthy components.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	snapshot := make(map[string]ports.HealthChecker, len(r.checkers))
	for name, c := range r.checkers {
		snapshot[name] = c
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]error, len(snapshot))
	)
	for name, c := range snapshot {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := r.check(ctx, c)

			mu.Lock()
			results[name] = err
			mu.Unlock()
		}()
	}
	wg.Wait()

	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return c.HealthCheck(ctx)
}

// Healthy reports whether every result in a CheckAll map is nil.
func Healthy(results map[string]error) bool {
	for _, err := range results {
		if err != nil {
			return false
		}
	}
	return true
}
