package ports

import "context"

// HealthChecker is implemented by any component that can report its health.
// The document store registers itself as "store".
type HealthChecker interface {
	// Name returns a stable identifier used as the key in readiness output.
	Name() string

	// HealthCheck returns nil if the component is usable, or an error
	// describing why not. Implementations must honor ctx deadlines.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry manages registration and execution of health checkers.
// The readiness endpoint reports its results.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll executes all registered health checks and returns results
	// keyed by checker name. Nil values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
