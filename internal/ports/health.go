package ports

import "context"

// HealthChecker is implemented by components whose state affects readiness,
// such as the actor store.
type HealthChecker interface {
	// Name identifies the component in readiness output (e.g. "actor-store").
	Name() string

	// HealthCheck returns nil if the component is healthy. Implementations
	// should respect context cancellation.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects health checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds a checker.
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns results keyed by name. Nil
	// values indicate healthy components.
	CheckAll(ctx context.Context) map[string]error
}
