package ports

import "context"

// HealthChecker is a component whose availability gates readiness. Both
// stores implement it: the memory store is always healthy and the postgres
// store pings its pool unless its circuit breaker is open.
type HealthChecker interface {
	// Name keys the checker in readiness output, e.g. "postgres".
	Name() string
	// HealthCheck returns nil when the component can serve requests. It must
	// honor ctx's deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers and runs them for the readiness probe.
type HealthRegistry interface {
	// Register adds checker, replacing any earlier one with the same name.
	Register(checker HealthChecker)
	// CheckAll runs every check and returns results keyed by name. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
