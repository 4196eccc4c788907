package ports

import "context"

// HealthChecker reports whether a dependency the site API needs is reachable.
// Every store driver implements it; the readiness probe runs the checks.
type HealthChecker interface {
	// Name labels the check in the readiness response, e.g. "postgrest".
	Name() string

	// HealthCheck returns nil when the dependency answers within ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers at startup and runs them per probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
