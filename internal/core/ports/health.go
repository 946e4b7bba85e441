package ports

import "context"

// HealthChecker checks a dependency's health.
type HealthChecker interface {
	// Ping verifies the dependency is usable. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "store").
	Name() string
}
