package memory

import "context"

// HealthCheck implements ports.HealthChecker for the in-memory store.
type HealthCheck struct {
	store *Store
}

// NewHealthCheck creates a store health checker.
func NewHealthCheck(store *Store) *HealthCheck {
	return &HealthCheck{store: store}
}

// Ping verifies the store is usable by taking a read snapshot.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.store.All(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "store"
}
