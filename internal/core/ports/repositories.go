package ports

import (
	"context"

	"withdrawal-service/internal/core/domain"
)

// WithdrawalStore owns the canonical ordered collection of withdrawal
// records and is the sole mutation point.
type WithdrawalStore interface {
	// Insert adds a new record. Fails with apperror.ErrDuplicateID when
	// the id is already present; the id scheme should prevent that in
	// normal single-writer operation.
	Insert(ctx context.Context, w *domain.Withdrawal) error
	// All returns a deep-copied snapshot of every record in insertion
	// order (newest first). Callers cannot mutate store state through
	// the returned slice.
	All(ctx context.Context) ([]domain.Withdrawal, error)
	// FindByID returns the record or (nil, nil) when absent. Absence is
	// an expected outcome, not an error.
	FindByID(ctx context.Context, id string) (*domain.Withdrawal, error)
	// NextID returns the next identifier in the WD_### sequence, derived
	// from the current record count. Not collision-safe under concurrent
	// inserts; callers needing strict sequential ids must serialize.
	NextID(ctx context.Context) (string, error)
}
