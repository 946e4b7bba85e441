package ports

import (
	"context"

	"withdrawal-service/internal/core/domain"
)

// StatusFilterAll disables status filtering in search params.
const StatusFilterAll = "all"

// SearchParams holds filter criteria for withdrawal search.
type SearchParams struct {
	// Status is either StatusFilterAll or a specific withdrawal status.
	Status string
	// Query is matched case-insensitively as a substring against
	// userName, accountNumber and id. Empty (after trimming) means no
	// text filtering.
	Query string
}

// WithdrawalStats holds aggregate counts and sums over the store.
type WithdrawalStats struct {
	Total       int
	Pending     int
	Processing  int
	Completed   int
	Failed      int
	Canceled    int
	TotalAmount float64
}

// QueryService defines read-only projections over the withdrawal store.
type QueryService interface {
	// List returns all withdrawals sorted by createdAt descending.
	List(ctx context.Context) ([]domain.Withdrawal, error)
	// GetByID returns one withdrawal or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*domain.Withdrawal, error)
	// Search applies status filter and text search (logical AND), sorted
	// by createdAt descending with stable tie-break.
	Search(ctx context.Context, params SearchParams) ([]domain.Withdrawal, error)
	// Stats returns per-status counts plus the amount sum over all
	// records regardless of status.
	Stats(ctx context.Context) (*WithdrawalStats, error)
}

// CreateWithdrawalRequest holds validated input for withdrawal creation.
type CreateWithdrawalRequest struct {
	UserName      string
	AccountNumber string
	Bank          string
	Amount        float64
	Note          string
}

// CommandService defines the single write path: validated creation.
type CommandService interface {
	// Create validates the request, assigns an id and initial pending
	// history entry, inserts the record and returns it. Validation
	// failures surface as apperror.Validation and leave the store
	// untouched.
	Create(ctx context.Context, req CreateWithdrawalRequest) (*domain.Withdrawal, error)
}

// StageFileRequest describes a client file offered for staging.
type StageFileRequest struct {
	Name        string
	Size        int64
	ContentType string
}

// UploadService stages client files as attachment metadata. Nothing is
// persisted; classification and limits only.
type UploadService interface {
	Stage(ctx context.Context, req StageFileRequest) (*domain.Attachment, error)
}

// OverviewSnapshot is the facade's published state: the last-fetched
// result list and stats plus filter and error state.
type OverviewSnapshot struct {
	Withdrawals []domain.Withdrawal
	Stats       *WithdrawalStats
	Status      string
	Query       string
	Loading     bool
	Err         string
}

// StateFacade mediates between a UI session and the services: it holds
// current filter criteria and cached query results, and re-fetches on
// demand. Setters never fetch; callers drive Refresh explicitly (the UI
// debounces text input before doing so).
type StateFacade interface {
	Refresh(ctx context.Context) error
	SetStatusFilter(status string)
	SetSearchQuery(query string)
	// SubmitCreate delegates to the command service and refreshes the
	// cache on success. Validation failures leave the cache untouched.
	SubmitCreate(ctx context.Context, req CreateWithdrawalRequest) (*domain.Withdrawal, error)
	Snapshot() OverviewSnapshot
}
