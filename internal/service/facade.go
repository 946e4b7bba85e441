package service

import (
	"context"
	"sync"

	"withdrawal-service/internal/core/domain"
	"withdrawal-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// stateFacade implements ports.StateFacade. It bridges UI intent to the
// query and command services and caches the last good results for a
// session; it holds no business rules of its own.
type stateFacade struct {
	querySvc   ports.QueryService
	commandSvc ports.CommandService
	log        zerolog.Logger

	mu          sync.Mutex
	status      string
	query       string
	withdrawals []domain.Withdrawal
	stats       *ports.WithdrawalStats
	loading     bool
	errMsg      string
}

// NewStateFacade creates a facade with the status filter set to "all".
func NewStateFacade(querySvc ports.QueryService, commandSvc ports.CommandService, log zerolog.Logger) ports.StateFacade {
	return &stateFacade{
		querySvc:   querySvc,
		commandSvc: commandSvc,
		log:        log,
		status:     ports.StatusFilterAll,
	}
}

// Refresh re-runs search and stats with the current filter state. On
// failure the previous cached results stay in place (stale but
// available) and the error message is recorded for the snapshot.
func (f *stateFacade) Refresh(ctx context.Context) error {
	f.mu.Lock()
	params := ports.SearchParams{Status: f.status, Query: f.query}
	f.loading = true
	f.mu.Unlock()

	withdrawals, err := f.querySvc.Search(ctx, params)
	var stats *ports.WithdrawalStats
	if err == nil {
		stats, err = f.querySvc.Stats(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false

	if err != nil {
		f.errMsg = "failed to fetch withdrawals"
		f.log.Error().Err(err).Msg("overview refresh failed")
		return err
	}

	f.withdrawals = withdrawals
	f.stats = stats
	f.errMsg = ""
	return nil
}

// SetStatusFilter updates the status filter. It does not fetch; the
// caller drives Refresh.
func (f *stateFacade) SetStatusFilter(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = status
}

// SetSearchQuery updates the text filter. It does not fetch; the UI
// debounces keystrokes before calling Refresh.
func (f *stateFacade) SetSearchQuery(query string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = query
}

// SubmitCreate delegates to the command service, then refreshes the
// cache so list and stats reconcile with the new record. Failures
// surface to the caller without touching the cache.
func (f *stateFacade) SubmitCreate(ctx context.Context, req ports.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	created, err := f.commandSvc.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := f.Refresh(ctx); err != nil {
		f.log.Warn().Err(err).Str("withdrawal_id", created.ID).Msg("refresh after create failed")
	}
	return created, nil
}

// Snapshot returns a copy of the facade's published state.
func (f *stateFacade) Snapshot() ports.OverviewSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	withdrawals := make([]domain.Withdrawal, len(f.withdrawals))
	copy(withdrawals, f.withdrawals)

	var stats *ports.WithdrawalStats
	if f.stats != nil {
		cp := *f.stats
		stats = &cp
	}

	return ports.OverviewSnapshot{
		Withdrawals: withdrawals,
		Stats:       stats,
		Status:      f.status,
		Query:       f.query,
		Loading:     f.loading,
		Err:         f.errMsg,
	}
}
