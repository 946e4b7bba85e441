package service

import (
	"context"
	"sort"
	"strings"

	"withdrawal-service/internal/core/domain"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/apperror"
)

// queryService implements ports.QueryService.
type queryService struct {
	store ports.WithdrawalStore
}

// NewQueryService creates a new query service.
func NewQueryService(store ports.WithdrawalStore) ports.QueryService {
	return &queryService{store: store}
}

// List returns all withdrawals sorted by createdAt descending. Records
// with equal timestamps keep the store's relative order.
func (s *queryService) List(ctx context.Context) ([]domain.Withdrawal, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	sortNewestFirst(all)
	return all, nil
}

// GetByID returns one withdrawal or (nil, nil) when absent.
func (s *queryService) GetByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	w, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	return w, nil
}

// Search filters by status and case-insensitive substring match over
// userName, accountNumber and id. The two filters compose with AND.
func (s *queryService) Search(ctx context.Context, params ports.SearchParams) ([]domain.Withdrawal, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	result := all
	if params.Status != "" && params.Status != ports.StatusFilterAll {
		status := domain.WithdrawalStatus(params.Status)
		filtered := result[:0]
		for _, w := range result {
			if w.Status == status {
				filtered = append(filtered, w)
			}
		}
		result = filtered
	}

	if query := strings.ToLower(strings.TrimSpace(params.Query)); query != "" {
		filtered := result[:0]
		for _, w := range result {
			if strings.Contains(strings.ToLower(w.UserName), query) ||
				strings.Contains(strings.ToLower(w.AccountNumber), query) ||
				strings.Contains(strings.ToLower(w.ID), query) {
				filtered = append(filtered, w)
			}
		}
		result = filtered
	}

	sortNewestFirst(result)
	return result, nil
}

// Stats aggregates per-status counts and the amount sum over all
// records. Total always equals the sum of the five status counts.
func (s *queryService) Stats(ctx context.Context) (*ports.WithdrawalStats, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	stats := &ports.WithdrawalStats{Total: len(all)}
	for _, w := range all {
		switch w.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusProcessing:
			stats.Processing++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusFailed:
			stats.Failed++
		case domain.StatusCanceled:
			stats.Canceled++
		}
		stats.TotalAmount += w.Amount
	}
	return stats, nil
}

func sortNewestFirst(withdrawals []domain.Withdrawal) {
	sort.SliceStable(withdrawals, func(i, j int) bool {
		return withdrawals[i].CreatedAt.After(withdrawals[j].CreatedAt)
	})
}
