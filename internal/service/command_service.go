package service

import (
	"context"
	"strings"
	"time"

	"withdrawal-service/internal/core/domain"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/apperror"

	"github.com/rs/zerolog"
)

// commandService implements ports.CommandService, the only write path.
type commandService struct {
	store ports.WithdrawalStore
	log   zerolog.Logger
	now   func() time.Time
}

// NewCommandService creates a new command service.
func NewCommandService(store ports.WithdrawalStore, log zerolog.Logger) ports.CommandService {
	return &commandService{store: store, log: log, now: time.Now}
}

// Create validates the request, assigns the next store id and inserts a
// pending record with a single-entry history. Validation rules apply in
// order and the first failure wins; no failure mutates the store.
func (s *commandService) Create(ctx context.Context, req ports.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	userName := strings.TrimSpace(req.UserName)
	accountNumber := strings.TrimSpace(req.AccountNumber)

	if userName == "" {
		return nil, apperror.Validation("userName required")
	}
	if accountNumber == "" {
		return nil, apperror.Validation("accountNumber required")
	}
	if req.Bank == "" {
		return nil, apperror.Validation("bank required")
	}
	if !domain.IsValidBank(domain.BankCode(req.Bank)) {
		return nil, apperror.Validation("unknown bank code")
	}
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}

	id, err := s.store.NextID(ctx)
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	now := s.now().UTC()
	w := &domain.Withdrawal{
		ID:            id,
		UserName:      userName,
		AccountNumber: accountNumber,
		Bank:          domain.BankCode(req.Bank),
		Amount:        req.Amount,
		Currency:      domain.DefaultCurrency,
		Status:        domain.StatusPending,
		CreatedAt:     now,
		History: []domain.StatusHistoryEntry{
			{Status: domain.StatusPending, At: now},
		},
		Attachments: []domain.Attachment{},
		Note:        req.Note,
	}

	if err := s.store.Insert(ctx, w); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("withdrawal_id", w.ID).
		Str("bank", string(w.Bank)).
		Float64("amount", w.Amount).
		Msg("withdrawal created")

	return w, nil
}
