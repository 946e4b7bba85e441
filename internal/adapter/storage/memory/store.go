package memory

import (
	"context"
	"fmt"
	"sync"

	"withdrawal-service/internal/core/domain"
	"withdrawal-service/pkg/apperror"
)

// Store is the in-memory withdrawal store. It keeps records newest
// first and guards them with a RWMutex so readers never observe a
// partial insert. It is the sole mutation point for withdrawal state.
type Store struct {
	mu          sync.RWMutex
	withdrawals []*domain.Withdrawal
	byID        map[string]*domain.Withdrawal
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[string]*domain.Withdrawal)}
}

// NewSeededStore creates a store preloaded with the demo dataset.
func NewSeededStore() *Store {
	s := NewStore()
	seed := SeedWithdrawals()
	// Seed records are defined oldest id first; prepend keeps the
	// newest-insert-first ordering Insert produces.
	for i := range seed {
		w := seed[i]
		s.withdrawals = append([]*domain.Withdrawal{&w}, s.withdrawals...)
		s.byID[w.ID] = &w
	}
	return s
}

// Insert adds a new record at the head of the collection. Duplicate ids
// are rejected; the id generator prevents them in normal operation.
func (s *Store) Insert(ctx context.Context, w *domain.Withdrawal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[w.ID]; exists {
		return apperror.ErrDuplicateID(w.ID)
	}

	cp := w.Clone()
	s.withdrawals = append([]*domain.Withdrawal{cp}, s.withdrawals...)
	s.byID[cp.ID] = cp
	return nil
}

// All returns a deep-copied snapshot of every record in insertion order
// (newest insert first).
func (s *Store) All(ctx context.Context) ([]domain.Withdrawal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Withdrawal, 0, len(s.withdrawals))
	for _, w := range s.withdrawals {
		out = append(out, *w.Clone())
	}
	return out, nil
}

// FindByID returns a copy of the record, or (nil, nil) when absent.
func (s *Store) FindByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	return w.Clone(), nil
}

// NextID derives the next WD_### identifier from the current record
// count. Not collision-safe under concurrent creates or after
// deletions; the store never deletes and assumes a single writer.
func (s *Store) NextID(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("WD_%03d", len(s.withdrawals)+1), nil
}

// Len returns the current record count.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.withdrawals)
}
