// Package memory is an in-process snapshot store used by tests and as a
// scratch backend when no data directory is configured.
package memory

import (
	"context"
	"sync"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/store"
)

type Store struct {
	mu       sync.RWMutex
	docs     map[string]*domain.AppData
	accounts map[string]domain.Account
}

func New() *Store {
	return &Store{
		docs:     make(map[string]*domain.AppData),
		accounts: make(map[string]domain.Account),
	}
}

func (s *Store) LoadAppData(_ context.Context, accountID string) (*domain.AppData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.docs[accountID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return data.Clone(), nil
}

func (s *Store) SaveAppData(_ context.Context, accountID string, data *domain.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[accountID] = data.Clone()
	return nil
}

func (s *Store) CreateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.ID]; exists {
		return store.ErrAccountExists
	}
	s.accounts[account.ID] = account
	return nil
}

func (s *Store) GetAccount(_ context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := account
	return &copied, nil
}
