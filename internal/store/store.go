// Package store defines snapshot persistence for the per-account AppData
// document and the shop account registry used by auth.
package store

import (
	"context"
	"errors"

	"mobipos/backend/internal/domain"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAccountExists = errors.New("account already exists")
)

// SnapshotStore persists whole AppData documents, one per shop account.
// Save always overwrites the full document; there are no partial updates.
type SnapshotStore interface {
	LoadAppData(ctx context.Context, accountID string) (*domain.AppData, error)
	SaveAppData(ctx context.Context, accountID string, data *domain.AppData) error

	CreateAccount(ctx context.Context, account domain.Account) error
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}
