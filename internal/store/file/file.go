// Package file is the default snapshot store: one JSON document per shop
// account under a data directory. It is the durable source of truth; the
// remote mirror is strictly best-effort on top of it.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/store"
)

var accountIDPattern = regexp.MustCompile(`^[a-zA-Z0-9@._-]+$`)

type Store struct {
	mu  sync.Mutex
	dir string
}

func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(filepath.Join(dir, "appdata"), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "accounts"), 0o755); err != nil {
		return nil, fmt.Errorf("create accounts dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) LoadAppData(_ context.Context, accountID string) (*domain.AppData, error) {
	path, err := s.docPath("appdata", accountID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read appdata: %w", err)
	}

	data := domain.NewAppData()
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("decode appdata: %w", err)
	}
	normalize(data)
	return data, nil
}

// SaveAppData overwrites the whole document atomically (tmp file + rename).
func (s *Store) SaveAppData(_ context.Context, accountID string, data *domain.AppData) error {
	path, err := s.docPath("appdata", accountID)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode appdata: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return writeAtomic(path, raw)
}

func (s *Store) CreateAccount(_ context.Context, account domain.Account) error {
	path, err := s.docPath("accounts", account.ID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(path); err == nil {
		return store.ErrAccountExists
	}
	raw, err := json.MarshalIndent(account, "", "  ")
	if err != nil {
		return fmt.Errorf("encode account: %w", err)
	}
	return writeAtomic(path, raw)
}

func (s *Store) GetAccount(_ context.Context, accountID string) (*domain.Account, error) {
	path, err := s.docPath("accounts", accountID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read account: %w", err)
	}

	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("decode account: %w", err)
	}
	return &account, nil
}

// docPath rejects account ids that could escape the data directory.
func (s *Store) docPath(kind, accountID string) (string, error) {
	if accountID == "" || !accountIDPattern.MatchString(accountID) {
		return "", store.ErrNotFound
	}
	return filepath.Join(s.dir, kind, accountID+".json"), nil
}

func writeAtomic(path string, raw []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write tmp: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// normalize replaces nil collections from hand-edited or legacy documents so
// the aggregate always round-trips with [] rather than null arrays.
func normalize(data *domain.AppData) {
	if data.Models == nil {
		data.Models = []domain.Model{}
	}
	if data.Stocks == nil {
		data.Stocks = []domain.Stock{}
	}
	if data.Invoices == nil {
		data.Invoices = []domain.Invoice{}
	}
	if data.Purchases == nil {
		data.Purchases = []domain.Purchase{}
	}
	if data.Suppliers == nil {
		data.Suppliers = []domain.Supplier{}
	}
}
