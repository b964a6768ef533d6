// Package postgres is the jsonb-backed snapshot store, selected when
// DATABASE_URL is set. Each shop account maps to one document row; saves
// upsert the whole document, matching the replace-on-write discipline of the
// aggregate.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/store"
)

type Store struct {
	db *sql.DB
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, err
	}

	db.SetMaxIdleConns(4)
	db.SetMaxOpenConns(16)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 6*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS app_documents (
			account_id TEXT PRIMARY KEY,
			document   JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS accounts (
			id            TEXT PRIMARY KEY,
			password_hash TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	return err
}

func (s *Store) LoadAppData(ctx context.Context, accountID string) (*domain.AppData, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM app_documents WHERE account_id = $1
	`, accountID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	data := domain.NewAppData()
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (s *Store) SaveAppData(ctx context.Context, accountID string, data *domain.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_documents (account_id, document, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (account_id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`, accountID, raw)
	return err
}

func (s *Store) CreateAccount(ctx context.Context, account domain.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, password_hash, created_at)
		VALUES ($1, $2, $3)
	`, account.ID, account.PasswordHash, account.CreatedAt)
	if isUniqueViolation(err) {
		return store.ErrAccountExists
	}
	return err
}

func (s *Store) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	var account domain.Account
	err := s.db.QueryRowContext(ctx, `
		SELECT id, password_hash, created_at FROM accounts WHERE id = $1
	`, accountID).Scan(&account.ID, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
