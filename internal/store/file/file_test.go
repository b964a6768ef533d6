package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/store"
)

func TestAppDataRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	data := domain.NewAppData()
	data.Shop.Name = "Mobile Tower"
	data.Models = append(data.Models, domain.Model{ID: "m-1", Brand: "Samsung", ModelName: "Galaxy A54"})

	if err := s.SaveAppData(ctx, "shop-1", data); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := s.LoadAppData(ctx, "shop-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Shop.Name != "Mobile Tower" || len(loaded.Models) != 1 {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestLoadMissingAccount(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	_, err = s.LoadAppData(context.Background(), "nobody")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestLoadNormalizesNilCollections(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// A hand-edited legacy document with null arrays.
	raw := []byte(`{"shop":{"name":"Legacy"},"models":null,"stocks":null}`)
	path := filepath.Join(dir, "appdata", "legacy.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loaded, err := s.LoadAppData(context.Background(), "legacy")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Models == nil || loaded.Stocks == nil || loaded.Suppliers == nil {
		t.Fatalf("collections not normalized: %+v", loaded)
	}
}

func TestDocPathRejectsTraversal(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := s.LoadAppData(context.Background(), "../escape"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("traversal id: got %v, want ErrNotFound", err)
	}
}

func TestAccountLifecycle(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	account := domain.Account{ID: "shop-1", PasswordHash: "hash", CreatedAt: time.Now().UTC()}
	if err := s.CreateAccount(ctx, account); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.CreateAccount(ctx, account); !errors.Is(err, store.ErrAccountExists) {
		t.Fatalf("duplicate create: got %v, want ErrAccountExists", err)
	}

	loaded, err := s.GetAccount(ctx, "shop-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.PasswordHash != "hash" {
		t.Fatalf("loaded = %+v", loaded)
	}
}
