// Package service orchestrates the per-account ledgers against persistence:
// every successful command saves the whole aggregate to the local snapshot
// store synchronously and schedules a debounced best-effort mirror write.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/ledger"
	"mobipos/backend/internal/mirror"
	"mobipos/backend/internal/store"
)

type actorContextKey struct{}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}

type Service struct {
	mu        sync.Mutex
	snapshots store.SnapshotStore
	debouncer *mirror.Debouncer
	policy    ledger.Policy
	log       *logrus.Logger
	ledgers   map[string]*ledger.Ledger
}

func New(snapshots store.SnapshotStore, debouncer *mirror.Debouncer, policy ledger.Policy, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		snapshots: snapshots,
		debouncer: debouncer,
		policy:    policy,
		log:       log,
		ledgers:   make(map[string]*ledger.Ledger),
	}
}

// InitAccount seeds an empty aggregate for a freshly registered shop.
func (s *Service) InitAccount(ctx context.Context, accountID string, shopName string) error {
	data := domain.NewAppData()
	data.Shop.Name = shopName
	if err := s.snapshots.SaveAppData(ctx, accountID, data); err != nil {
		return fmt.Errorf("seed account data: %w", err)
	}

	s.mu.Lock()
	s.ledgers[accountID] = ledger.New(data, s.policy)
	s.mu.Unlock()
	return nil
}

// ledgerFor lazily loads the account's aggregate from the snapshot store.
// A missing document gets a fresh empty aggregate rather than an error, so
// accounts created outside this process still work.
func (s *Service) ledgerFor(ctx context.Context) (*ledger.Ledger, string, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.AccountID == "" {
		return nil, "", errors.New("no authenticated account on context")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.ledgers[actor.AccountID]; ok {
		return l, actor.AccountID, nil
	}

	data, err := s.snapshots.LoadAppData(ctx, actor.AccountID)
	if errors.Is(err, store.ErrNotFound) {
		data = domain.NewAppData()
	} else if err != nil {
		return nil, "", err
	}

	l := ledger.New(data, s.policy)
	s.ledgers[actor.AccountID] = l
	return l, actor.AccountID, nil
}

// persist writes the aggregate locally and queues the remote mirror. The
// local write is the durable one and its failure surfaces; the mirror is
// fire-and-forget inside the debouncer.
func (s *Service) persist(ctx context.Context, accountID string, l *ledger.Ledger) error {
	snap := l.Snapshot()
	if err := s.snapshots.SaveAppData(ctx, accountID, snap); err != nil {
		return fmt.Errorf("persist appdata: %w", err)
	}
	if s.debouncer != nil {
		s.debouncer.Schedule(accountID, snap)
	}
	return nil
}

func (s *Service) Shop(ctx context.Context) (domain.Shop, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Shop{}, err
	}
	return l.Shop(), nil
}

func (s *Service) UpdateShop(ctx context.Context, shop domain.Shop) (domain.Shop, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Shop{}, err
	}
	updated, err := l.UpdateShop(shop)
	if err != nil {
		return domain.Shop{}, err
	}
	if err := s.persist(ctx, accountID, l); err != nil {
		return domain.Shop{}, err
	}
	return updated, nil
}

func (s *Service) Models(ctx context.Context) ([]domain.Model, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return nil, err
	}
	return l.Models(), nil
}

func (s *Service) AddModel(ctx context.Context, req domain.ModelCreateRequest) (domain.Model, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Model{}, err
	}
	model, err := l.AddModel(req)
	if err != nil {
		return domain.Model{}, err
	}
	if err := s.persist(ctx, accountID, l); err != nil {
		return domain.Model{}, err
	}
	return model, nil
}

func (s *Service) UpdateModel(ctx context.Context, id string, req domain.ModelUpdateRequest) (domain.Model, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Model{}, err
	}
	model, err := l.UpdateModel(id, req)
	if err != nil {
		return domain.Model{}, err
	}
	if err := s.persist(ctx, accountID, l); err != nil {
		return domain.Model{}, err
	}
	return model, nil
}

func (s *Service) DeleteModel(ctx context.Context, id string) error {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return err
	}
	if err := l.DeleteModel(id); err != nil {
		return err
	}
	return s.persist(ctx, accountID, l)
}

func (s *Service) ImportModels(ctx context.Context, rows []domain.ModelCreateRequest) (domain.ImportReport, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.ImportReport{}, err
	}
	report := l.ImportModels(rows)
	if report.Added > 0 {
		if err := s.persist(ctx, accountID, l); err != nil {
			return domain.ImportReport{}, err
		}
	}
	return report, nil
}

func (s *Service) CheckSerials(ctx context.Context, req domain.SerialCheckRequest) (domain.SerialPartition, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.SerialPartition{}, err
	}
	return l.CheckSerials(req), nil
}

func (s *Service) CommitPurchase(ctx context.Context, req domain.PurchaseCommitRequest) (domain.Purchase, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Purchase{}, err
	}
	purchase, err := l.CommitPurchase(req)
	if err != nil {
		return domain.Purchase{}, err
	}
	if err := s.persist(ctx, accountID, l); err != nil {
		return domain.Purchase{}, err
	}
	return purchase, nil
}

func (s *Service) UpdatePurchase(ctx context.Context, id string, req domain.PurchaseUpdateRequest) (domain.Purchase, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Purchase{}, err
	}
	purchase, err := l.UpdatePurchase(id, req)
	if err != nil {
		return domain.Purchase{}, err
	}
	if err := s.persist(ctx, accountID, l); err != nil {
		return domain.Purchase{}, err
	}
	return purchase, nil
}

func (s *Service) DeletePurchase(ctx context.Context, id string) error {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return err
	}
	if err := l.DeletePurchase(id); err != nil {
		return err
	}
	return s.persist(ctx, accountID, l)
}

func (s *Service) Purchases(ctx context.Context) ([]domain.Purchase, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return nil, err
	}
	return l.Purchases(), nil
}

func (s *Service) PurchaseByID(ctx context.Context, id string) (domain.Purchase, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Purchase{}, err
	}
	return l.PurchaseByID(id)
}

func (s *Service) ImportPurchases(ctx context.Context, rows []domain.PurchaseImportRow) (domain.ImportReport, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.ImportReport{}, err
	}
	report := l.ImportPurchaseRows(rows)
	if report.Added > 0 {
		if err := s.persist(ctx, accountID, l); err != nil {
			return domain.ImportReport{}, err
		}
	}
	return report, nil
}

func (s *Service) Suppliers(ctx context.Context) ([]domain.Supplier, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return nil, err
	}
	return l.Suppliers(), nil
}

func (s *Service) LookupCartItem(ctx context.Context, req domain.CartItemRequest) (domain.InvoiceItem, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.InvoiceItem{}, err
	}
	return l.LookupCartItem(req)
}

func (s *Service) CommitInvoice(ctx context.Context, req domain.InvoiceCommitRequest) (domain.Invoice, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}
	invoice, err := l.CommitInvoice(req)
	if err != nil {
		return domain.Invoice{}, err
	}
	if err := s.persist(ctx, accountID, l); err != nil {
		return domain.Invoice{}, err
	}
	return invoice, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id string) error {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return err
	}
	if err := l.DeleteInvoice(id); err != nil {
		return err
	}
	return s.persist(ctx, accountID, l)
}

func (s *Service) Invoices(ctx context.Context) ([]domain.Invoice, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return nil, err
	}
	return l.Invoices(), nil
}

func (s *Service) InvoiceByID(ctx context.Context, id string) (domain.Invoice, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Invoice{}, err
	}
	return l.InvoiceByID(id)
}

func (s *Service) Stocks(ctx context.Context) ([]domain.Stock, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return nil, err
	}
	return l.Stocks(), nil
}

func (s *Service) StockByIMEI(ctx context.Context, serial string) (domain.Stock, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Stock{}, err
	}
	return l.StockByIMEI(serial)
}

func (s *Service) UpdateStockPricing(ctx context.Context, serial string, req domain.StockPricingRequest) (domain.Stock, error) {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.Stock{}, err
	}
	stock, err := l.UpdateStockPricing(serial, req)
	if err != nil {
		return domain.Stock{}, err
	}
	if err := s.persist(ctx, accountID, l); err != nil {
		return domain.Stock{}, err
	}
	return stock, nil
}

func (s *Service) DeleteStock(ctx context.Context, serial string) error {
	l, accountID, err := s.ledgerFor(ctx)
	if err != nil {
		return err
	}
	if err := l.DeleteStock(serial); err != nil {
		return err
	}
	return s.persist(ctx, accountID, l)
}

func (s *Service) Search(ctx context.Context, query string) (domain.SearchResult, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.SearchResult{}, err
	}
	return l.Search(query), nil
}

func (s *Service) StockSummary(ctx context.Context) (domain.StockSummary, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.StockSummary{}, err
	}
	return l.StockSummary(), nil
}

func (s *Service) SalesSummary(ctx context.Context, from, to string) (domain.SalesSummary, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.SalesSummary{}, err
	}
	return l.SalesSummary(from, to), nil
}

func (s *Service) PurchaseSummary(ctx context.Context, from, to string) (domain.PurchaseSummary, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return domain.PurchaseSummary{}, err
	}
	return l.PurchaseSummary(from, to), nil
}

func (s *Service) RestockSuggestions(ctx context.Context) ([]domain.RestockSuggestion, error) {
	l, _, err := s.ledgerFor(ctx)
	if err != nil {
		return nil, err
	}
	return l.RestockSuggestions(), nil
}
