// Package ledger is the in-memory consistency engine for one shop account.
// It keeps the catalog, supplier directory, purchase ledger, stock ledger and
// invoice ledger mutually consistent: purchases create serialized stock units,
// invoices transition them AVAILABLE to SOLD, and every command replaces the
// whole aggregate or changes nothing.
package ledger

import (
	"strings"
	"sync"

	"mobipos/backend/internal/domain"
)

// Policy holds the configurable edges of the consistency model.
type Policy struct {
	// RevertSoldOnRemove flips a stock unit back to AVAILABLE when an invoice
	// edit or deletion drops its serial. The historical behavior keeps the
	// unit SOLD, so this defaults to off.
	RevertSoldOnRemove bool
}

// Ledger guards one AppData aggregate. Commands clone the aggregate, mutate
// the clone and swap it in on success, so readers never observe partial
// writes and failed commands leave no trace.
type Ledger struct {
	mu     sync.RWMutex
	data   *domain.AppData
	policy Policy
}

func New(data *domain.AppData, policy Policy) *Ledger {
	if data == nil {
		data = domain.NewAppData()
	}
	return &Ledger{data: data, policy: policy}
}

// Snapshot returns a deep copy of the aggregate for persistence or mirroring.
func (l *Ledger) Snapshot() *domain.AppData {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.Clone()
}

func (l *Ledger) Shop() domain.Shop {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.data.Shop
}

func (l *Ledger) UpdateShop(shop domain.Shop) (domain.Shop, error) {
	if strings.TrimSpace(shop.Name) == "" {
		return domain.Shop{}, ErrValidation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	next.Shop = shop
	l.data = next
	return shop, nil
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
