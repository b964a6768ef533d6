package ledger

import (
	"strings"

	"mobipos/backend/internal/domain"
)

func (l *Ledger) Stocks() []domain.Stock {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stocks := make([]domain.Stock, len(l.data.Stocks))
	for i, s := range l.data.Stocks {
		stocks[i] = s.Clone()
	}
	return stocks
}

func (l *Ledger) StockByIMEI(serial string) (domain.Stock, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if stock := l.findStock(serial); stock != nil {
		return stock.Clone(), nil
	}
	return domain.Stock{}, ErrNotFound
}

// UpdateStockPricing mutates only the two pricing fields of one unit. Past
// purchases and invoices keep their own figures.
func (l *Ledger) UpdateStockPricing(serial string, req domain.StockPricingRequest) (domain.Stock, error) {
	if !req.PurchasePrice.IsPositive() || !req.SellingPrice.IsPositive() {
		return domain.Stock{}, ErrValidation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	for i := range next.Stocks {
		if next.Stocks[i].IMEI != serial {
			continue
		}
		next.Stocks[i].PurchasePrice = req.PurchasePrice
		next.Stocks[i].SellingPrice = req.SellingPrice
		l.data = next
		return next.Stocks[i].Clone(), nil
	}
	return domain.Stock{}, ErrNotFound
}

// DeleteStock removes the unit unconditionally, even when SOLD. Invoices keep
// their own item snapshots, so historical documents survive the removal.
func (l *Ledger) DeleteStock(serial string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	for i := range next.Stocks {
		if next.Stocks[i].IMEI == serial {
			next.Stocks = append(next.Stocks[:i], next.Stocks[i+1:]...)
			l.data = next
			return nil
		}
	}
	return ErrNotFound
}

func (l *Ledger) findStock(serial string) *domain.Stock {
	serial = strings.TrimSpace(serial)
	for i := range l.data.Stocks {
		if l.data.Stocks[i].IMEI == serial {
			return &l.data.Stocks[i]
		}
	}
	return nil
}
