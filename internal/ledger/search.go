package ledger

import (
	"strings"

	"mobipos/backend/internal/domain"
)

// Search scans the stock ledger for serial substring matches and the invoice
// ledger for invoice-number/customer-name substring matches. Each matched
// unit gets its lifecycle synthesized at query time: a purchase row via the
// purchaseId back-reference and, if sold, a sale row found by scanning
// invoices for the serial. No index; single-shop volumes make a linear scan
// fine.
func (l *Ledger) Search(query string) domain.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	result := domain.SearchResult{
		Query:    query,
		Stocks:   []domain.StockSearchHit{},
		Invoices: []domain.InvoiceSearchHit{},
	}
	if q == "" {
		return result
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for i := range l.data.Stocks {
		stock := l.data.Stocks[i]
		if !strings.Contains(strings.ToLower(stock.IMEI), q) {
			continue
		}
		hit := domain.StockSearchHit{
			Stock:     stock.Clone(),
			Brand:     "N/A",
			ModelName: "N/A",
			Lifecycle: []domain.LifecycleRow{},
		}
		if model := l.findModelByID(stock.ModelID); model != nil {
			hit.Brand, hit.ModelName = model.Brand, model.ModelName
		}
		if row, ok := l.purchaseLifecycleRow(stock); ok {
			hit.Lifecycle = append(hit.Lifecycle, row)
		}
		if stock.Status == domain.StockStatusSold {
			if row, ok := l.saleLifecycleRow(stock.IMEI); ok {
				hit.Lifecycle = append(hit.Lifecycle, row)
			}
		}
		result.Stocks = append(result.Stocks, hit)
	}

	for _, inv := range l.data.Invoices {
		if strings.Contains(strings.ToLower(inv.InvoiceNumber), q) ||
			strings.Contains(strings.ToLower(inv.CustomerName), q) {
			result.Invoices = append(result.Invoices, domain.InvoiceSearchHit{Invoice: inv.Clone()})
		}
	}

	return result
}

func (l *Ledger) purchaseLifecycleRow(stock domain.Stock) (domain.LifecycleRow, bool) {
	for _, p := range l.data.Purchases {
		if p.ID != stock.PurchaseID {
			continue
		}
		return domain.LifecycleRow{
			Kind:      "purchase",
			Reference: p.PurchaseNumber,
			Date:      p.Date,
			Party:     p.SupplierName,
			Amount:    stock.PurchasePrice,
		}, true
	}
	// Purchase records may be deleted while their stock units remain; the
	// lifecycle simply has no purchase row then.
	return domain.LifecycleRow{}, false
}

func (l *Ledger) saleLifecycleRow(serial string) (domain.LifecycleRow, bool) {
	for _, inv := range l.data.Invoices {
		for _, item := range inv.Items {
			if item.IMEI != serial {
				continue
			}
			return domain.LifecycleRow{
				Kind:      "sale",
				Reference: inv.InvoiceNumber,
				Date:      inv.Date,
				Party:     inv.CustomerName,
				Amount:    item.Price,
			}, true
		}
	}
	return domain.LifecycleRow{}, false
}
