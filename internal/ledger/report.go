package ledger

import (
	"github.com/shopspring/decimal"

	"mobipos/backend/internal/domain"
)

// StockSummary values available units at purchase price and projects the
// potential sale value of the same units.
func (l *Ledger) StockSummary() domain.StockSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	summary := domain.StockSummary{
		StockValue:     decimal.Zero,
		PotentialValue: decimal.Zero,
	}
	for i := range l.data.Stocks {
		stock := l.data.Stocks[i]
		summary.TotalUnits++
		if stock.Status == domain.StockStatusSold {
			summary.SoldUnits++
			continue
		}
		summary.AvailableUnits++
		summary.StockValue = summary.StockValue.Add(stock.PurchasePrice)
		summary.PotentialValue = summary.PotentialValue.Add(stock.SellingPrice)
	}
	return summary
}

// SalesSummary aggregates invoices whose date falls inside [from, to].
// Dates are ISO strings, so plain string comparison orders them; empty
// bounds are open-ended.
func (l *Ledger) SalesSummary(from, to string) domain.SalesSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	summary := domain.SalesSummary{
		From:        from,
		To:          to,
		GrossSales:  decimal.Zero,
		Discount:    decimal.Zero,
		NetSales:    decimal.Zero,
		Collected:   decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, inv := range l.data.Invoices {
		if !inDateRange(inv.Date, from, to) {
			continue
		}
		summary.InvoiceCount++
		summary.UnitsSold += len(inv.Items)
		summary.GrossSales = summary.GrossSales.Add(inv.Subtotal)
		summary.Discount = summary.Discount.Add(inv.Discount)
		summary.NetSales = summary.NetSales.Add(inv.Total)
		summary.Collected = summary.Collected.Add(inv.PaidAmount)
		summary.Outstanding = summary.Outstanding.Add(inv.DueAmount)
	}
	return summary
}

func (l *Ledger) PurchaseSummary(from, to string) domain.PurchaseSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	summary := domain.PurchaseSummary{
		From:        from,
		To:          to,
		TotalCost:   decimal.Zero,
		Paid:        decimal.Zero,
		Outstanding: decimal.Zero,
	}
	for _, p := range l.data.Purchases {
		if !inDateRange(p.Date, from, to) {
			continue
		}
		summary.PurchaseCount++
		for _, item := range p.Items {
			summary.UnitsReceived += len(item.IMEIs)
		}
		summary.TotalCost = summary.TotalCost.Add(p.Total)
		summary.Paid = summary.Paid.Add(p.PaidAmount)
		summary.Outstanding = summary.Outstanding.Add(p.DueAmount)
	}
	return summary
}

// RestockSuggestions lists catalog models that have sold at least one unit
// and currently have none available.
func (l *Ledger) RestockSuggestions() []domain.RestockSuggestion {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sold := make(map[string]int)
	available := make(map[string]int)
	for i := range l.data.Stocks {
		stock := l.data.Stocks[i]
		if stock.Status == domain.StockStatusSold {
			sold[stock.ModelID]++
		} else {
			available[stock.ModelID]++
		}
	}

	suggestions := []domain.RestockSuggestion{}
	for _, model := range l.data.Models {
		if sold[model.ID] == 0 || available[model.ID] > 0 {
			continue
		}
		suggestions = append(suggestions, domain.RestockSuggestion{
			ModelID:      model.ID,
			Brand:        model.Brand,
			ModelName:    model.ModelName,
			SoldUnits:    sold[model.ID],
			InStockUnits: available[model.ID],
		})
	}
	return suggestions
}

func inDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
