package ledger

import (
	"testing"

	"mobipos/backend/internal/domain"
)

func TestStockSummaryValuesAvailableUnits(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"R-1", "R-2", "R-3"})
	sellSerials(t, l, []string{"R-1"}, 65000)

	summary := l.StockSummary()
	if summary.TotalUnits != 3 || summary.AvailableUnits != 2 || summary.SoldUnits != 1 {
		t.Fatalf("counts = %+v", summary)
	}
	if !summary.StockValue.Equal(dec(100000)) {
		t.Errorf("stock value = %s, want 100000", summary.StockValue)
	}
	if !summary.PotentialValue.Equal(dec(130000)) {
		t.Errorf("potential value = %s, want 130000", summary.PotentialValue)
	}
}

func TestSalesSummaryRespectsDateRange(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"D-1", "D-2"})
	sellSerials(t, l, []string{"D-1", "D-2"}, 100000) // dated 2024-03-10

	inRange := l.SalesSummary("2024-03-01", "2024-03-31")
	if inRange.InvoiceCount != 1 || inRange.UnitsSold != 2 {
		t.Fatalf("in-range summary = %+v", inRange)
	}
	if !inRange.GrossSales.Equal(dec(130000)) || !inRange.Outstanding.Equal(dec(30000)) {
		t.Errorf("totals = gross %s outstanding %s", inRange.GrossSales, inRange.Outstanding)
	}

	outOfRange := l.SalesSummary("2024-04-01", "")
	if outOfRange.InvoiceCount != 0 {
		t.Errorf("out-of-range summary counted %d invoices", outOfRange.InvoiceCount)
	}

	openEnded := l.SalesSummary("", "")
	if openEnded.InvoiceCount != 1 {
		t.Errorf("open-ended summary = %+v", openEnded)
	}
}

func TestPurchaseSummary(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"P-1", "P-2"}) // dated 2024-03-01

	summary := l.PurchaseSummary("2024-03-01", "2024-03-01")
	if summary.PurchaseCount != 1 || summary.UnitsReceived != 2 {
		t.Fatalf("summary = %+v", summary)
	}
	if !summary.TotalCost.Equal(dec(100000)) {
		t.Errorf("total cost = %s, want 100000", summary.TotalCost)
	}
}

func TestRestockSuggestions(t *testing.T) {
	l := newTestLedger(t, Policy{})
	soldOut := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	inStock := seedModel(t, l, "Xiaomi", "Redmi Note 13", 30000, 36000)
	neverSold := seedModel(t, l, "Nokia", "G42", 20000, 25000)

	seedPurchase(t, l, soldOut, []string{"SO-1"})
	seedPurchase(t, l, inStock, []string{"IS-1", "IS-2"})
	seedPurchase(t, l, neverSold, []string{"NS-1"})
	sellSerials(t, l, []string{"SO-1", "IS-1"}, 101000)

	suggestions := l.RestockSuggestions()
	if len(suggestions) != 1 {
		t.Fatalf("suggestions = %+v, want exactly the sold-out model", suggestions)
	}
	if suggestions[0].ModelID != soldOut.ID || suggestions[0].SoldUnits != 1 {
		t.Errorf("suggestion = %+v", suggestions[0])
	}
}

func TestSearchFindsStockWithLifecycle(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"35512345"})
	sellSerials(t, l, []string{"35512345"}, 65000)

	result := l.Search("12345")
	if len(result.Stocks) != 1 {
		t.Fatalf("stock hits = %d, want 1", len(result.Stocks))
	}
	hit := result.Stocks[0]
	if hit.Brand != "Samsung" {
		t.Errorf("hit brand = %s", hit.Brand)
	}
	if len(hit.Lifecycle) != 2 {
		t.Fatalf("lifecycle rows = %d, want purchase and sale", len(hit.Lifecycle))
	}
	if hit.Lifecycle[0].Kind != "purchase" || hit.Lifecycle[1].Kind != "sale" {
		t.Errorf("lifecycle order = %s, %s", hit.Lifecycle[0].Kind, hit.Lifecycle[1].Kind)
	}
}

func TestSearchToleratesDeletedPurchase(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	purchase := seedPurchase(t, l, model, []string{"GONE-1"})
	if err := l.DeletePurchase(purchase.ID); err != nil {
		t.Fatalf("delete purchase: %v", err)
	}

	result := l.Search("GONE-1")
	if len(result.Stocks) != 1 {
		t.Fatalf("stock hits = %d, want 1", len(result.Stocks))
	}
	if len(result.Stocks[0].Lifecycle) != 0 {
		t.Errorf("lifecycle = %+v, want empty after purchase deletion", result.Stocks[0].Lifecycle)
	}
}

func TestSearchMatchesInvoices(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"INV-1"})
	sellSerials(t, l, []string{"INV-1"}, 65000) // customer Rahim

	result := l.Search("rahim")
	if len(result.Invoices) != 1 {
		t.Fatalf("invoice hits = %d, want 1", len(result.Invoices))
	}
}

func TestImportModels(t *testing.T) {
	l := newTestLedger(t, Policy{})
	seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)

	report := l.ImportModels([]domain.ModelCreateRequest{
		{Brand: "Samsung", ModelName: "Galaxy A54", PurchasePrice: dec(1), SellingPrice: dec(2)}, // duplicate
		{Brand: "Xiaomi", ModelName: "Redmi Note 13", PurchasePrice: dec(30000), SellingPrice: dec(36000)},
		{Brand: "", ModelName: "No Brand", PurchasePrice: dec(1), SellingPrice: dec(2)}, // malformed
	})

	if report.Added != 1 || report.Skipped != 2 {
		t.Fatalf("report = %+v, want added 1 skipped 2", report)
	}
	if len(l.Models()) != 2 {
		t.Fatalf("catalog = %d models, want 2", len(l.Models()))
	}
}

func TestImportPurchaseRows(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"EXISTS-1"})

	report := l.ImportPurchaseRows([]domain.PurchaseImportRow{
		{
			SupplierName: "City Traders",
			Brand:        "Xiaomi",
			ModelName:    "Redmi Note 13",
			CostPrice:    dec(30000),
			SellingPrice: dec(36000),
			IMEIs:        "NEW-1, EXISTS-1, NEW-2",
		},
		{
			SupplierName: "City Traders",
			Brand:        "Samsung",
			ModelName:    "Galaxy A54",
			CostPrice:    dec(50000),
			SellingPrice: dec(65000),
			IMEIs:        "EXISTS-1", // nothing net-new
		},
		{
			SupplierName: "",
			Brand:        "Nokia",
			ModelName:    "G42",
			CostPrice:    dec(20000),
			SellingPrice: dec(25000),
			IMEIs:        "N-1",
		},
	})

	if report.Added != 1 || report.Skipped != 2 {
		t.Fatalf("report = %+v, want added 1 skipped 2", report)
	}
	if len(report.Serials) != 2 {
		t.Fatalf("reported in-system serials = %v", report.Serials)
	}

	// A catalog model was created on demand for the unknown brand/model.
	if len(l.Models()) != 2 {
		t.Fatalf("catalog = %d models, want 2", len(l.Models()))
	}
	if _, err := l.StockByIMEI("NEW-1"); err != nil {
		t.Errorf("imported serial missing: %v", err)
	}
	if _, err := l.StockByIMEI("NEW-2"); err != nil {
		t.Errorf("imported serial missing: %v", err)
	}
}
