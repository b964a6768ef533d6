package ledger

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"mobipos/backend/internal/domain"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func newTestLedger(t *testing.T, policy Policy) *Ledger {
	t.Helper()
	data := domain.NewAppData()
	data.Shop.Name = "Mobile Tower"
	return New(data, policy)
}

func seedModel(t *testing.T, l *Ledger, brand, name string, cost, sale int64) domain.Model {
	t.Helper()
	model, err := l.AddModel(domain.ModelCreateRequest{
		Brand:         brand,
		ModelName:     name,
		PurchasePrice: dec(cost),
		SellingPrice:  dec(sale),
	})
	if err != nil {
		t.Fatalf("seed model: %v", err)
	}
	return model
}

func seedPurchase(t *testing.T, l *Ledger, model domain.Model, serials []string) domain.Purchase {
	t.Helper()
	purchase, err := l.CommitPurchase(domain.PurchaseCommitRequest{
		Date:         "2024-03-01",
		SupplierName: "City Traders",
		Items: []domain.PurchaseItem{{
			ModelID:      model.ID,
			Brand:        model.Brand,
			ModelName:    model.ModelName,
			IMEIs:        serials,
			CostPrice:    model.PurchasePrice,
			SellingPrice: model.SellingPrice,
		}},
	})
	if err != nil {
		t.Fatalf("seed purchase: %v", err)
	}
	return purchase
}

func TestAddModelRejectsDuplicateName(t *testing.T) {
	l := newTestLedger(t, Policy{})
	seedModel(t, l, "Samsung", "Galaxy A54", 40000, 46000)

	_, err := l.AddModel(domain.ModelCreateRequest{
		Brand:         "samsung",
		ModelName:     "GALAXY A54",
		PurchasePrice: dec(41000),
		SellingPrice:  dec(47000),
	})
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	if len(l.Models()) != 1 {
		t.Fatalf("catalog mutated on duplicate: %d models", len(l.Models()))
	}
}

func TestDeleteModelLeavesStockOrphaned(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 40000, 46000)
	seedPurchase(t, l, model, []string{"IMEI-1"})

	if err := l.DeleteModel(model.ID); err != nil {
		t.Fatalf("delete model: %v", err)
	}

	stock, err := l.StockByIMEI("IMEI-1")
	if err != nil {
		t.Fatalf("stock should survive model deletion: %v", err)
	}
	if stock.ModelID != model.ID {
		t.Fatalf("stock modelId = %q, want orphan reference %q", stock.ModelID, model.ID)
	}
}

func TestCommitPurchaseCreatesAvailableStock(t *testing.T) {
	l := newTestLedger(t, Policy{})
	a54 := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	redmi := seedModel(t, l, "Xiaomi", "Redmi Note 13", 68000, 75000)

	purchase, err := l.CommitPurchase(domain.PurchaseCommitRequest{
		Date:         "2024-03-05",
		SupplierName: "City Traders",
		Items: []domain.PurchaseItem{
			{ModelID: a54.ID, Brand: a54.Brand, ModelName: a54.ModelName, IMEIs: []string{"A-1", "A-2"}, CostPrice: dec(50000), SellingPrice: dec(56000)},
			{ModelID: redmi.ID, Brand: redmi.Brand, ModelName: redmi.ModelName, IMEIs: []string{"R-1", "R-2"}, CostPrice: dec(68000), SellingPrice: dec(75000)},
		},
		PaidAmount: dec(200000),
	})
	if err != nil {
		t.Fatalf("commit purchase: %v", err)
	}

	if !purchase.Subtotal.Equal(dec(236000)) {
		t.Errorf("subtotal = %s, want 236000", purchase.Subtotal)
	}
	if !purchase.Total.Equal(dec(236000)) {
		t.Errorf("total = %s, want 236000", purchase.Total)
	}
	if !purchase.DueAmount.Equal(dec(36000)) {
		t.Errorf("due = %s, want 36000", purchase.DueAmount)
	}
	if purchase.PurchaseNumber == "" {
		t.Error("purchase number not assigned")
	}

	stocks := l.Stocks()
	if len(stocks) != 4 {
		t.Fatalf("stock units = %d, want 4", len(stocks))
	}
	for _, s := range stocks {
		if s.Status != domain.StockStatusAvailable {
			t.Errorf("stock %s status = %s, want AVAILABLE", s.IMEI, s.Status)
		}
		if s.DateAdded != "2024-03-05" {
			t.Errorf("stock %s dateAdded = %s, want purchase date", s.IMEI, s.DateAdded)
		}
		if s.PurchaseID != purchase.ID {
			t.Errorf("stock %s not linked to purchase", s.IMEI)
		}
		if s.InvoiceID != nil {
			t.Errorf("stock %s invoiceId should be nil", s.IMEI)
		}
	}
}

func TestCommitPurchaseReportsAllDuplicateSerials(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	seedPurchase(t, l, model, []string{"A-1", "A-2"})

	_, err := l.CommitPurchase(domain.PurchaseCommitRequest{
		SupplierName: "City Traders",
		Items: []domain.PurchaseItem{{
			ModelID:      model.ID,
			IMEIs:        []string{"A-1", "A-3", "A-2", "A-3"},
			CostPrice:    dec(50000),
			SellingPrice: dec(56000),
		}},
	})
	var dup *DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
	want := []string{"A-1", "A-2", "A-3"}
	if len(dup.IDs) != len(want) {
		t.Fatalf("duplicates = %v, want %v", dup.IDs, want)
	}
	got := map[string]bool{}
	for _, id := range dup.IDs {
		got[id] = true
	}
	for _, id := range want {
		if !got[id] {
			t.Errorf("missing duplicate %s in %v", id, dup.IDs)
		}
	}

	if len(l.Stocks()) != 2 {
		t.Fatalf("stock mutated on rejected purchase: %d units", len(l.Stocks()))
	}
	if len(l.Purchases()) != 1 {
		t.Fatalf("purchase ledger mutated on rejected purchase")
	}
}

func TestCheckSerialsPartitionsThreeWays(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	seedPurchase(t, l, model, []string{"IN-SYSTEM"})

	part := l.CheckSerials(domain.SerialCheckRequest{
		RawSerials: "IN-SYSTEM, IN-DRAFT\nNET-NEW, NET-NEW",
		Staged:     []string{"IN-DRAFT"},
	})

	if len(part.InSystem) != 1 || part.InSystem[0] != "IN-SYSTEM" {
		t.Errorf("inSystem = %v", part.InSystem)
	}
	if len(part.InDraft) != 1 || part.InDraft[0] != "IN-DRAFT" {
		t.Errorf("inDraft = %v", part.InDraft)
	}
	if len(part.NetNew) != 1 || part.NetNew[0] != "NET-NEW" {
		t.Errorf("netNew = %v", part.NetNew)
	}
}

func TestCommitPurchaseDedupesSupplierByName(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	seedPurchase(t, l, model, []string{"S-1"})

	_, err := l.CommitPurchase(domain.PurchaseCommitRequest{
		SupplierName: "  city traders ",
		Items: []domain.PurchaseItem{{
			ModelID:      model.ID,
			IMEIs:        []string{"S-2"},
			CostPrice:    dec(50000),
			SellingPrice: dec(56000),
		}},
	})
	if err != nil {
		t.Fatalf("second purchase: %v", err)
	}

	if suppliers := l.Suppliers(); len(suppliers) != 1 {
		t.Fatalf("suppliers = %d, want 1", len(suppliers))
	}
}

func TestUpdatePurchaseChangesOnlyOverridableFields(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	purchase := seedPurchase(t, l, model, []string{"U-1"})

	name := "New Supplier"
	due := dec(777)
	updated, err := l.UpdatePurchase(purchase.ID, domain.PurchaseUpdateRequest{
		SupplierName: &name,
		DueAmount:    &due,
	})
	if err != nil {
		t.Fatalf("update purchase: %v", err)
	}
	if updated.SupplierName != "New Supplier" || !updated.DueAmount.Equal(dec(777)) {
		t.Errorf("override fields not applied: %+v", updated)
	}
	if !updated.Total.Equal(purchase.Total) {
		t.Errorf("total recomputed on override: %s", updated.Total)
	}
}

func TestDeletePurchaseRetainsStock(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	purchase := seedPurchase(t, l, model, []string{"D-1", "D-2"})

	if err := l.DeletePurchase(purchase.ID); err != nil {
		t.Fatalf("delete purchase: %v", err)
	}
	if len(l.Purchases()) != 0 {
		t.Fatal("purchase record not removed")
	}
	if len(l.Stocks()) != 2 {
		t.Fatalf("stock units removed with purchase: %d left", len(l.Stocks()))
	}
}

func TestLookupCartItem(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	seedPurchase(t, l, model, []string{"C-1", "C-2"})

	item, err := l.LookupCartItem(domain.CartItemRequest{Serial: "C-1"})
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if item.Brand != "Samsung" || item.ModelName != "Galaxy A54" {
		t.Errorf("item identity = %s %s", item.Brand, item.ModelName)
	}
	if !item.Price.Equal(dec(56000)) {
		t.Errorf("price = %s, want stock selling price", item.Price)
	}

	if _, err := l.LookupCartItem(domain.CartItemRequest{Serial: "C-1", Draft: []string{"C-1"}}); !errors.Is(err, ErrAlreadyInCart) {
		t.Errorf("staged serial: got %v, want ErrAlreadyInCart", err)
	}
	if _, err := l.LookupCartItem(domain.CartItemRequest{Serial: "MISSING"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown serial: got %v, want ErrNotFound", err)
	}
}

func TestLookupCartItemFallsBackForOrphanStock(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 56000)
	seedPurchase(t, l, model, []string{"O-1"})
	if err := l.DeleteModel(model.ID); err != nil {
		t.Fatalf("delete model: %v", err)
	}

	item, err := l.LookupCartItem(domain.CartItemRequest{Serial: "O-1"})
	if err != nil {
		t.Fatalf("lookup orphan: %v", err)
	}
	if item.Brand != "N/A" || item.ModelName != "N/A" {
		t.Errorf("orphan identity = %s %s, want N/A placeholders", item.Brand, item.ModelName)
	}
}

func sellSerials(t *testing.T, l *Ledger, serials []string, paid int64) domain.Invoice {
	t.Helper()
	items := make([]domain.InvoiceItem, 0, len(serials))
	for _, s := range serials {
		item, err := l.LookupCartItem(domain.CartItemRequest{Serial: s})
		if err != nil {
			t.Fatalf("stage %s: %v", s, err)
		}
		items = append(items, item)
	}
	invoice, err := l.CommitInvoice(domain.InvoiceCommitRequest{
		Date:          "2024-03-10",
		CustomerName:  "Rahim",
		CustomerPhone: "01700000000",
		Items:         items,
		PaidAmount:    dec(paid),
		Payment:       domain.PaymentRequest{Method: "CASH"},
	})
	if err != nil {
		t.Fatalf("commit invoice: %v", err)
	}
	return invoice
}

func TestCommitInvoiceSellsStock(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"I-1", "I-2"})

	invoice := sellSerials(t, l, []string{"I-1", "I-2"}, 100000)

	if !invoice.Subtotal.Equal(dec(130000)) {
		t.Errorf("subtotal = %s, want 130000", invoice.Subtotal)
	}
	if !invoice.Total.Equal(dec(130000)) {
		t.Errorf("total = %s, want 130000", invoice.Total)
	}
	if !invoice.DueAmount.Equal(dec(30000)) {
		t.Errorf("due = %s, want 30000", invoice.DueAmount)
	}
	if invoice.InvoiceNumber == "" {
		t.Error("invoice number not assigned")
	}

	for _, serial := range []string{"I-1", "I-2"} {
		stock, err := l.StockByIMEI(serial)
		if err != nil {
			t.Fatalf("stock %s: %v", serial, err)
		}
		if stock.Status != domain.StockStatusSold {
			t.Errorf("stock %s status = %s, want SOLD", serial, stock.Status)
		}
		if stock.InvoiceID == nil || *stock.InvoiceID != invoice.ID {
			t.Errorf("stock %s not linked to invoice", serial)
		}
	}
}

func TestCommitInvoiceRejectsSoldSerial(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"S-1"})
	sellSerials(t, l, []string{"S-1"}, 65000)

	_, err := l.CommitInvoice(domain.InvoiceCommitRequest{
		CustomerName:  "Karim",
		CustomerPhone: "01800000000",
		Items:         []domain.InvoiceItem{{IMEI: "S-1", Price: dec(65000)}},
	})
	if !errors.Is(err, ErrAlreadySold) {
		t.Fatalf("got %v, want ErrAlreadySold", err)
	}
	if len(l.Invoices()) != 1 {
		t.Fatal("invoice ledger mutated on rejected sale")
	}
}

func TestEditInvoiceKeepsRemovedSerialSold(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"E-1", "E-2"})
	invoice := sellSerials(t, l, []string{"E-1", "E-2"}, 130000)

	// Drop E-2 from the invoice.
	_, err := l.CommitInvoice(domain.InvoiceCommitRequest{
		ID:            invoice.ID,
		CustomerName:  invoice.CustomerName,
		CustomerPhone: invoice.CustomerPhone,
		Items:         []domain.InvoiceItem{invoice.Items[0]},
		PaidAmount:    dec(65000),
	})
	if err != nil {
		t.Fatalf("edit invoice: %v", err)
	}

	edited, err := l.InvoiceByID(invoice.ID)
	if err != nil {
		t.Fatalf("reload invoice: %v", err)
	}
	if edited.InvoiceNumber != invoice.InvoiceNumber {
		t.Errorf("invoice number changed on edit: %s", edited.InvoiceNumber)
	}
	if len(edited.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(edited.Items))
	}

	dropped, err := l.StockByIMEI("E-2")
	if err != nil {
		t.Fatalf("dropped stock: %v", err)
	}
	if dropped.Status != domain.StockStatusSold {
		t.Errorf("dropped serial reverted to %s with policy off", dropped.Status)
	}
}

func TestEditInvoiceRevertsRemovedSerialWithPolicyOn(t *testing.T) {
	l := newTestLedger(t, Policy{RevertSoldOnRemove: true})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"P-1", "P-2"})
	invoice := sellSerials(t, l, []string{"P-1", "P-2"}, 130000)

	_, err := l.CommitInvoice(domain.InvoiceCommitRequest{
		ID:            invoice.ID,
		CustomerName:  invoice.CustomerName,
		CustomerPhone: invoice.CustomerPhone,
		Items:         []domain.InvoiceItem{invoice.Items[0]},
		PaidAmount:    dec(65000),
	})
	if err != nil {
		t.Fatalf("edit invoice: %v", err)
	}

	dropped, err := l.StockByIMEI("P-2")
	if err != nil {
		t.Fatalf("dropped stock: %v", err)
	}
	if dropped.Status != domain.StockStatusAvailable {
		t.Errorf("dropped serial = %s, want AVAILABLE with policy on", dropped.Status)
	}
	if dropped.InvoiceID != nil {
		t.Error("dropped serial still linked to invoice")
	}
}

func TestEditInvoiceAcceptsOwnSoldSerials(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"W-1"})
	invoice := sellSerials(t, l, []string{"W-1"}, 65000)

	item, err := l.LookupCartItem(domain.CartItemRequest{
		Serial:           "W-1",
		EditingInvoiceID: invoice.ID,
	})
	if err != nil {
		t.Fatalf("re-stage own serial: %v", err)
	}

	_, err = l.CommitInvoice(domain.InvoiceCommitRequest{
		ID:            invoice.ID,
		CustomerName:  "Rahim",
		CustomerPhone: "01700000000",
		Items:         []domain.InvoiceItem{item},
		PaidAmount:    invoice.PaidAmount,
	})
	if err != nil {
		t.Fatalf("re-commit with own serial: %v", err)
	}

	// Saving without modification changes nothing.
	resaved, err := l.InvoiceByID(invoice.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !resaved.Subtotal.Equal(invoice.Subtotal) || !resaved.Total.Equal(invoice.Total) || !resaved.DueAmount.Equal(invoice.DueAmount) {
		t.Errorf("unchanged edit drifted totals: %+v", resaved)
	}
	stock, err := l.StockByIMEI("W-1")
	if err != nil {
		t.Fatalf("stock: %v", err)
	}
	if stock.Status != domain.StockStatusSold || stock.InvoiceID == nil || *stock.InvoiceID != invoice.ID {
		t.Errorf("unchanged edit disturbed stock: %+v", stock)
	}
}

func TestCommitInvoiceAppliesDiscount(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Apple", "iPhone 15", 118000, 134000)
	seedPurchase(t, l, model, []string{"A1"})

	item, err := l.LookupCartItem(domain.CartItemRequest{Serial: "A1"})
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	invoice, err := l.CommitInvoice(domain.InvoiceCommitRequest{
		CustomerName:  "Rahim",
		CustomerPhone: "01700000000",
		Items:         []domain.InvoiceItem{item},
		Discount:      dec(4000),
		PaidAmount:    dec(100000),
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	if !invoice.Total.Equal(dec(130000)) {
		t.Errorf("total = %s, want 130000", invoice.Total)
	}
	if !invoice.DueAmount.Equal(dec(30000)) {
		t.Errorf("due = %s, want 30000", invoice.DueAmount)
	}
}

func TestDeleteInvoiceKeepsStockSoldByDefault(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"X-1"})
	invoice := sellSerials(t, l, []string{"X-1"}, 65000)

	if err := l.DeleteInvoice(invoice.ID); err != nil {
		t.Fatalf("delete invoice: %v", err)
	}
	stock, err := l.StockByIMEI("X-1")
	if err != nil {
		t.Fatalf("stock: %v", err)
	}
	if stock.Status != domain.StockStatusSold {
		t.Errorf("stock = %s after invoice deletion, want SOLD", stock.Status)
	}
}

func TestPaymentValidation(t *testing.T) {
	tests := []struct {
		name    string
		payment domain.PaymentRequest
		wantErr bool
	}{
		{"cash needs nothing", domain.PaymentRequest{Method: "CASH"}, false},
		{"empty method defaults to cash", domain.PaymentRequest{}, false},
		{"card needs bank", domain.PaymentRequest{Method: "CARD"}, true},
		{"card with bank", domain.PaymentRequest{Method: "CARD", BankName: "BRAC"}, false},
		{"bkash needs sender", domain.PaymentRequest{Method: "BKASH"}, true},
		{"bkash with sender", domain.PaymentRequest{Method: "bkash", SenderPhone: "01711111111"}, false},
		{"nagad needs sender", domain.PaymentRequest{Method: "NAGAD"}, true},
		{"rocket with sender", domain.PaymentRequest{Method: "ROCKET", SenderPhone: "01722222222"}, false},
		{"unknown method", domain.PaymentRequest{Method: "CHEQUE"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payment, err := buildPayment(tc.payment, dec(1000))
			if tc.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("got %v, want ErrValidation", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payment.TransactionID == "" {
				t.Error("transaction id not auto-assigned")
			}
			if !payment.Amount.Equal(dec(1000)) {
				t.Errorf("amount = %s, want paid amount fallback", payment.Amount)
			}
		})
	}
}

func TestUpdateStockPricing(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"Z-1"})

	stock, err := l.UpdateStockPricing("Z-1", domain.StockPricingRequest{
		PurchasePrice: dec(48000),
		SellingPrice:  dec(60000),
	})
	if err != nil {
		t.Fatalf("update pricing: %v", err)
	}
	if !stock.PurchasePrice.Equal(dec(48000)) || !stock.SellingPrice.Equal(dec(60000)) {
		t.Errorf("pricing not applied: %+v", stock)
	}

	// Past purchase records keep their own figures.
	purchases := l.Purchases()
	if !purchases[0].Items[0].CostPrice.Equal(dec(50000)) {
		t.Errorf("purchase history mutated by stock repricing")
	}

	if _, err := l.UpdateStockPricing("Z-1", domain.StockPricingRequest{SellingPrice: dec(60000)}); !errors.Is(err, ErrValidation) {
		t.Errorf("non-positive purchase price: got %v, want ErrValidation", err)
	}
}

func TestDeleteStockKeepsInvoiceSnapshot(t *testing.T) {
	l := newTestLedger(t, Policy{})
	model := seedModel(t, l, "Samsung", "Galaxy A54", 50000, 65000)
	seedPurchase(t, l, model, []string{"K-1"})
	invoice := sellSerials(t, l, []string{"K-1"}, 65000)

	if err := l.DeleteStock("K-1"); err != nil {
		t.Fatalf("delete stock: %v", err)
	}

	reloaded, err := l.InvoiceByID(invoice.ID)
	if err != nil {
		t.Fatalf("invoice: %v", err)
	}
	if len(reloaded.Items) != 1 || reloaded.Items[0].IMEI != "K-1" {
		t.Errorf("invoice item snapshot lost after stock deletion: %+v", reloaded.Items)
	}
}

func TestParseSerials(t *testing.T) {
	got := ParseSerials(" A-1, A-2\nA-1\r\n ,,A-3 ")
	want := []string{"A-1", "A-2", "A-3"}
	if len(got) != len(want) {
		t.Fatalf("serials = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("serials = %v, want %v", got, want)
		}
	}
}
