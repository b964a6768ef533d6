package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/refno"
)

// ParseSerials splits a raw newline/comma separated serial block into unique
// trimmed serials, preserving first-seen order.
func ParseSerials(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	seen := make(map[string]struct{}, len(fields))
	serials := make([]string, 0, len(fields))
	for _, f := range fields {
		s := strings.TrimSpace(f)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		serials = append(serials, s)
	}
	return serials
}

// CheckSerials partitions a raw serial block three ways: already present in
// the stock ledger, already staged in the caller's draft, and net-new. All
// three lists come back so the operator gets complete feedback, not a
// first-collision rejection.
func (l *Ledger) CheckSerials(req domain.SerialCheckRequest) domain.SerialPartition {
	l.mu.RLock()
	defer l.mu.RUnlock()

	inStock := make(map[string]struct{}, len(l.data.Stocks))
	for i := range l.data.Stocks {
		inStock[l.data.Stocks[i].IMEI] = struct{}{}
	}
	staged := make(map[string]struct{}, len(req.Staged))
	for _, s := range req.Staged {
		staged[strings.TrimSpace(s)] = struct{}{}
	}

	part := domain.SerialPartition{
		InSystem: []string{},
		InDraft:  []string{},
		NetNew:   []string{},
	}
	for _, s := range ParseSerials(req.RawSerials) {
		switch {
		case hasKey(inStock, s):
			part.InSystem = append(part.InSystem, s)
		case hasKey(staged, s):
			part.InDraft = append(part.InDraft, s)
		default:
			part.NetNew = append(part.NetNew, s)
		}
	}
	return part
}

func hasKey(m map[string]struct{}, k string) bool {
	_, ok := m[k]
	return ok
}

func (l *Ledger) Purchases() []domain.Purchase {
	l.mu.RLock()
	defer l.mu.RUnlock()

	purchases := make([]domain.Purchase, 0, len(l.data.Purchases))
	for _, p := range l.data.Purchases {
		purchases = append(purchases, p.Clone())
	}
	return purchases
}

func (l *Ledger) PurchaseByID(id string) (domain.Purchase, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, p := range l.data.Purchases {
		if p.ID == id {
			return p.Clone(), nil
		}
	}
	return domain.Purchase{}, ErrNotFound
}

// CommitPurchase appends the purchase record, creates one AVAILABLE stock unit
// per serial across all items, and upserts the supplier directory by
// case-insensitive name. Validation and duplicate checks run before any
// mutation; a partial commit can never happen.
func (l *Ledger) CommitPurchase(req domain.PurchaseCommitRequest) (domain.Purchase, error) {
	supplierName := strings.TrimSpace(req.SupplierName)
	if supplierName == "" || len(req.Items) == 0 {
		return domain.Purchase{}, ErrValidation
	}
	for _, item := range req.Items {
		if len(item.IMEIs) == 0 {
			return domain.Purchase{}, ErrValidation
		}
		if !item.CostPrice.IsPositive() || !item.SellingPrice.IsPositive() {
			return domain.Purchase{}, ErrValidation
		}
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	inStock := make(map[string]struct{}, len(l.data.Stocks))
	for i := range l.data.Stocks {
		inStock[l.data.Stocks[i].IMEI] = struct{}{}
	}

	var duplicates []string
	seen := make(map[string]struct{})
	for _, item := range req.Items {
		for _, imei := range item.IMEIs {
			imei = strings.TrimSpace(imei)
			if imei == "" {
				return domain.Purchase{}, ErrValidation
			}
			if hasKey(inStock, imei) || hasKey(seen, imei) {
				duplicates = append(duplicates, imei)
				continue
			}
			seen[imei] = struct{}{}
		}
	}
	if len(duplicates) > 0 {
		return domain.Purchase{}, newDuplicateSerials(duplicates)
	}

	subtotal := decimal.Zero
	for _, item := range req.Items {
		subtotal = subtotal.Add(item.CostPrice.Mul(decimal.NewFromInt(int64(len(item.IMEIs)))))
	}
	total := subtotal.Add(req.VAT).Sub(req.Discount)
	due := total.Sub(req.PaidAmount)

	purchase := domain.Purchase{
		ID:              uuid.NewString(),
		PurchaseNumber:  refno.Purchase(time.Now()),
		Date:            date,
		SupplierName:    supplierName,
		SupplierPhone:   strings.TrimSpace(req.SupplierPhone),
		SupplierAddress: strings.TrimSpace(req.SupplierAddress),
		Items:           req.Items,
		Subtotal:        subtotal,
		VAT:             req.VAT,
		Discount:        req.Discount,
		Total:           total,
		PaidAmount:      req.PaidAmount,
		DueAmount:       due,
	}

	next := l.data.Clone()
	next.Purchases = append(next.Purchases, purchase.Clone())
	for _, item := range req.Items {
		for _, imei := range item.IMEIs {
			next.Stocks = append(next.Stocks, domain.Stock{
				IMEI:          strings.TrimSpace(imei),
				ModelID:       item.ModelID,
				Status:        domain.StockStatusAvailable,
				DateAdded:     date,
				PurchaseID:    purchase.ID,
				PurchasePrice: item.CostPrice,
				SellingPrice:  item.SellingPrice,
			})
		}
	}

	exists := false
	for i := range next.Suppliers {
		if sameName(next.Suppliers[i].Name, supplierName) {
			exists = true
			break
		}
	}
	if !exists {
		next.Suppliers = append(next.Suppliers, domain.Supplier{
			ID:      uuid.NewString(),
			Name:    supplierName,
			Phone:   strings.TrimSpace(req.SupplierPhone),
			Address: strings.TrimSpace(req.SupplierAddress),
		})
	}

	l.data = next
	return purchase, nil
}

// UpdatePurchase is an administrative override: only the supplier name and the
// due amount change, and no totals are recomputed.
func (l *Ledger) UpdatePurchase(id string, req domain.PurchaseUpdateRequest) (domain.Purchase, error) {
	if req.SupplierName != nil && strings.TrimSpace(*req.SupplierName) == "" {
		return domain.Purchase{}, ErrValidation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	for i := range next.Purchases {
		if next.Purchases[i].ID != id {
			continue
		}
		if req.SupplierName != nil {
			next.Purchases[i].SupplierName = strings.TrimSpace(*req.SupplierName)
		}
		if req.DueAmount != nil {
			next.Purchases[i].DueAmount = *req.DueAmount
		}
		l.data = next
		return next.Purchases[i].Clone(), nil
	}
	return domain.Purchase{}, ErrNotFound
}

// DeletePurchase removes only the purchase record. Referenced stock units are
// retained on purpose so downstream sale history survives; their purchaseId
// becomes an orphan reference.
func (l *Ledger) DeletePurchase(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	for i := range next.Purchases {
		if next.Purchases[i].ID == id {
			next.Purchases = append(next.Purchases[:i], next.Purchases[i+1:]...)
			l.data = next
			return nil
		}
	}
	return ErrNotFound
}

func (l *Ledger) Suppliers() []domain.Supplier {
	l.mu.RLock()
	defer l.mu.RUnlock()

	suppliers := make([]domain.Supplier, len(l.data.Suppliers))
	copy(suppliers, l.data.Suppliers)
	return suppliers
}
