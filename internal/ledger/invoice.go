package ledger

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/refno"
)

func (l *Ledger) Invoices() []domain.Invoice {
	l.mu.RLock()
	defer l.mu.RUnlock()

	invoices := make([]domain.Invoice, 0, len(l.data.Invoices))
	for _, inv := range l.data.Invoices {
		invoices = append(invoices, inv.Clone())
	}
	return invoices
}

func (l *Ledger) InvoiceByID(id string) (domain.Invoice, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, inv := range l.data.Invoices {
		if inv.ID == id {
			return inv.Clone(), nil
		}
	}
	return domain.Invoice{}, ErrNotFound
}

// LookupCartItem resolves one serial into an invoice draft item. A SOLD unit
// is only accepted when the invoice being edited already owns it. The draft
// price defaults to the stock unit's recorded selling price, falling back to
// the catalog model's when the stock price is zero.
func (l *Ledger) LookupCartItem(req domain.CartItemRequest) (domain.InvoiceItem, error) {
	serial := strings.TrimSpace(req.Serial)
	if serial == "" {
		return domain.InvoiceItem{}, ErrValidation
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, staged := range req.Draft {
		if strings.TrimSpace(staged) == serial {
			return domain.InvoiceItem{}, ErrAlreadyInCart
		}
	}

	var stock *domain.Stock
	for i := range l.data.Stocks {
		if l.data.Stocks[i].IMEI == serial {
			stock = &l.data.Stocks[i]
			break
		}
	}
	if stock == nil {
		return domain.InvoiceItem{}, ErrNotFound
	}

	if stock.Status == domain.StockStatusSold && !l.ownedByInvoice(serial, req.EditingInvoiceID) {
		return domain.InvoiceItem{}, ErrAlreadySold
	}

	price := stock.SellingPrice
	brand, modelName := "N/A", "N/A"
	if model := l.findModelByID(stock.ModelID); model != nil {
		brand, modelName = model.Brand, model.ModelName
		if price.IsZero() {
			price = model.SellingPrice
		}
	}

	return domain.InvoiceItem{
		IMEI:      serial,
		ModelName: modelName,
		Brand:     brand,
		Price:     price,
	}, nil
}

func (l *Ledger) ownedByInvoice(serial, invoiceID string) bool {
	if invoiceID == "" {
		return false
	}
	for _, inv := range l.data.Invoices {
		if inv.ID != invoiceID {
			continue
		}
		for _, item := range inv.Items {
			if item.IMEI == serial {
				return true
			}
		}
	}
	return false
}

// CommitInvoice creates a new invoice, or replaces an existing one in place
// when req.ID matches. Create transitions every referenced stock unit to SOLD.
// Edit flips newly added serials to SOLD; serials dropped from the invoice are
// only reverted to AVAILABLE when the RevertSoldOnRemove policy is on.
func (l *Ledger) CommitInvoice(req domain.InvoiceCommitRequest) (domain.Invoice, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	customerPhone := strings.TrimSpace(req.CustomerPhone)
	if customerName == "" || customerPhone == "" || len(req.Items) == 0 {
		return domain.Invoice{}, ErrValidation
	}
	payment, err := buildPayment(req.Payment, req.PaidAmount)
	if err != nil {
		return domain.Invoice{}, err
	}
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var existing *domain.Invoice
	existingIdx := -1
	if req.ID != "" {
		for i := range l.data.Invoices {
			if l.data.Invoices[i].ID == req.ID {
				existing = &l.data.Invoices[i]
				existingIdx = i
				break
			}
		}
		if existing == nil {
			return domain.Invoice{}, ErrNotFound
		}
	}

	oldSerials := make(map[string]struct{})
	if existing != nil {
		for _, item := range existing.Items {
			oldSerials[item.IMEI] = struct{}{}
		}
	}

	// Re-check availability at commit time. Serials carried over from the
	// invoice being edited are exempt; their stock may even have been deleted.
	newSerials := make(map[string]struct{}, len(req.Items))
	for _, item := range req.Items {
		serial := strings.TrimSpace(item.IMEI)
		if serial == "" {
			return domain.Invoice{}, ErrValidation
		}
		if _, dup := newSerials[serial]; dup {
			return domain.Invoice{}, ErrAlreadyInCart
		}
		newSerials[serial] = struct{}{}
		if _, owned := oldSerials[serial]; owned {
			continue
		}
		stock := l.findStock(serial)
		if stock == nil {
			return domain.Invoice{}, ErrNotFound
		}
		if stock.Status == domain.StockStatusSold {
			return domain.Invoice{}, ErrAlreadySold
		}
	}

	subtotal := decimal.Zero
	for _, item := range req.Items {
		subtotal = subtotal.Add(item.Price)
	}
	total := subtotal.Sub(req.Discount)
	due := total.Sub(req.PaidAmount)

	invoice := domain.Invoice{
		ID:            req.ID,
		Date:          date,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Items:         req.Items,
		Subtotal:      subtotal,
		Discount:      req.Discount,
		VAT:           decimal.Zero,
		Total:         total,
		Payments:      []domain.PaymentDetails{payment},
		PaidAmount:    req.PaidAmount,
		DueAmount:     due,
	}
	if addr := strings.TrimSpace(req.CustomerAddress); addr != "" {
		invoice.CustomerAddress = &addr
	}
	if narration := strings.TrimSpace(req.Narration); narration != "" {
		invoice.Narration = &narration
	}
	if existing != nil {
		invoice.InvoiceNumber = existing.InvoiceNumber
	} else {
		invoice.ID = uuid.NewString()
		invoice.InvoiceNumber = refno.Invoice(l.data.Shop.Name, time.Now())
	}

	next := l.data.Clone()
	if existingIdx >= 0 {
		next.Invoices[existingIdx] = invoice.Clone()
	} else {
		next.Invoices = append(next.Invoices, invoice.Clone())
	}

	for i := range next.Stocks {
		serial := next.Stocks[i].IMEI
		if _, referenced := newSerials[serial]; referenced {
			id := invoice.ID
			next.Stocks[i].Status = domain.StockStatusSold
			next.Stocks[i].InvoiceID = &id
			continue
		}
		if _, dropped := oldSerials[serial]; dropped && l.policy.RevertSoldOnRemove {
			next.Stocks[i].Status = domain.StockStatusAvailable
			next.Stocks[i].InvoiceID = nil
		}
	}

	l.data = next
	return invoice, nil
}

// DeleteInvoice removes the invoice record. Referenced stock stays SOLD unless
// the RevertSoldOnRemove policy is on.
func (l *Ledger) DeleteInvoice(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	for i := range next.Invoices {
		if next.Invoices[i].ID != id {
			continue
		}
		dropped := make(map[string]struct{}, len(next.Invoices[i].Items))
		for _, item := range next.Invoices[i].Items {
			dropped[item.IMEI] = struct{}{}
		}
		next.Invoices = append(next.Invoices[:i], next.Invoices[i+1:]...)
		if l.policy.RevertSoldOnRemove {
			for j := range next.Stocks {
				if _, ok := dropped[next.Stocks[j].IMEI]; ok {
					next.Stocks[j].Status = domain.StockStatusAvailable
					next.Stocks[j].InvoiceID = nil
				}
			}
		}
		l.data = next
		return nil
	}
	return ErrNotFound
}

func buildPayment(req domain.PaymentRequest, paidAmount decimal.Decimal) (domain.PaymentDetails, error) {
	method := strings.ToUpper(strings.TrimSpace(req.Method))
	if method == "" {
		method = domain.PaymentMethodCash
	}

	payment := domain.PaymentDetails{
		Method:        method,
		Amount:        req.Amount,
		TransactionID: strings.TrimSpace(req.TransactionID),
	}
	if payment.Amount.IsZero() {
		payment.Amount = paidAmount
	}

	switch method {
	case domain.PaymentMethodCash:
	case domain.PaymentMethodCard:
		bank := strings.TrimSpace(req.BankName)
		if bank == "" {
			return domain.PaymentDetails{}, ErrValidation
		}
		payment.BankName = &bank
	case domain.PaymentMethodBkash, domain.PaymentMethodNagad, domain.PaymentMethodRocket:
		sender := strings.TrimSpace(req.SenderPhone)
		if sender == "" {
			return domain.PaymentDetails{}, ErrValidation
		}
		payment.SenderPhone = &sender
	default:
		return domain.PaymentDetails{}, ErrValidation
	}

	if payment.TransactionID == "" {
		payment.TransactionID = refno.Transaction()
	}
	return payment, nil
}
