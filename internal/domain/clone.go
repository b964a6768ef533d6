package domain

// Clone returns a deep copy of the aggregate. Commands mutate the copy and
// swap it in whole, so a failed command can never leave partial state behind.
func (d *AppData) Clone() *AppData {
	out := &AppData{
		Shop:      d.Shop,
		Models:    make([]Model, len(d.Models)),
		Stocks:    make([]Stock, len(d.Stocks)),
		Invoices:  make([]Invoice, 0, len(d.Invoices)),
		Purchases: make([]Purchase, 0, len(d.Purchases)),
		Suppliers: make([]Supplier, len(d.Suppliers)),
	}
	copy(out.Models, d.Models)
	copy(out.Suppliers, d.Suppliers)
	for i, s := range d.Stocks {
		out.Stocks[i] = s.Clone()
	}
	for _, inv := range d.Invoices {
		out.Invoices = append(out.Invoices, inv.Clone())
	}
	for _, p := range d.Purchases {
		out.Purchases = append(out.Purchases, p.Clone())
	}
	return out
}

func (s Stock) Clone() Stock {
	out := s
	if s.InvoiceID != nil {
		id := *s.InvoiceID
		out.InvoiceID = &id
	}
	return out
}

func (p Purchase) Clone() Purchase {
	out := p
	out.Items = make([]PurchaseItem, len(p.Items))
	for i, item := range p.Items {
		out.Items[i] = item
		out.Items[i].IMEIs = append([]string(nil), item.IMEIs...)
	}
	return out
}

func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = append([]InvoiceItem(nil), inv.Items...)
	out.Payments = make([]PaymentDetails, len(inv.Payments))
	for i, pay := range inv.Payments {
		out.Payments[i] = pay
		if pay.BankName != nil {
			v := *pay.BankName
			out.Payments[i].BankName = &v
		}
		if pay.SenderPhone != nil {
			v := *pay.SenderPhone
			out.Payments[i].SenderPhone = &v
		}
	}
	if inv.CustomerAddress != nil {
		v := *inv.CustomerAddress
		out.CustomerAddress = &v
	}
	if inv.Narration != nil {
		v := *inv.Narration
		out.Narration = &v
	}
	return out
}
