// Package docgen builds the value payload of a printable invoice or purchase
// document: shop identity header, metadata box, line items, totals block and
// the amount-in-words rendering. Pixel layout belongs to the consumer.
package docgen

import (
	"github.com/shopspring/decimal"

	"mobipos/backend/internal/domain"
)

type DocumentLine struct {
	Serial      string          `json:"serial"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type Document struct {
	Kind          string          `json:"kind"`
	Number        string          `json:"number"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	Shop          domain.Shop     `json:"shop"`
	PartyName     string          `json:"partyName"`
	PartyPhone    string          `json:"partyPhone"`
	PartyAddress  string          `json:"partyAddress"`
	Lines         []DocumentLine  `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	VAT           decimal.Decimal `json:"vat"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Paid          decimal.Decimal `json:"paid"`
	Due           decimal.Decimal `json:"due"`
	AmountInWords string          `json:"amountInWords"`
}

// InvoiceDocument projects a sales invoice into its printable values.
func InvoiceDocument(shop domain.Shop, inv domain.Invoice) Document {
	doc := Document{
		Kind:       "invoice",
		Number:     inv.InvoiceNumber,
		Date:       inv.Date,
		Status:     paymentStatus(inv.DueAmount, inv.Total),
		Shop:       shop,
		PartyName:  inv.CustomerName,
		PartyPhone: inv.CustomerPhone,
		Subtotal:   inv.Subtotal,
		VAT:        inv.VAT,
		Discount:   inv.Discount,
		Total:      inv.Total,
		Paid:       inv.PaidAmount,
		Due:        inv.DueAmount,
	}
	if inv.CustomerAddress != nil {
		doc.PartyAddress = *inv.CustomerAddress
	}
	doc.Lines = make([]DocumentLine, 0, len(inv.Items))
	for _, item := range inv.Items {
		doc.Lines = append(doc.Lines, DocumentLine{
			Serial:      item.IMEI,
			Description: item.Brand + " " + item.ModelName,
			Quantity:    1,
			UnitPrice:   item.Price,
			LineTotal:   item.Price,
		})
	}
	doc.AmountInWords = AmountInWords(inv.Total)
	return doc
}

// PurchaseDocument projects a stock-receiving record into its printable
// values. Each item becomes one line with its serial count as the quantity.
func PurchaseDocument(shop domain.Shop, p domain.Purchase) Document {
	doc := Document{
		Kind:         "purchase",
		Number:       p.PurchaseNumber,
		Date:         p.Date,
		Status:       paymentStatus(p.DueAmount, p.Total),
		Shop:         shop,
		PartyName:    p.SupplierName,
		PartyPhone:   p.SupplierPhone,
		PartyAddress: p.SupplierAddress,
		Subtotal:     p.Subtotal,
		VAT:          p.VAT,
		Discount:     p.Discount,
		Total:        p.Total,
		Paid:         p.PaidAmount,
		Due:          p.DueAmount,
	}
	doc.Lines = make([]DocumentLine, 0, len(p.Items))
	for _, item := range p.Items {
		qty := len(item.IMEIs)
		doc.Lines = append(doc.Lines, DocumentLine{
			Description: item.Brand + " " + item.ModelName,
			Quantity:    qty,
			UnitPrice:   item.CostPrice,
			LineTotal:   item.CostPrice.Mul(decimal.NewFromInt(int64(qty))),
		})
	}
	doc.AmountInWords = AmountInWords(p.Total)
	return doc
}

func paymentStatus(due, total decimal.Decimal) string {
	switch {
	case due.LessThanOrEqual(decimal.Zero):
		return "PAID"
	case due.GreaterThanOrEqual(total):
		return "UNPAID"
	default:
		return "PARTIAL"
	}
}
