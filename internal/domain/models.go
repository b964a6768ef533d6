package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StockStatusAvailable = "AVAILABLE"
	StockStatusSold      = "SOLD"
)

const (
	PaymentMethodCash   = "CASH"
	PaymentMethodBkash  = "BKASH"
	PaymentMethodNagad  = "NAGAD"
	PaymentMethodRocket = "ROCKET"
	PaymentMethodCard   = "CARD"
)

// Model is a catalog template for a device. Unique by (brand, modelName)
// case-insensitively, enforced at insert time.
type Model struct {
	ID            string          `json:"id"`
	Brand         string          `json:"brand"`
	ModelName     string          `json:"modelName"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
}

// Supplier records are created implicitly from purchase intake and deduplicated
// by exact case-insensitive name match only.
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PurchaseItem groups N serialized units of one model received in the same
// transaction at the same cost/sale price.
type PurchaseItem struct {
	ModelID      string          `json:"modelId"`
	Brand        string          `json:"brand"`
	ModelName    string          `json:"modelName"`
	IMEIs        []string        `json:"imeis"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

type Purchase struct {
	ID              string          `json:"id"`
	PurchaseNumber  string          `json:"purchaseNumber"`
	Date            string          `json:"date"`
	SupplierName    string          `json:"supplierName"`
	SupplierPhone   string          `json:"supplierPhone"`
	SupplierAddress string          `json:"supplierAddress"`
	Items           []PurchaseItem  `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	VAT             decimal.Decimal `json:"vat"`
	Discount        decimal.Decimal `json:"discount"`
	Total           decimal.Decimal `json:"total"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	DueAmount       decimal.Decimal `json:"dueAmount"`
}

// Stock is one physical unit, keyed globally by its IMEI. InvoiceID stays nil
// until the unit is sold and serializes as JSON null, never omitted.
type Stock struct {
	IMEI          string          `json:"imei"`
	ModelID       string          `json:"modelId"`
	Status        string          `json:"status"`
	DateAdded     string          `json:"dateAdded"`
	PurchaseID    string          `json:"purchaseId"`
	InvoiceID     *string         `json:"invoiceId"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
}

// InvoiceItem is a snapshot of the stock unit at the moment of sale, not a
// live reference. Deleting the stock unit later does not affect it.
type InvoiceItem struct {
	IMEI      string          `json:"imei"`
	ModelName string          `json:"modelName"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
}

type PaymentDetails struct {
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      *string         `json:"bankName"`
	SenderPhone   *string         `json:"senderPhone"`
	TransactionID string          `json:"transactionId"`
}

type Invoice struct {
	ID              string           `json:"id"`
	InvoiceNumber   string           `json:"invoiceNumber"`
	Date            string           `json:"date"`
	CustomerName    string           `json:"customerName"`
	CustomerPhone   string           `json:"customerPhone"`
	CustomerAddress *string          `json:"customerAddress"`
	Narration       *string          `json:"narration"`
	Items           []InvoiceItem    `json:"items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	Discount        decimal.Decimal  `json:"discount"`
	VAT             decimal.Decimal  `json:"vat"`
	Total           decimal.Decimal  `json:"total"`
	Payments        []PaymentDetails `json:"payments"`
	PaidAmount      decimal.Decimal  `json:"paidAmount"`
	DueAmount       decimal.Decimal  `json:"dueAmount"`
}

type Shop struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// AppData is the root aggregate, one per shop account. It is persisted as a
// single JSON document and always replaced whole, never partially mutated.
type AppData struct {
	Shop      Shop       `json:"shop"`
	Models    []Model    `json:"models"`
	Stocks    []Stock    `json:"stocks"`
	Invoices  []Invoice  `json:"invoices"`
	Purchases []Purchase `json:"purchases"`
	Suppliers []Supplier `json:"suppliers"`
}

// NewAppData returns an empty aggregate with every collection allocated so the
// persisted document serializes arrays as [] instead of null.
func NewAppData() *AppData {
	return &AppData{
		Models:    []Model{},
		Stocks:    []Stock{},
		Invoices:  []Invoice{},
		Purchases: []Purchase{},
		Suppliers: []Supplier{},
	}
}

type ModelCreateRequest struct {
	Brand         string          `json:"brand" validate:"required"`
	ModelName     string          `json:"modelName" validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
}

type ModelUpdateRequest struct {
	Brand         string          `json:"brand" validate:"required"`
	ModelName     string          `json:"modelName" validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
}

// SerialCheckRequest carries one raw newline/comma separated serial block for
// partitioning against the stock ledger and the caller's staged draft.
type SerialCheckRequest struct {
	RawSerials string   `json:"rawSerials" validate:"required"`
	Staged     []string `json:"staged"`
}

// SerialPartition is the three-way split of a serial block: already present in
// the stock ledger, already staged in the current draft, and net-new.
type SerialPartition struct {
	InSystem []string `json:"inSystem"`
	InDraft  []string `json:"inDraft"`
	NetNew   []string `json:"netNew"`
}

type PurchaseCommitRequest struct {
	Date            string          `json:"date"`
	SupplierName    string          `json:"supplierName" validate:"required"`
	SupplierPhone   string          `json:"supplierPhone"`
	SupplierAddress string          `json:"supplierAddress"`
	Items           []PurchaseItem  `json:"items" validate:"required,min=1"`
	VAT             decimal.Decimal `json:"vat"`
	Discount        decimal.Decimal `json:"discount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
}

// PurchaseUpdateRequest is the administrative override path: only the supplier
// name and the due amount can change, and nothing is recomputed.
type PurchaseUpdateRequest struct {
	SupplierName *string          `json:"supplierName"`
	DueAmount    *decimal.Decimal `json:"dueAmount"`
}

// CartItemRequest resolves one serial into an invoice draft item.
// EditingInvoiceID is set when the operator is editing an existing invoice so
// its own sold serials can be re-added.
type CartItemRequest struct {
	Serial           string   `json:"serial" validate:"required"`
	Draft            []string `json:"draft"`
	EditingInvoiceID string   `json:"editingInvoiceId"`
}

type PaymentRequest struct {
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `json:"bankName"`
	SenderPhone   string          `json:"senderPhone"`
	TransactionID string          `json:"transactionId"`
}

type InvoiceCommitRequest struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	CustomerName    string          `json:"customerName" validate:"required"`
	CustomerPhone   string          `json:"customerPhone" validate:"required"`
	CustomerAddress string          `json:"customerAddress"`
	Narration       string          `json:"narration"`
	Items           []InvoiceItem   `json:"items" validate:"required,min=1"`
	Discount        decimal.Decimal `json:"discount"`
	PaidAmount      decimal.Decimal `json:"paidAmount"`
	Payment         PaymentRequest  `json:"payment"`
}

type StockPricingRequest struct {
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SellingPrice  decimal.Decimal `json:"sellingPrice"`
}

// PurchaseImportRow mirrors one spreadsheet row of the purchase intake sheet.
// The IMEIs cell holds comma/newline-delimited serials.
type PurchaseImportRow struct {
	SupplierName string
	Phone        string
	Brand        string
	ModelName    string
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	IMEIs        string
}

// ImportReport counts the outcome of a bulk spreadsheet import. Malformed and
// duplicate rows are skipped, never failed.
type ImportReport struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Serials []string `json:"duplicateSerials,omitempty"`
}

// LifecycleRow is one synthesized event in a stock unit's history, joined at
// query time from the purchase and invoice ledgers.
type LifecycleRow struct {
	Kind      string          `json:"kind"`
	Reference string          `json:"reference"`
	Date      string          `json:"date"`
	Party     string          `json:"party"`
	Amount    decimal.Decimal `json:"amount"`
}

type StockSearchHit struct {
	Stock     Stock          `json:"stock"`
	Brand     string         `json:"brand"`
	ModelName string         `json:"modelName"`
	Lifecycle []LifecycleRow `json:"lifecycle"`
}

type InvoiceSearchHit struct {
	Invoice Invoice `json:"invoice"`
}

type SearchResult struct {
	Query    string             `json:"query"`
	Stocks   []StockSearchHit   `json:"stocks"`
	Invoices []InvoiceSearchHit `json:"invoices"`
}

type StockSummary struct {
	TotalUnits     int             `json:"totalUnits"`
	AvailableUnits int             `json:"availableUnits"`
	SoldUnits      int             `json:"soldUnits"`
	StockValue     decimal.Decimal `json:"stockValue"`
	PotentialValue decimal.Decimal `json:"potentialValue"`
}

type SalesSummary struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	InvoiceCount int             `json:"invoiceCount"`
	UnitsSold    int             `json:"unitsSold"`
	GrossSales   decimal.Decimal `json:"grossSales"`
	Discount     decimal.Decimal `json:"discount"`
	NetSales     decimal.Decimal `json:"netSales"`
	Collected    decimal.Decimal `json:"collected"`
	Outstanding  decimal.Decimal `json:"outstanding"`
}

type PurchaseSummary struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	PurchaseCount int             `json:"purchaseCount"`
	UnitsReceived int             `json:"unitsReceived"`
	TotalCost     decimal.Decimal `json:"totalCost"`
	Paid          decimal.Decimal `json:"paid"`
	Outstanding   decimal.Decimal `json:"outstanding"`
}

// RestockSuggestion flags catalog models that have sold units but nothing
// left on the shelf.
type RestockSuggestion struct {
	ModelID      string `json:"modelId"`
	Brand        string `json:"brand"`
	ModelName    string `json:"modelName"`
	SoldUnits    int    `json:"soldUnits"`
	InStockUnits int    `json:"inStockUnits"`
}

type RegisterRequest struct {
	AccountID string `json:"accountId" validate:"required,min=4"`
	Password  string `json:"password" validate:"required,min=6"`
	ShopName  string `json:"shopName"`
}

type LoginRequest struct {
	AccountID string `json:"accountId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	AccountID   string `json:"accountId"`
	ExpiresAt   string `json:"expiresAt"`
}

// Account is the persistence model for shop account credentials.
type Account struct {
	ID           string    `json:"id"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Actor identifies the authenticated shop account on a request context.
type Actor struct {
	AccountID string
}
