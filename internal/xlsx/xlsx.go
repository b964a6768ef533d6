// Package xlsx reads and writes the shop's spreadsheet interchange formats.
// Import is additive: rows that fail to parse come back with zero values and
// are skipped by the ledger's dedup/validation pass, never treated as errors.
package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"mobipos/backend/internal/domain"
)

// Catalog sheet column headers, matched case-insensitively.
const (
	colBrand     = "brand"
	colModelName = "model name"
	colCostPrice = "cost price"
	colSalePrice = "sale price"
)

// Purchase sheet adds supplier columns and an IMEIs cell with
// comma/newline-delimited serials.
const (
	colSupplier = "supplier"
	colPhone    = "phone"
	colModel    = "model"
	colIMEIs    = "imeis"
)

// ParseCatalog reads catalog rows from the first sheet of an xlsx file.
func ParseCatalog(r io.Reader) ([]domain.ModelCreateRequest, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []domain.ModelCreateRequest{}, nil
	}

	idx := headerIndex(rows[0])
	out := make([]domain.ModelCreateRequest, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, domain.ModelCreateRequest{
			Brand:         cell(row, col(idx, colBrand)),
			ModelName:     cell(row, col(idx, colModelName)),
			PurchasePrice: cellDecimal(row, col(idx, colCostPrice)),
			SellingPrice:  cellDecimal(row, col(idx, colSalePrice)),
		})
	}
	return out, nil
}

// ParsePurchases reads purchase intake rows from the first sheet.
func ParsePurchases(r io.Reader) ([]domain.PurchaseImportRow, error) {
	rows, err := sheetRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []domain.PurchaseImportRow{}, nil
	}

	idx := headerIndex(rows[0])
	out := make([]domain.PurchaseImportRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		out = append(out, domain.PurchaseImportRow{
			SupplierName: cell(row, col(idx, colSupplier)),
			Phone:        cell(row, col(idx, colPhone)),
			Brand:        cell(row, col(idx, colBrand)),
			ModelName:    cell(row, col(idx, colModel)),
			CostPrice:    cellDecimal(row, col(idx, colCostPrice)),
			SellingPrice: cellDecimal(row, col(idx, colSalePrice)),
			IMEIs:        cell(row, col(idx, colIMEIs)),
		})
	}
	return out, nil
}

// WriteCatalog renders the catalog into a workbook the import path accepts
// back unchanged.
func WriteCatalog(models []domain.Model) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Brand", "Model Name", "Cost Price", "Sale Price"}
	for i, h := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellRef, h); err != nil {
			return nil, err
		}
	}

	for i, m := range models {
		values := []any{m.Brand, m.ModelName, m.PurchasePrice.InexactFloat64(), m.SellingPrice.InexactFloat64()}
		for j, v := range values {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// WriteStocks renders the stock ledger with resolved model names; units whose
// catalog model was deleted show "N/A".
func WriteStocks(stocks []domain.Stock, models []domain.Model) (*excelize.File, error) {
	byID := make(map[string]domain.Model, len(models))
	for _, m := range models {
		byID[m.ID] = m
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"IMEI", "Brand", "Model", "Status", "Date Added", "Cost Price", "Sale Price"}
	for i, h := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellRef, h); err != nil {
			return nil, err
		}
	}

	for i, s := range stocks {
		brand, modelName := "N/A", "N/A"
		if m, ok := byID[s.ModelID]; ok {
			brand, modelName = m.Brand, m.ModelName
		}
		values := []any{s.IMEI, brand, modelName, s.Status, s.DateAdded, s.PurchasePrice.InexactFloat64(), s.SellingPrice.InexactFloat64()}
		for j, v := range values {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// WriteInvoices renders the sales ledger, one row per invoice.
func WriteInvoices(invoices []domain.Invoice) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Invoice No", "Date", "Customer", "Phone", "Units", "Subtotal", "Discount", "Total", "Paid", "Due"}
	for i, h := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellRef, h); err != nil {
			return nil, err
		}
	}

	for i, inv := range invoices {
		values := []any{
			inv.InvoiceNumber, inv.Date, inv.CustomerName, inv.CustomerPhone,
			len(inv.Items),
			inv.Subtotal.InexactFloat64(), inv.Discount.InexactFloat64(),
			inv.Total.InexactFloat64(), inv.PaidAmount.InexactFloat64(),
			inv.DueAmount.InexactFloat64(),
		}
		for j, v := range values {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func sheetRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

// col maps a header name to its column index, -1 when the sheet lacks it.
func col(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cellDecimal returns zero on any parse failure; the ledger skips the row.
func cellDecimal(row []string, i int) decimal.Decimal {
	raw := strings.ReplaceAll(cell(row, i), ",", "")
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
