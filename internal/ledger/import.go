package ledger

import (
	"strings"

	"mobipos/backend/internal/domain"
)

// ImportPurchaseRows replays each spreadsheet row through the normal purchase
// commit path: one purchase per row, catalog models created on demand when the
// row names an unknown brand/model. Serials already in the system are dropped
// from the row and reported; a row with nothing left, blank fields or
// non-positive prices is skipped silently. Import never destroys existing
// data.
func (l *Ledger) ImportPurchaseRows(rows []domain.PurchaseImportRow) domain.ImportReport {
	report := domain.ImportReport{Serials: []string{}}

	for _, row := range rows {
		supplier := strings.TrimSpace(row.SupplierName)
		brand := strings.TrimSpace(row.Brand)
		modelName := strings.TrimSpace(row.ModelName)
		if supplier == "" || brand == "" || modelName == "" {
			report.Skipped++
			continue
		}
		if !row.CostPrice.IsPositive() || !row.SellingPrice.IsPositive() {
			report.Skipped++
			continue
		}

		part := l.CheckSerials(domain.SerialCheckRequest{RawSerials: row.IMEIs})
		report.Serials = append(report.Serials, part.InSystem...)
		if len(part.NetNew) == 0 {
			report.Skipped++
			continue
		}

		modelID := l.ensureModel(brand, modelName, row)
		_, err := l.CommitPurchase(domain.PurchaseCommitRequest{
			SupplierName:  supplier,
			SupplierPhone: strings.TrimSpace(row.Phone),
			Items: []domain.PurchaseItem{{
				ModelID:      modelID,
				Brand:        brand,
				ModelName:    modelName,
				IMEIs:        part.NetNew,
				CostPrice:    row.CostPrice,
				SellingPrice: row.SellingPrice,
			}},
		})
		if err != nil {
			report.Skipped++
			continue
		}
		report.Added++
	}

	return report
}

func (l *Ledger) ensureModel(brand, modelName string, row domain.PurchaseImportRow) string {
	l.mu.RLock()
	var existingID string
	if model := l.findModelByName(brand, modelName); model != nil {
		existingID = model.ID
	}
	l.mu.RUnlock()
	if existingID != "" {
		return existingID
	}

	created, err := l.AddModel(domain.ModelCreateRequest{
		Brand:         brand,
		ModelName:     modelName,
		PurchasePrice: row.CostPrice,
		SellingPrice:  row.SellingPrice,
	})
	if err != nil {
		return ""
	}
	return created.ID
}
