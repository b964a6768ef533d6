package ledger

import (
	"strings"

	"github.com/google/uuid"

	"mobipos/backend/internal/domain"
)

func (l *Ledger) Models() []domain.Model {
	l.mu.RLock()
	defer l.mu.RUnlock()

	models := make([]domain.Model, len(l.data.Models))
	copy(models, l.data.Models)
	return models
}

// AddModel inserts a catalog template. Brand+model collisions are checked
// case-insensitively at insert time; nothing in storage enforces them.
func (l *Ledger) AddModel(req domain.ModelCreateRequest) (domain.Model, error) {
	brand := strings.TrimSpace(req.Brand)
	modelName := strings.TrimSpace(req.ModelName)
	if brand == "" || modelName == "" {
		return domain.Model{}, ErrValidation
	}
	if !req.PurchasePrice.IsPositive() || !req.SellingPrice.IsPositive() {
		return domain.Model{}, ErrValidation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.findModelByName(brand, modelName) != nil {
		return domain.Model{}, newDuplicateModel(brand, modelName)
	}

	model := domain.Model{
		ID:            uuid.NewString(),
		Brand:         brand,
		ModelName:     modelName,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
	}

	next := l.data.Clone()
	next.Models = append(next.Models, model)
	l.data = next
	return model, nil
}

// UpdateModel replaces the template by id unconditionally.
func (l *Ledger) UpdateModel(id string, req domain.ModelUpdateRequest) (domain.Model, error) {
	brand := strings.TrimSpace(req.Brand)
	modelName := strings.TrimSpace(req.ModelName)
	if brand == "" || modelName == "" {
		return domain.Model{}, ErrValidation
	}
	if !req.PurchasePrice.IsPositive() || !req.SellingPrice.IsPositive() {
		return domain.Model{}, ErrValidation
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	for i := range next.Models {
		if next.Models[i].ID != id {
			continue
		}
		next.Models[i] = domain.Model{
			ID:            id,
			Brand:         brand,
			ModelName:     modelName,
			PurchasePrice: req.PurchasePrice,
			SellingPrice:  req.SellingPrice,
		}
		l.data = next
		return next.Models[i], nil
	}
	return domain.Model{}, ErrNotFound
}

// DeleteModel removes the template and leaves referencing stock untouched.
// Orphaned stock displays fall back to "N/A" downstream.
func (l *Ledger) DeleteModel(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	for i := range next.Models {
		if next.Models[i].ID == id {
			next.Models = append(next.Models[:i], next.Models[i+1:]...)
			l.data = next
			return nil
		}
	}
	return ErrNotFound
}

// ImportModels applies the same duplicate check as AddModel per row and
// reports added vs skipped counts. Malformed rows (blank names, non-positive
// prices) are skipped silently, not failed.
func (l *Ledger) ImportModels(rows []domain.ModelCreateRequest) domain.ImportReport {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.data.Clone()
	report := domain.ImportReport{}
	for _, row := range rows {
		brand := strings.TrimSpace(row.Brand)
		modelName := strings.TrimSpace(row.ModelName)
		if brand == "" || modelName == "" || !row.PurchasePrice.IsPositive() || !row.SellingPrice.IsPositive() {
			report.Skipped++
			continue
		}
		duplicate := false
		for i := range next.Models {
			if sameName(next.Models[i].Brand, brand) && sameName(next.Models[i].ModelName, modelName) {
				duplicate = true
				break
			}
		}
		if duplicate {
			report.Skipped++
			continue
		}
		next.Models = append(next.Models, domain.Model{
			ID:            uuid.NewString(),
			Brand:         brand,
			ModelName:     modelName,
			PurchasePrice: row.PurchasePrice,
			SellingPrice:  row.SellingPrice,
		})
		report.Added++
	}

	if report.Added > 0 {
		l.data = next
	}
	return report
}

func (l *Ledger) findModelByName(brand, modelName string) *domain.Model {
	for i := range l.data.Models {
		if sameName(l.data.Models[i].Brand, brand) && sameName(l.data.Models[i].ModelName, modelName) {
			return &l.data.Models[i]
		}
	}
	return nil
}

func (l *Ledger) findModelByID(id string) *domain.Model {
	for i := range l.data.Models {
		if l.data.Models[i].ID == id {
			return &l.data.Models[i]
		}
	}
	return nil
}
