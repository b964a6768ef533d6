package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"mobipos/backend/internal/docgen"
	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	var req domain.RegisterRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := a.auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	if err := a.service.InitAccount(r.Context(), resp.AccountID, req.ShopName); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	if !a.loginLimiter.Allow(clientKey(r)) {
		writeError(w, http.StatusTooManyRequests, errors.New("too many login attempts, try again later"))
		return
	}
	var req domain.LoginRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp, err := a.auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	if token := bearerToken(r); token != "" {
		a.auth.Logout(token)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleShop(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		shop, err := a.service.Shop(r.Context())
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, shop)
	case http.MethodPut:
		var shop domain.Shop
		if err := a.decodeAndValidate(r, &shop); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		updated, err := a.service.UpdateShop(r.Context(), shop)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleModels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		models, err := a.service.Models(r.Context())
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models)
	case http.MethodPost:
		var req domain.ModelCreateRequest
		if err := a.decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		model, err := a.service.AddModel(r.Context(), req)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, model)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleModelActions(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/v1/models/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req domain.ModelUpdateRequest
		if err := a.decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		model, err := a.service.UpdateModel(r.Context(), id, req)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, model)
	case http.MethodDelete:
		if err := a.service.DeleteModel(r.Context(), id); err != nil {
			writeLedgerError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleModelImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("missing file upload"))
		return
	}
	defer file.Close()

	rows, err := xlsx.ParseCatalog(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, err := a.service.ImportModels(r.Context(), rows)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (a *API) handleModelExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	models, err := a.service.Models(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	f, err := xlsx.WriteCatalog(models)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="models.xlsx"`)
	if err := f.Write(w); err != nil {
		a.log.WithError(err).Warn("stream catalog export")
	}
}

func (a *API) handleSerialCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	var req domain.SerialCheckRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	partition, err := a.service.CheckSerials(r.Context(), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, partition)
}

func (a *API) handlePurchases(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		purchases, err := a.service.Purchases(r.Context())
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, purchases)
	case http.MethodPost:
		var req domain.PurchaseCommitRequest
		if err := a.decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		purchase, err := a.service.CommitPurchase(r.Context(), req)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, purchase)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handlePurchaseActions(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/purchases/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	if sub == "document" {
		a.handlePurchaseDocument(w, r, id)
		return
	}
	if sub != "" {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		purchase, err := a.service.PurchaseByID(r.Context(), id)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, purchase)
	case http.MethodPatch:
		var req domain.PurchaseUpdateRequest
		if err := a.decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		purchase, err := a.service.UpdatePurchase(r.Context(), id, req)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, purchase)
	case http.MethodDelete:
		if err := a.service.DeletePurchase(r.Context(), id); err != nil {
			writeLedgerError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handlePurchaseDocument(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	purchase, err := a.service.PurchaseByID(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	shop, err := a.service.Shop(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docgen.PurchaseDocument(shop, purchase))
}

func (a *API) handlePurchaseImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("missing file upload"))
		return
	}
	defer file.Close()

	rows, err := xlsx.ParsePurchases(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, err := a.service.ImportPurchases(r.Context(), rows)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (a *API) handleInvoices(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		invoices, err := a.service.Invoices(r.Context())
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, invoices)
	case http.MethodPost:
		var req domain.InvoiceCommitRequest
		if err := a.decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		invoice, err := a.service.CommitInvoice(r.Context(), req)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		status := http.StatusCreated
		if req.ID != "" {
			status = http.StatusOK
		}
		writeJSON(w, status, invoice)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleInvoiceExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	invoices, err := a.service.Invoices(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	f, err := xlsx.WriteInvoices(invoices)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.xlsx"`)
	if err := f.Write(w); err != nil {
		a.log.WithError(err).Warn("stream invoice export")
	}
}

func (a *API) handleCartItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w)
		return
	}
	var req domain.CartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	item, err := a.service.LookupCartItem(r.Context(), req)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *API) handleInvoiceActions(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/v1/invoices/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	if sub == "document" {
		a.handleInvoiceDocument(w, r, id)
		return
	}
	if sub != "" {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		invoice, err := a.service.InvoiceByID(r.Context(), id)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, invoice)
	case http.MethodDelete:
		if err := a.service.DeleteInvoice(r.Context(), id); err != nil {
			writeLedgerError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleInvoiceDocument(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	invoice, err := a.service.InvoiceByID(r.Context(), id)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	shop, err := a.service.Shop(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, docgen.InvoiceDocument(shop, invoice))
}

func (a *API) handleStocks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	stocks, err := a.service.Stocks(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stocks)
}

func (a *API) handleStockExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	stocks, err := a.service.Stocks(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	models, err := a.service.Models(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	f, err := xlsx.WriteStocks(stocks, models)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="stocks.xlsx"`)
	if err := f.Write(w); err != nil {
		a.log.WithError(err).Warn("stream stock export")
	}
}

func (a *API) handleStockActions(w http.ResponseWriter, r *http.Request) {
	serial := strings.TrimPrefix(r.URL.Path, "/api/v1/stocks/")
	if serial == "" || strings.Contains(serial, "/") {
		writeError(w, http.StatusNotFound, errors.New("not found"))
		return
	}

	switch r.Method {
	case http.MethodGet:
		stock, err := a.service.StockByIMEI(r.Context(), serial)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stock)
	case http.MethodPatch:
		var req domain.StockPricingRequest
		if err := a.decodeAndValidate(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		stock, err := a.service.UpdateStockPricing(r.Context(), serial, req)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, stock)
	case http.MethodDelete:
		if err := a.service.DeleteStock(r.Context(), serial); err != nil {
			writeLedgerError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w)
	}
}

func (a *API) handleSuppliers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	suppliers, err := a.service.Suppliers(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suppliers)
}

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	result, err := a.service.Search(r.Context(), query)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) handleStockReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	summary, err := a.service.StockSummary(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *API) handleSalesReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	q := r.URL.Query()
	summary, err := a.service.SalesSummary(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *API) handlePurchaseReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	q := r.URL.Query()
	summary, err := a.service.PurchaseSummary(r.Context(), q.Get("from"), q.Get("to"))
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (a *API) handleRestockReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w)
		return
	}
	suggestions, err := a.service.RestockSuggestions(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}
