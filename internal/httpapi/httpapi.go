// Package httpapi exposes the shop ledger over a JSON HTTP API with bearer
// token auth. One authenticated shop account maps to one AppData aggregate.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/ledger"
	"mobipos/backend/internal/service"
	"mobipos/backend/internal/store"
)

type API struct {
	service       *service.Service
	auth          *AuthManager
	allowedOrigin string
	validate      *validator.Validate
	log           *logrus.Logger
	loginLimiter  *attemptLimiter
}

func New(svc *service.Service, auth *AuthManager, allowedOrigin string, log *logrus.Logger) *API {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &API{
		service:       svc,
		auth:          auth,
		allowedOrigin: allowedOrigin,
		validate:      validator.New(),
		log:           log,
		loginLimiter:  newAttemptLimiter(5, time.Minute),
	}
}

func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealth)
	mux.HandleFunc("/api/v1/auth/register", a.handleRegister)
	mux.HandleFunc("/api/v1/auth/login", a.handleLogin)
	mux.HandleFunc("/api/v1/auth/logout", a.handleLogout)

	mux.HandleFunc("/api/v1/shop", a.requireAuth(a.handleShop))

	mux.HandleFunc("/api/v1/models", a.requireAuth(a.handleModels))
	mux.HandleFunc("/api/v1/models/import", a.requireAuth(a.handleModelImport))
	mux.HandleFunc("/api/v1/models/export", a.requireAuth(a.handleModelExport))
	mux.HandleFunc("/api/v1/models/", a.requireAuth(a.handleModelActions))

	mux.HandleFunc("/api/v1/serials/check", a.requireAuth(a.handleSerialCheck))

	mux.HandleFunc("/api/v1/purchases", a.requireAuth(a.handlePurchases))
	mux.HandleFunc("/api/v1/purchases/import", a.requireAuth(a.handlePurchaseImport))
	mux.HandleFunc("/api/v1/purchases/", a.requireAuth(a.handlePurchaseActions))

	mux.HandleFunc("/api/v1/invoices", a.requireAuth(a.handleInvoices))
	mux.HandleFunc("/api/v1/invoices/cart-item", a.requireAuth(a.handleCartItem))
	mux.HandleFunc("/api/v1/invoices/export", a.requireAuth(a.handleInvoiceExport))
	mux.HandleFunc("/api/v1/invoices/", a.requireAuth(a.handleInvoiceActions))

	mux.HandleFunc("/api/v1/stocks", a.requireAuth(a.handleStocks))
	mux.HandleFunc("/api/v1/stocks/export", a.requireAuth(a.handleStockExport))
	mux.HandleFunc("/api/v1/stocks/", a.requireAuth(a.handleStockActions))

	mux.HandleFunc("/api/v1/suppliers", a.requireAuth(a.handleSuppliers))
	mux.HandleFunc("/api/v1/search", a.requireAuth(a.handleSearch))

	mux.HandleFunc("/api/v1/reports/stock", a.requireAuth(a.handleStockReport))
	mux.HandleFunc("/api/v1/reports/sales", a.requireAuth(a.handleSalesReport))
	mux.HandleFunc("/api/v1/reports/purchases", a.requireAuth(a.handlePurchaseReport))
	mux.HandleFunc("/api/v1/reports/restock", a.requireAuth(a.handleRestockReport))

	return a.withMiddleware(mux)
}

func (a *API) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := a.actorFromRequest(r)
		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}
		next(w, r.WithContext(service.WithActor(r.Context(), actor)))
	}
}

func (a *API) actorFromRequest(r *http.Request) (domain.Actor, error) {
	token := bearerToken(r)
	if token == "" {
		return domain.Actor{}, errors.New("missing bearer token")
	}
	return a.auth.Authenticate(token)
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func (a *API) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Access-Control-Allow-Origin", a.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
		w.Header().Set("Vary", "Origin")

		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			if strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "application/json") {
				r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		startedAt := time.Now()
		next.ServeHTTP(w, r)
		a.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(startedAt).String(),
		}).Debug("request")
	})
}

type attemptLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	entries map[string][]time.Time
}

func newAttemptLimiter(max int, window time.Duration) *attemptLimiter {
	if max < 1 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &attemptLimiter{max: max, window: window, entries: make(map[string][]time.Time)}
}

func (l *attemptLimiter) Allow(key string) bool {
	if l == nil {
		return true
	}
	now := time.Now()
	cutoff := now.Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	history := l.entries[key]
	kept := make([]time.Time, 0, len(history)+1)
	for _, ts := range history {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.entries[key] = kept
		return false
	}
	kept = append(kept, now)
	l.entries[key] = kept
	return true
}

func clientKey(r *http.Request) string {
	host := strings.TrimSpace(r.RemoteAddr)
	if host == "" {
		return "unknown"
	}
	if addr, err := netip.ParseAddrPort(host); err == nil {
		return addr.Addr().String()
	}
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		return host[:idx]
	}
	return host
}

// decodeAndValidate unmarshals the body and runs struct-tag validation so
// missing required fields fail before the ledger is touched.
func (a *API) decodeAndValidate(r *http.Request, dest any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	if err := a.validate.Struct(dest); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return err
		}
		return errors.New("validation failed: " + err.Error())
	}
	return nil
}

// writeLedgerError maps the ledger error taxonomy onto HTTP statuses and, for
// duplicate errors, carries the full offending identifier list to the caller.
func writeLedgerError(w http.ResponseWriter, err error) {
	var dup *ledger.DuplicateError
	if errors.As(err, &dup) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":      dup.Error(),
			"duplicates": dup.IDs,
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ledger.ErrAlreadySold), errors.Is(err, ledger.ErrAlreadyInCart):
		status = http.StatusConflict
	}
	writeError(w, status, err)
}

func writeMethodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	// 5xx details stay in the logs; 4xx messages are user-facing.
	msg := err.Error()
	if status >= 500 {
		logrus.WithError(err).Error("internal error")
		msg = "internal server error"
	}
	writeJSON(w, status, map[string]any{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
