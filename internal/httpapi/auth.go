package httpapi

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mobipos/backend/internal/domain"
	"mobipos/backend/internal/store"
)

// AccountStore is the credential persistence the auth collaborator needs.
type AccountStore interface {
	CreateAccount(ctx context.Context, account domain.Account) error
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

// AuthManager issues and validates bearer tokens for shop accounts. Beyond
// the JWT expiry it tracks per-session activity: a session idle longer than
// the configured window is forcibly logged out. That timer is a liveness
// control only and has no bearing on the data model.
type AuthManager struct {
	mu          sync.Mutex
	secret      []byte
	tokenTTL    time.Duration
	idleTimeout time.Duration
	accounts    AccountStore
	lastSeen    map[string]time.Time
	revoked     map[string]time.Time
}

type shopClaims struct {
	jwtlib.RegisteredClaims
}

func NewAuthManager(secret string, tokenTTL time.Duration, idleTimeout time.Duration, accounts AccountStore) *AuthManager {
	if secret == "" {
		secret = "dev-change-me"
	}
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	if idleTimeout <= 0 {
		idleTimeout = 30 * time.Minute
	}
	return &AuthManager{
		secret:      []byte(secret),
		tokenTTL:    tokenTTL,
		idleTimeout: idleTimeout,
		accounts:    accounts,
		lastSeen:    make(map[string]time.Time),
		revoked:     make(map[string]time.Time),
	}
}

func (a *AuthManager) Register(ctx context.Context, req domain.RegisterRequest) (domain.LoginResponse, error) {
	accountID := strings.ToLower(strings.TrimSpace(req.AccountID))
	if accountID == "" || len(accountID) < 4 {
		return domain.LoginResponse{}, errors.New("account id must be at least 4 characters")
	}
	if strings.ContainsAny(accountID, " \t\r\n") {
		return domain.LoginResponse{}, errors.New("account id must not contain spaces")
	}
	if len(strings.TrimSpace(req.Password)) < 6 {
		return domain.LoginResponse{}, errors.New("password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.LoginResponse{}, errors.New("failed to hash password")
	}

	err = a.accounts.CreateAccount(ctx, domain.Account{
		ID:           accountID,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, store.ErrAccountExists) {
		return domain.LoginResponse{}, errors.New("account already exists")
	}
	if err != nil {
		return domain.LoginResponse{}, err
	}

	return a.issue(accountID)
}

func (a *AuthManager) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	accountID := strings.ToLower(strings.TrimSpace(req.AccountID))
	account, err := a.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return domain.LoginResponse{}, errors.New("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return domain.LoginResponse{}, errors.New("invalid credentials")
	}
	return a.issue(accountID)
}

// Logout revokes the session immediately; the token is refused from then on
// even though its JWT expiry has not passed.
func (a *AuthManager) Logout(tokenStr string) {
	claims := &shopClaims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, a.keyFunc, jwtlib.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid || claims.ID == "" {
		return
	}

	expiry := time.Now().UTC().Add(a.tokenTTL)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.lastSeen, claims.ID)
	a.revoked[claims.ID] = expiry
}

// Authenticate validates the token, enforces the idle window and resets it.
func (a *AuthManager) Authenticate(tokenStr string) (domain.Actor, error) {
	claims := &shopClaims{}
	token, err := jwtlib.ParseWithClaims(tokenStr, claims, a.keyFunc, jwtlib.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return domain.Actor{}, errors.New("invalid or expired token")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return domain.Actor{}, errors.New("invalid token subject")
	}
	if claims.ID == "" {
		return domain.Actor{}, errors.New("invalid token id")
	}

	now := time.Now().UTC()

	a.mu.Lock()
	defer a.mu.Unlock()

	a.pruneRevoked(now)
	if _, gone := a.revoked[claims.ID]; gone {
		return domain.Actor{}, errors.New("session logged out")
	}

	// Sessions unseen since before a restart start a fresh idle window here.
	if last, ok := a.lastSeen[claims.ID]; ok && now.Sub(last) > a.idleTimeout {
		delete(a.lastSeen, claims.ID)
		a.revoked[claims.ID] = now.Add(a.tokenTTL)
		return domain.Actor{}, errors.New("session expired due to inactivity")
	}
	a.lastSeen[claims.ID] = now

	return domain.Actor{AccountID: sub}, nil
}

func (a *AuthManager) issue(accountID string) (domain.LoginResponse, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(a.tokenTTL)
	jti := uuid.NewString()

	claims := shopClaims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:        jti,
			Subject:   accountID,
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			Issuer:    "mobipos",
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	a.mu.Lock()
	a.lastSeen[jti] = now
	a.mu.Unlock()

	return domain.LoginResponse{
		AccessToken: token,
		AccountID:   accountID,
		ExpiresAt:   expiresAt.Format(time.RFC3339),
	}, nil
}

func (a *AuthManager) keyFunc(t *jwtlib.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}
	return a.secret, nil
}

func (a *AuthManager) pruneRevoked(now time.Time) {
	for jti, expiry := range a.revoked {
		if now.After(expiry) {
			delete(a.revoked, jti)
		}
	}
}
