package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("invalid token")

type TokenConfig struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	Now           func() time.Time
}

// TokenManager is the single issuer and verifier for both token
// kinds. Both secrets come from configuration, loaded once at
// startup.
type TokenManager struct {
	cfg TokenConfig
}

func NewTokenManager(cfg TokenConfig) *TokenManager {
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 20 * time.Minute
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	return &TokenManager{cfg: cfg}
}

// IssueAccess signs a short-lived access token embedding the user id.
func (m *TokenManager) IssueAccess(userID int64) (string, error) {
	now := m.cfg.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.AccessTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.cfg.AccessSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

// IssueRefresh signs a refresh token embedding the user id. No
// expiry claim: validity is bounded by the stored value on the user
// record, not by time.
func (m *TokenManager) IssueRefresh(userID int64) (string, error) {
	now := m.cfg.Now()
	claims := jwt.RegisteredClaims{
		Subject:  strconv.FormatInt(userID, 10),
		IssuedAt: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.cfg.RefreshSecret)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

func (m *TokenManager) VerifyAccess(raw string) (int64, error) {
	return m.verify(raw, m.cfg.AccessSecret)
}

func (m *TokenManager) VerifyRefresh(raw string) (int64, error) {
	return m.verify(raw, m.cfg.RefreshSecret)
}

func (m *TokenManager) verify(raw string, secret []byte) (int64, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.cfg.Now),
	)
	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrTokenInvalid
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenInvalid
	}
	return id, nil
}
