// internal/pkg/session/manager.go
package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
)

// Claims represents the session token claims
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the anonymous storefront session tokens that
// key each shopper's cart. Sessions carry no identity, only the cart key.
type Manager struct {
	config *config.Config
}

// NewManager creates a new session manager
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config: cfg,
	}
}

// Issue mints a fresh session id and its signed token
func (m *Manager) Issue() (string, string, error) {
	sessionID := uuid.New().String()

	token, err := m.sign(sessionID)
	if err != nil {
		return "", "", err
	}

	return sessionID, token, nil
}

// Verify parses a session token and returns the session id it carries
func (m *Manager) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.Session.Secret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", fmt.Errorf("invalid session token claims")
	}

	return claims.SessionID, nil
}

func (m *Manager) sign(sessionID string) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.Session.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.config.App.Name,
			Subject:   "session:" + sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.config.Session.Secret))
}
