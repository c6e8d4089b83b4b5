package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/lovematch/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager provides logic for session JWT generation and parsing.
type TokenManager interface {
	NewJWT(email string, role string) (string, time.Duration, error)
	Parse(token string) (*SessionClaims, error)
}

// SessionClaims is the payload carried by the session cookie. Presence and
// validity of these claims is the sole authorization check for protected
// routes; there is no server-side session store.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type Manager struct {
	signingKey string
	sessionTTL time.Duration
}

func NewManager(cfg config.JWTConfig) (*Manager, error) {
	if cfg.SigningKey == "" {
		return nil, errors.New("empty signing key")
	}

	if cfg.SessionTTL == 0 {
		return nil, errors.New("empty session ttl")
	}

	return &Manager{
		signingKey: cfg.SigningKey,
		sessionTTL: cfg.SessionTTL,
	}, nil
}

func (m *Manager) NewJWT(email string, role string) (string, time.Duration, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	})

	signed, err := token.SignedString([]byte(m.signingKey))
	if err != nil {
		return "", 0, fmt.Errorf("sign jwt failed: %w", err)
	}

	return signed, m.sessionTTL, nil
}

func (m *Manager) Parse(sessionToken string) (*SessionClaims, error) {
	var claims SessionClaims

	token, err := jwt.ParseWithClaims(sessionToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(m.signingKey), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return &claims, nil
}
