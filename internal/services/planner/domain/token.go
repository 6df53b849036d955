package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenIssuer identifies tokens minted by the planner service.
const tokenIssuer = "aisle-planner"

// ErrInvalidToken indicates a session token failed signature or claim checks.
var ErrInvalidToken = errors.New("invalid session token")

// TokenSigner mints and verifies the signed session tokens handed to the
// dashboard. The token carries the session ID; the server-side session
// record remains authoritative for expiry and revocation.
type TokenSigner struct {
	secret []byte
	clock  func() time.Time
}

// NewTokenSigner builds a TokenSigner from a shared HMAC secret.
func NewTokenSigner(secret []byte) (*TokenSigner, error) {
	if len(secret) == 0 {
		return nil, errors.New("token secret is required")
	}
	return &TokenSigner{secret: secret, clock: time.Now}, nil
}

// Sign mints a token for the session.
func (t *TokenSigner) Sign(session Session) (string, error) {
	if t == nil {
		return "", errors.New("token signer is not configured")
	}
	if strings.TrimSpace(session.ID) == "" {
		return "", errors.New("session id is required")
	}
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   session.UserID,
		ID:        session.ID,
		IssuedAt:  jwt.NewNumericDate(t.clock().UTC()),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt.UTC()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// SessionID verifies a token and extracts the embedded session ID.
func (t *TokenSigner) SessionID(raw string) (string, error) {
	if t == nil {
		return "", errors.New("token signer is not configured")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidToken
	}
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(t.clock))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	sessionID := strings.TrimSpace(claims.ID)
	if sessionID == "" {
		return "", ErrInvalidToken
	}
	return sessionID, nil
}
