// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/homeledger/backend/internal/application/adapter"
	domainerror "github.com/homeledger/backend/internal/domain/error"
)

// ledgerClaims are the custom claims carried by a session token.
type ledgerClaims struct {
	User string `json:"user"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface with signed
// HS256 JWTs. Tokens are stateless; there is no revocation list.
type tokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, expiry time.Duration) adapter.TokenService {
	return &tokenService{secret: []byte(secret), expiry: expiry}
}

// IssueToken creates a signed access token for the given ledger user.
func (s *tokenService) IssueToken(user string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.expiry)

	claims := ledgerClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Subject:   user,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// ValidateToken verifies a token and returns the user it was issued to.
func (s *tokenService) ValidateToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &ledgerClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired token",
			fmt.Errorf("%w: %s", domainerror.ErrInvalidToken, err),
		)
	}

	claims, ok := parsed.Claims.(*ledgerClaims)
	if !ok || !parsed.Valid || claims.User == "" {
		return "", domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}
	return claims.User, nil
}
