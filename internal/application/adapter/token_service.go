// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// TokenService issues and validates access tokens for the PIN gate.
type TokenService interface {
	// IssueToken creates a signed access token for the given ledger user.
	IssueToken(user string) (token string, expiresAt time.Time, err error)

	// ValidateToken verifies a token and returns the user it was issued to.
	ValidateToken(token string) (user string, err error)
}

// PinService hashes and verifies PINs.
type PinService interface {
	// Hash returns a one-way hash of the PIN.
	Hash(pin string) (string, error)

	// Compare returns nil when the PIN matches the hash.
	Compare(hash, pin string) error
}
