// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/homeledger/backend/internal/application/adapter"
)

// bcryptCost is the cost factor for PIN hashing. PINs are short, so the
// cost leans high to slow offline guessing.
const bcryptCost = 12

// pinService implements the adapter.PinService interface with bcrypt.
type pinService struct{}

// NewPinService creates a new pin service instance.
func NewPinService() adapter.PinService {
	return &pinService{}
}

// Hash returns a one-way hash of the PIN.
func (s *pinService) Hash(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare returns nil when the PIN matches the hash.
func (s *pinService) Compare(hash, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
}
