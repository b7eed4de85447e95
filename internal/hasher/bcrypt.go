// Package hasher provides salted password hashing backed by bcrypt.
package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/userauth-server/internal/model"
)

// cost balances brute-force resistance against login latency.
const cost = 12

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher using bcrypt with a fixed cost.
type Bcrypt struct{}

// NewBcrypt creates a new Bcrypt hasher.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

// Hash produces a salted bcrypt hash of the password.
func (h *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Compare checks the password against a stored hash. It returns an
// error when the password does not match.
func (h *Bcrypt) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
