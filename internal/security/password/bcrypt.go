// Package password provides one-way password hashing and verification.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the fixed bcrypt work factor.
const Cost = 10

// Hash returns a bcrypt hash of plain. Each call salts internally, so two
// calls on the same input yield different strings. Fails only on underlying
// entropy/resource errors.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", fmt.Errorf("empty password")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(b), nil
}

// Verify reports whether plain matches hash in constant time. Any mismatch,
// including a malformed stored hash, returns false — never an error, so a
// corrupted record is indistinguishable from a wrong password.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
