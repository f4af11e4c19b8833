package auth

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/blake2b"
)

// DefaultBcryptCost is used when no cost is configured
const DefaultBcryptCost = 10

// HashPassword returns the bcrypt hash of password at the given cost
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CredentialStamp fingerprints a password hash for embedding in sessions.
// It changes whenever the password is reset.
func CredentialStamp(hash string) string {
	if hash == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(hash))
	return hex.EncodeToString(sum[:8])
}
