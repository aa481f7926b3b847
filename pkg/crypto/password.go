package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
)

var bcryptGenerateFromPassword = bcrypt.GenerateFromPassword

// HashSecret hashes a password or PIN using bcrypt
func HashSecret(secret string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(secret), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(bytes), nil
}

// CheckSecret compares a password or PIN with a hash
func CheckSecret(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}
