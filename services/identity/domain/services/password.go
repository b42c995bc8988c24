// Package services contains stateless domain services for the identity
// bounded context. Password hashing lives here: these two functions are the
// only place raw passwords are touched. They are never logged or persisted.
package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the minimum accepted raw password length.
const MinPasswordLength = 6

// HashPassword hashes a raw password with bcrypt at the given cost.
// bcrypt salts internally, so equal passwords yield distinct hashes.
func HashPassword(password string, cost int) (string, error) {
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether password matches the stored bcrypt hash.
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
