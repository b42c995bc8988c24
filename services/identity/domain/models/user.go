package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the persisted auth user record. PasswordHash holds a bcrypt hash;
// the raw password never leaves the login/registration path.
type User struct {
	ID           uuid.UUID
	Email        Email
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser constructs a User with generated ID and current timestamp.
// passwordHash must already be hashed — see services.HashPassword.
func NewUser(email Email, passwordHash string) (*User, error) {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
