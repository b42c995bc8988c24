package domain

import "errors"

// Sentinel errors for the identity domain. Use errors.Is() to check these.
var (
	// ErrUserAlreadyExists indicates a registration attempt with a taken email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password —
	// intentionally indistinguishable so responses do not leak which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidEmail indicates the email violates domain constraints.
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPassword indicates the raw password violates domain constraints.
	ErrInvalidPassword = errors.New("invalid password")
)
