package models

import (
	"fmt"
	"net/mail"
	"strings"
)

// Email is a value object for a user's email address.
// Construction normalizes to lowercase so uniqueness checks in the store
// are case-insensitive by plain equality.
type Email string

// NewEmail validates and normalizes an email address.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("email must not be empty")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return "", fmt.Errorf("malformed email address")
	}
	return Email(s), nil
}

// String returns the underlying lowercase string value.
func (e Email) String() string {
	return string(e)
}
