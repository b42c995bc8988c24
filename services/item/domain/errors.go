package domain

import "errors"

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemTitle indicates the item title violates domain constraints.
	ErrInvalidItemTitle = errors.New("invalid item title")
)
