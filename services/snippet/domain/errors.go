package domain

import "errors"

// Sentinel errors for the snippet domain. Use errors.Is() to check these.
var (
	// ErrSnippetNotFound indicates the requested snippet does not exist.
	// Malformed snippet ids surface as this same error: the service does not
	// distinguish "bad id" from "no row" (both are a 404 to the client).
	ErrSnippetNotFound = errors.New("snippet not found")

	// ErrInvalidSnippet indicates a field violates domain constraints.
	ErrInvalidSnippet = errors.New("invalid snippet")
)
