package models

import (
	"fmt"
	"strings"
)

// Language is a value object for a snippet's programming language.
// Construction normalizes to lowercase, so stored and filtered values always
// compare case-insensitively by plain equality.
type Language string

const maxLanguageLength = 64

// NewLanguage constructs a Language, trimming whitespace and lowercasing.
func NewLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("language must not be empty")
	}
	if len(s) > maxLanguageLength {
		return "", fmt.Errorf("language must not exceed %d characters", maxLanguageLength)
	}
	return Language(s), nil
}

// String returns the underlying lowercase string value.
func (l Language) String() string {
	return string(l)
}
