// Package services contains stateless domain services for the snippet bounded
// context. They enforce business rules that operate purely on domain types.
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ghuser/snipbase/services/snippet/domain/models"
)

const (
	maxTitleLength = 255
	maxTagLength   = 64
	maxTagCount    = 32
)

// ValidateSnippet performs cross-field validation on a fully-constructed
// Snippet aggregate before it is persisted or updated.
//
// Business rules:
//   - Title, language, and code are required and non-blank
//   - Title must not exceed 255 characters
//   - Tags must be non-blank and at most 64 characters, 32 tags max
func ValidateSnippet(s *models.Snippet) error {
	if s == nil {
		return fmt.Errorf("snippet cannot be nil")
	}
	if s.ID == uuid.Nil {
		return fmt.Errorf("id must be set")
	}
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if len(s.Title) > maxTitleLength {
		return fmt.Errorf("title must not exceed %d characters", maxTitleLength)
	}
	if s.Language.String() == "" {
		return fmt.Errorf("language is required")
	}
	if strings.TrimSpace(s.Code) == "" {
		return fmt.Errorf("code is required")
	}
	if len(s.Tags) > maxTagCount {
		return fmt.Errorf("at most %d tags allowed", maxTagCount)
	}
	for _, tag := range s.Tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags must not be blank")
		}
		if len(tag) > maxTagLength {
			return fmt.Errorf("tag %q exceeds %d characters", tag, maxTagLength)
		}
	}
	return nil
}
