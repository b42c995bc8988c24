package models

import (
	"time"

	"github.com/google/uuid"
)

// Snippet is the core aggregate for this bounded context.
type Snippet struct {
	ID          uuid.UUID
	Title       string
	Language    Language
	Code        string
	Description string
	Tags        []string
	CreatedAt   time.Time
}

// NewSnippet constructs a valid Snippet aggregate with generated ID and
// current timestamp. Tags order is preserved; a nil slice is normalized to
// empty so serialization is stable.
func NewSnippet(title string, language Language, code, description string, tags []string) (*Snippet, error) {
	if tags == nil {
		tags = []string{}
	}
	return &Snippet{
		ID:          uuid.New(),
		Title:       title,
		Language:    language,
		Code:        code,
		Description: description,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
