package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxItemTitleLength = 255

// Item is a minimal auxiliary record: a title plus audit metadata.
// CreatedBy records which user created it but is not an authorization scope —
// any authenticated user may list or delete any item.
type Item struct {
	ID        uuid.UUID
	Title     string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}

// NewItem constructs a valid Item with generated ID and current timestamp.
func NewItem(title string, createdBy uuid.UUID) (*Item, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxItemTitleLength {
		return nil, fmt.Errorf("title must not exceed %d characters", maxItemTitleLength)
	}
	return &Item{
		ID:        uuid.New(),
		Title:     title,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}, nil
}
