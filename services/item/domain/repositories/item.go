package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/snipbase/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// Items are created, listed newest first, and deleted; no update exists.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error

	// FindAll returns every item, newest first.
	FindAll(ctx context.Context) ([]*models.Item, error)

	// Delete removes an item by ID. Returns ErrItemNotFound when no row matches.
	Delete(ctx context.Context, id uuid.UUID) error
}
