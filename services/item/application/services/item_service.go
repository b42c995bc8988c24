package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/snipbase/services/item/domain"
	"github.com/ghuser/snipbase/services/item/domain/models"
	"github.com/ghuser/snipbase/services/item/domain/repositories"
)

// ItemService orchestrates creation, listing, and deletion of Items.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService returns an ItemService wired with the given repository.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// Create validates and persists an Item attributed to createdBy.
func (s *ItemService) Create(ctx context.Context, title string, createdBy uuid.UUID) (*models.Item, error) {
	item, err := models.NewItem(title, createdBy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemTitle, err)
	}
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

// List returns all items, newest first.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// Delete removes an item by ID. Returns ErrItemNotFound if absent.
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
