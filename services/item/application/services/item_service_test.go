package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/google/uuid"

	itemdomain "github.com/ghuser/snipbase/services/item/domain"
	"github.com/ghuser/snipbase/services/item/domain/models"
)

// fakeItemRepo is an in-memory ItemRepository for service tests.
type fakeItemRepo struct {
	items map[uuid.UUID]*models.Item
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*models.Item)}
}

func (r *fakeItemRepo) Save(_ context.Context, item *models.Item) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeItemRepo) FindAll(_ context.Context) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("delete: %w", itemdomain.ErrItemNotFound)
	}
	delete(r.items, id)
	return nil
}

func TestItemService_Create(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("persists a valid item", func(t *testing.T) {
		item, err := svc.Create(ctx, "groceries", userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CreatedBy != userID {
			t.Fatalf("expected CreatedBy %v, got %v", userID, item.CreatedBy)
		}
		if _, ok := repo.items[item.ID]; !ok {
			t.Fatal("expected item persisted in repository")
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		_, err := svc.Create(ctx, "  ", userID)
		if !errors.Is(err, itemdomain.ErrInvalidItemTitle) {
			t.Fatalf("expected ErrInvalidItemTitle, got %v", err)
		}
	})
}

func TestItemService_List(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo)
	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, fmt.Sprintf("item-%d", i), userID); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	got, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 items, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.After(got[i-1].CreatedAt) {
			t.Fatalf("item %d newer than item %d", i, i-1)
		}
	}
}

func TestItemService_Delete(t *testing.T) {
	repo := newFakeItemRepo()
	svc := NewItemService(repo)
	ctx := context.Background()

	item, err := svc.Create(ctx, "groceries", uuid.New())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("removes the item", func(t *testing.T) {
		if err := svc.Delete(ctx, item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.items[item.ID]; ok {
			t.Fatal("expected item removed from repository")
		}
	})

	t.Run("deleting twice returns ErrItemNotFound", func(t *testing.T) {
		if err := svc.Delete(ctx, item.ID); !errors.Is(err, itemdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
