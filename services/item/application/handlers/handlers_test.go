package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/snipbase/pkg/auth"
	"github.com/ghuser/snipbase/pkg/config"
	"github.com/ghuser/snipbase/pkg/logger"
	appsvcs "github.com/ghuser/snipbase/services/item/application/services"
	itemdomain "github.com/ghuser/snipbase/services/item/domain"
	"github.com/ghuser/snipbase/services/item/domain/models"
)

// fakeItemRepo is an in-memory ItemRepository for handler tests.
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

// newTestRouter mounts the item routes with the token middleware, mirroring the
// production route layout, and returns a valid token for an arbitrary user.
func newTestRouter(t *testing.T) (*chi.Mux, string, *fakeItemRepo) {
	t.Helper()
	repo := newFakeItemRepo()
	svcs := &appsvcs.Services{Item: appsvcs.NewItemService(repo)}
	log := logger.New(&config.Config{LogLevel: "error"})
	tokens := auth.NewTokenService([]byte("test-token-secret-must-be-32-by!"), time.Hour)

	token, err := tokens.Sign(uuid.New())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	r := chi.NewRouter()
	r.Route("/items", func(r chi.Router) {
		r.Use(auth.RequireToken(tokens, log))
		r.Get("/", NewGetItemsHandler(svcs, log).Execute)
		r.Post("/", NewPostItemHandler(svcs, log).Execute)
		r.Delete("/{id}", NewDeleteItemHandler(svcs, log).Execute)
	})
	return r, token, repo
}

func doAuthed(router *chi.Mux, token, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, http.NoBody)
	}
	if token != "" {
		r.Header.Set(auth.TokenHeader, token)
	}
	router.ServeHTTP(w, r)
	return w
}

func TestItemRoutes_RequireToken(t *testing.T) {
	router, _, _ := newTestRouter(t)

	t.Run("missing token returns 401", func(t *testing.T) {
		for _, req := range []struct{ method, path, body string }{
			{http.MethodGet, "/items", ""},
			{http.MethodPost, "/items", `{"title":"x"}`},
			{http.MethodDelete, "/items/" + uuid.NewString(), ""},
		} {
			w := doAuthed(router, "", req.method, req.path, req.body)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s %s: expected 401, got %d", req.method, req.path, w.Code)
			}
		}
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		w := doAuthed(router, "garbage", http.MethodGet, "/items", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPostItem(t *testing.T) {
	t.Run("creates an item", func(t *testing.T) {
		router, token, repo := newTestRouter(t)
		w := doAuthed(router, token, http.MethodPost, "/items", `{"title":"review backlog"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp ItemResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Title != "review backlog" {
			t.Fatalf("unexpected title: %q", resp.Title)
		}
		stored, ok := repo.items[resp.ID]
		if !ok {
			t.Fatal("expected item persisted")
		}
		if stored.CreatedBy == uuid.Nil {
			t.Fatal("expected CreatedBy recorded from token subject")
		}
	})

	t.Run("missing title returns 400", func(t *testing.T) {
		router, token, _ := newTestRouter(t)
		w := doAuthed(router, token, http.MethodPost, "/items", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGetItems(t *testing.T) {
	router, token, _ := newTestRouter(t)
	for i := 0; i < 4; i++ {
		w := doAuthed(router, token, http.MethodPost, "/items", fmt.Sprintf(`{"title":"item-%d"}`, i))
		if w.Code != http.StatusCreated {
			t.Fatalf("create %d: expected 201, got %d", i, w.Code)
		}
	}

	w := doAuthed(router, token, http.MethodGet, "/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []ItemResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp) != 4 {
		t.Fatalf("expected 4 items, got %d", len(resp))
	}
	for i := 1; i < len(resp); i++ {
		if resp[i].CreatedAt.After(resp[i-1].CreatedAt) {
			t.Fatalf("item %d newer than item %d", i, i-1)
		}
	}
}

func TestDeleteItem(t *testing.T) {
	router, token, _ := newTestRouter(t)
	w := doAuthed(router, token, http.MethodPost, "/items", `{"title":"doomed"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created ItemResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	t.Run("deletes the item", func(t *testing.T) {
		w := doAuthed(router, token, http.MethodDelete, "/items/"+created.ID.String(), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "item deleted" {
			t.Fatalf("unexpected message: %q", body["message"])
		}
	})

	t.Run("deleting twice returns 404", func(t *testing.T) {
		w := doAuthed(router, token, http.MethodDelete, "/items/"+created.ID.String(), "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("malformed id returns 404", func(t *testing.T) {
		w := doAuthed(router, token, http.MethodDelete, "/items/not-a-uuid", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("another user's token may delete", func(t *testing.T) {
		router, token, repo := newTestRouter(t)
		w := doAuthed(router, token, http.MethodPost, "/items", `{"title":"shared"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("create: expected 201, got %d", w.Code)
		}
		var item ItemResponse
		_ = json.Unmarshal(w.Body.Bytes(), &item)

		otherTokens := auth.NewTokenService([]byte("test-token-secret-must-be-32-by!"), time.Hour)
		otherToken, err := otherTokens.Sign(uuid.New())
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		w = doAuthed(router, otherToken, http.MethodDelete, "/items/"+item.ID.String(), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if _, ok := repo.items[item.ID]; ok {
			t.Fatal("expected item removed")
		}
	})
}
