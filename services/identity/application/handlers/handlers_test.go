package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/ghuser/snipbase/pkg/auth"
	"github.com/ghuser/snipbase/pkg/config"
	"github.com/ghuser/snipbase/pkg/logger"
	appsvcs "github.com/ghuser/snipbase/services/identity/application/services"
	identitydomain "github.com/ghuser/snipbase/services/identity/domain"
	"github.com/ghuser/snipbase/services/identity/domain/models"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	users map[models.Email]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[models.Email]*models.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, u *models.User) error {
	if _, ok := r.users[u.Email]; ok {
		return fmt.Errorf("save: %w", identitydomain.ErrUserAlreadyExists)
	}
	cp := *u
	r.users[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email models.Email) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, fmt.Errorf("get: %w", identitydomain.ErrInvalidCredentials)
	}
	cp := *u
	return &cp, nil
}

func newTestRouter() (*chi.Mux, *auth.TokenService) {
	tokens := auth.NewTokenService([]byte("test-token-secret-must-be-32-by!"), time.Hour)
	svcs := &appsvcs.Services{
		Identity: appsvcs.NewIdentityService(newFakeUserRepo(), tokens, bcrypt.MinCost),
	}
	log := logger.New(&config.Config{LogLevel: "error"})

	r := chi.NewRouter()
	r.Post("/register", NewPostRegisterHandler(svcs, log).Execute)
	r.Post("/login", NewPostLoginHandler(svcs, log).Execute)
	return r, tokens
}

func doJSON(router *chi.Mux, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	r.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, r)
	return w
}

func TestPostRegister(t *testing.T) {
	t.Run("creates a user", func(t *testing.T) {
		router, _ := newTestRouter()
		w := doJSON(router, http.MethodPost, "/register", `{"email":"Alice@Example.com","password":"secret123"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp RegisterResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Email != "alice@example.com" {
			t.Fatalf("expected normalized email, got %q", resp.Email)
		}
	})

	t.Run("response never contains the password or hash", func(t *testing.T) {
		router, _ := newTestRouter()
		w := doJSON(router, http.MethodPost, "/register", `{"email":"alice@example.com","password":"secret123"}`)
		if bytes.Contains(w.Body.Bytes(), []byte("secret123")) ||
			bytes.Contains(w.Body.Bytes(), []byte("password")) {
			t.Fatalf("response leaks credentials: %s", w.Body.String())
		}
	})

	t.Run("malformed email returns 400", func(t *testing.T) {
		router, _ := newTestRouter()
		w := doJSON(router, http.MethodPost, "/register", `{"email":"not-an-email","password":"secret123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("short password returns 400", func(t *testing.T) {
		router, _ := newTestRouter()
		w := doJSON(router, http.MethodPost, "/register", `{"email":"alice@example.com","password":"12345"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate email returns 400", func(t *testing.T) {
		router, _ := newTestRouter()
		if w := doJSON(router, http.MethodPost, "/register", `{"email":"alice@example.com","password":"secret123"}`); w.Code != http.StatusCreated {
			t.Fatalf("first register: expected 201, got %d", w.Code)
		}
		w := doJSON(router, http.MethodPost, "/register", `{"email":"alice@example.com","password":"another-secret"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPostLogin(t *testing.T) {
	register := func(t *testing.T, router *chi.Mux) {
		t.Helper()
		if w := doJSON(router, http.MethodPost, "/register", `{"email":"alice@example.com","password":"secret123"}`); w.Code != http.StatusCreated {
			t.Fatalf("register: expected 201, got %d", w.Code)
		}
	}

	t.Run("returns a verifiable token", func(t *testing.T) {
		router, tokens := newTestRouter()
		register(t, router)
		w := doJSON(router, http.MethodPost, "/login", `{"email":"alice@example.com","password":"secret123"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Token == "" {
			t.Fatal("expected non-empty token")
		}
		if _, err := tokens.Verify(resp.Token); err != nil {
			t.Fatalf("token does not verify: %v", err)
		}
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		router, _ := newTestRouter()
		register(t, router)
		w := doJSON(router, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"secret123"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		router, _ := newTestRouter()
		register(t, router)
		w := doJSON(router, http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong-password"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown email and wrong password produce identical responses", func(t *testing.T) {
		router, _ := newTestRouter()
		register(t, router)
		wUnknown := doJSON(router, http.MethodPost, "/login", `{"email":"nobody@example.com","password":"secret123"}`)
		wWrong := doJSON(router, http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong-password"}`)
		if wUnknown.Code != wWrong.Code {
			t.Fatalf("status codes differ: %d vs %d", wUnknown.Code, wWrong.Code)
		}
		if wUnknown.Body.String() != wWrong.Body.String() {
			t.Fatalf("bodies differ: %s vs %s", wUnknown.Body.String(), wWrong.Body.String())
		}
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		router, _ := newTestRouter()
		w := doJSON(router, http.MethodPost, "/login", `{"email":"alice@example.com"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
