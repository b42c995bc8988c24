package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/snipbase/pkg/cache"
	snippetdomain "github.com/ghuser/snipbase/services/snippet/domain"
	"github.com/ghuser/snipbase/services/snippet/domain/models"
	"github.com/ghuser/snipbase/services/snippet/domain/repositories"
	domainsvcs "github.com/ghuser/snipbase/services/snippet/domain/services"
)

// DefaultListLimit bounds list queries when the caller does not supply a limit.
const DefaultListLimit = 10

// CreateParams carries the fields for a new snippet.
type CreateParams struct {
	Title       string
	Language    string
	Code        string
	Description string
	Tags        []string
}

// UpdateParams carries a partial snippet update. Nil fields are left unchanged;
// the merged result is fully re-validated before persisting.
type UpdateParams struct {
	Title       *string
	Language    *string
	Code        *string
	Description *string
	Tags        *[]string
}

// SnippetService orchestrates creation and retrieval of Snippets.
// Event publishing is handled by the repository layer (transactional outbox).
// Single-record reads are served from Redis cache when available.
type SnippetService struct {
	repo  repositories.SnippetRepository
	cache *pkgcache.SnippetCache
}

// NewSnippetService returns a SnippetService wired with the given repository
// and cache. cache may be nil (reads then always hit the repository).
func NewSnippetService(repo repositories.SnippetRepository, cache *pkgcache.SnippetCache) *SnippetService {
	return &SnippetService{repo: repo, cache: cache}
}

// Create validates and persists a Snippet. The repository publishes
// SnippetCreatedEvent in the same transaction.
func (s *SnippetService) Create(ctx context.Context, p CreateParams) (*models.Snippet, error) {
	language, err := models.NewLanguage(p.Language)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", snippetdomain.ErrInvalidSnippet, err)
	}

	snippet, err := models.NewSnippet(p.Title, language, p.Code, p.Description, p.Tags)
	if err != nil {
		return nil, fmt.Errorf("create snippet: %w", err)
	}

	if err := domainsvcs.ValidateSnippet(snippet); err != nil {
		return nil, fmt.Errorf("%w: %w", snippetdomain.ErrInvalidSnippet, err)
	}

	if err := s.repo.Save(ctx, snippet); err != nil {
		return nil, fmt.Errorf("save snippet: %w", err)
	}

	return snippet, nil
}

// GetByID retrieves a Snippet using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *SnippetService) GetByID(ctx context.Context, id uuid.UUID) (*models.Snippet, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Snippet{
				ID:          cached.ID,
				Title:       cached.Title,
				Language:    models.Language(cached.Language),
				Code:        cached.Code,
				Description: cached.Description,
				Tags:        cached.Tags,
				CreatedAt:   cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache unavailable; fall through to Postgres.
			_ = err
		}
	}

	snippet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get snippet: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), toCached(snippet))
		}()
	}

	return snippet, nil
}

// List returns snippets newest first, optionally filtered by language
// (case-insensitive) and truncated to limit. A non-positive limit falls back
// to DefaultListLimit. An empty result is a valid empty slice, not an error.
func (s *SnippetService) List(ctx context.Context, language string, limit int) ([]*models.Snippet, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	var filter repositories.Filter
	filter.Limit = limit
	if language != "" {
		lang, err := models.NewLanguage(language)
		if err != nil {
			// An unusable filter value matches nothing.
			return []*models.Snippet{}, nil
		}
		filter.Language = lang
	}

	snippets, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list snippets: %w", err)
	}
	return snippets, nil
}

// Update applies a partial update to an existing snippet. The merged record is
// re-validated in full; validation failure leaves the stored record unchanged.
func (s *SnippetService) Update(ctx context.Context, id uuid.UUID, p UpdateParams) (*models.Snippet, error) {
	snippet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get snippet: %w", err)
	}

	if p.Title != nil {
		snippet.Title = *p.Title
	}
	if p.Language != nil {
		language, err := models.NewLanguage(*p.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", snippetdomain.ErrInvalidSnippet, err)
		}
		snippet.Language = language
	}
	if p.Code != nil {
		snippet.Code = *p.Code
	}
	if p.Description != nil {
		snippet.Description = *p.Description
	}
	if p.Tags != nil {
		tags := *p.Tags
		if tags == nil {
			tags = []string{}
		}
		snippet.Tags = tags
	}

	if err := domainsvcs.ValidateSnippet(snippet); err != nil {
		return nil, fmt.Errorf("%w: %w", snippetdomain.ErrInvalidSnippet, err)
	}

	if err := s.repo.Update(ctx, snippet); err != nil {
		return nil, fmt.Errorf("update snippet: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}

	return snippet, nil
}

// Delete removes a snippet by ID. Returns ErrSnippetNotFound if absent.
func (s *SnippetService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete snippet: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}

func toCached(s *models.Snippet) *pkgcache.CachedSnippet {
	return &pkgcache.CachedSnippet{
		ID:          s.ID,
		Title:       s.Title,
		Language:    s.Language.String(),
		Code:        s.Code,
		Description: s.Description,
		Tags:        s.Tags,
		CreatedAt:   s.CreatedAt,
	}
}
