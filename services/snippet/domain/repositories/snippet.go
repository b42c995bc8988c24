package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/snipbase/services/snippet/domain/models"
)

// Filter narrows and bounds list queries.
type Filter struct {
	Language models.Language // zero value means no language filter
	Limit    int             // maximum number of records to return
}

// SnippetRepository is the persistence interface for the Snippet aggregate.
// The domain layer owns this interface; infrastructure implements it.
type SnippetRepository interface {
	Save(ctx context.Context, snippet *models.Snippet) error

	// GetByID returns ErrSnippetNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Snippet, error)

	// Find returns snippets matching the filter, newest first.
	Find(ctx context.Context, f Filter) ([]*models.Snippet, error)

	// Update persists changes to an existing Snippet.
	// Returns ErrSnippetNotFound when no row matches.
	Update(ctx context.Context, snippet *models.Snippet) error

	// Delete removes a snippet by ID.
	// Returns ErrSnippetNotFound when no row matches.
	Delete(ctx context.Context, id uuid.UUID) error
}
