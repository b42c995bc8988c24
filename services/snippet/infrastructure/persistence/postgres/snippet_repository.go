package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/snipbase/pkg/database"
	"github.com/ghuser/snipbase/pkg/events"
	snippetdomain "github.com/ghuser/snipbase/services/snippet/domain"
	domainevents "github.com/ghuser/snipbase/services/snippet/domain/events"
	"github.com/ghuser/snipbase/services/snippet/domain/models"
	"github.com/ghuser/snipbase/services/snippet/domain/repositories"
)

// SnippetRepository implements repositories.SnippetRepository against PostgreSQL.
// Tags are stored as a jsonb array so ordering is preserved.
type SnippetRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewSnippetRepository returns a SnippetRepository backed by the given pool and
// event bus. The bus is used to publish SnippetCreatedEvents in the save transaction.
func NewSnippetRepository(db *database.Database, bus *events.EventBus) *SnippetRepository {
	return &SnippetRepository{db: db, bus: bus}
}

// Save persists a new Snippet and publishes a SnippetCreatedEvent within the
// same transaction.
func (r *SnippetRepository) Save(ctx context.Context, snippet *models.Snippet) error {
	tags, err := json.Marshal(snippet.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO snippets (id, title, language, code, description, tags, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			snippet.ID, snippet.Title, snippet.Language.String(), snippet.Code,
			snippet.Description, tags, snippet.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert snippet: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, snippet); err != nil {
				return fmt.Errorf("publish snippet created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Snippet by ID. Returns ErrSnippetNotFound if absent.
func (r *SnippetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Snippet, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT id, title, language, code, description, tags, created_at
		FROM snippets WHERE id = $1`, id)

	snippet, err := scanSnippet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, snippetdomain.ErrSnippetNotFound
		}
		return nil, fmt.Errorf("query snippet: %w", err)
	}
	return snippet, nil
}

// Find returns snippets matching the filter, ordered by created_at descending.
func (r *SnippetRepository) Find(ctx context.Context, f repositories.Filter) ([]*models.Snippet, error) {
	query := `
		SELECT id, title, language, code, description, tags, created_at
		FROM snippets`
	args := []any{}
	if f.Language != "" {
		query += ` WHERE language = $1`
		args = append(args, f.Language.String())
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, f.Limit)

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snippets: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var snippets []*models.Snippet
	for rows.Next() {
		snippet, err := scanSnippet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snippet: %w", err)
		}
		snippets = append(snippets, snippet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snippets: %w", err)
	}
	if snippets == nil {
		snippets = []*models.Snippet{}
	}
	return snippets, nil
}

// Update persists changes to an existing Snippet.
func (r *SnippetRepository) Update(ctx context.Context, snippet *models.Snippet) error {
	tags, err := json.Marshal(snippet.Tags)
	if err != nil {
		return fmt.Errorf("marshal tags: %w", err)
	}

	res, err := r.db.DB().ExecContext(ctx, `
		UPDATE snippets
		SET title = $2, language = $3, code = $4, description = $5, tags = $6
		WHERE id = $1`,
		snippet.ID, snippet.Title, snippet.Language.String(), snippet.Code,
		snippet.Description, tags,
	)
	if err != nil {
		return fmt.Errorf("update snippet: %w", err)
	}
	return requireRow(res)
}

// Delete removes a snippet by ID.
func (r *SnippetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM snippets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete snippet: %w", err)
	}
	return requireRow(res)
}

// requireRow maps a zero-rows-affected result to ErrSnippetNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return snippetdomain.ErrSnippetNotFound
	}
	return nil
}

func (r *SnippetRepository) publishCreated(tx *sql.Tx, snippet *models.Snippet) error {
	event := domainevents.SnippetCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		SnippetID:   snippet.ID,
		Title:       snippet.Title,
		Language:    snippet.Language.String(),
		Code:        snippet.Code,
		Description: snippet.Description,
		Tags:        snippet.Tags,
		OccurredAt:  snippet.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicSnippetCreated, msg)
}

// scanner abstracts *sql.Row and *sql.Rows for scanSnippet.
type scanner interface {
	Scan(dest ...any) error
}

func scanSnippet(s scanner) (*models.Snippet, error) {
	var (
		snippet  models.Snippet
		language string
		tags     []byte
	)
	if err := s.Scan(&snippet.ID, &snippet.Title, &language, &snippet.Code,
		&snippet.Description, &tags, &snippet.CreatedAt); err != nil {
		return nil, err
	}
	snippet.Language = models.Language(language)
	if err := json.Unmarshal(tags, &snippet.Tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	if snippet.Tags == nil {
		snippet.Tags = []string{}
	}
	return &snippet, nil
}
