package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicSnippetCreated is the Watermill topic published when a Snippet is created.
const TopicSnippetCreated = "snippet.created"

// SnippetCreatedEvent is published after a new Snippet is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicSnippetCreated).
type SnippetCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	SnippetID   uuid.UUID `json:"snippet_id"`
	Title       string    `json:"title"`
	Language    string    `json:"language"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	OccurredAt  time.Time `json:"occurred_at"`
}
