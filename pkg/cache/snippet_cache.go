package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// SnippetCacheTTL is the time-to-live for cached snippets.
	SnippetCacheTTL = 24 * time.Hour

	snippetCacheKeyPrefix = "snippet"
)

// CachedSnippet is the denormalized read model stored in Redis.
// Stored as a single JSON string so tags keep their order.
type CachedSnippet struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Language    string    `json:"language"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// SnippetCache provides structured read/write operations for snippet cache entries.
// Key format: "snippet:{id}"
type SnippetCache struct {
	client *RedisClient
}

// NewSnippetCache creates a SnippetCache backed by the given RedisClient.
func NewSnippetCache(r *RedisClient) *SnippetCache {
	return &SnippetCache{client: r}
}

// Get retrieves a cached snippet by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *SnippetCache) Get(ctx context.Context, id uuid.UUID) (*CachedSnippet, error) {
	data, err := c.client.Client().Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var snippet CachedSnippet
	if err := json.Unmarshal(data, &snippet); err != nil {
		return nil, fmt.Errorf("cache unmarshal snippet: %w", err)
	}
	return &snippet, nil
}

// Set writes a cached snippet with a 24-hour TTL.
func (c *SnippetCache) Set(ctx context.Context, snippet *CachedSnippet) error {
	data, err := json.Marshal(snippet)
	if err != nil {
		return fmt.Errorf("cache marshal snippet: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(snippet.ID), data, SnippetCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached snippet. Called on update and delete so stale reads
// never outlive the record.
func (c *SnippetCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *SnippetCache) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", snippetCacheKeyPrefix, id)
}
