package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/snipbase/services/snippet/domain/models"
)

// SnippetResponse is the JSON shape for a snippet on all success responses.
type SnippetResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Title       string    `json:"title"       example:"Binary search"`
	Language    string    `json:"language"    example:"go"`
	Code        string    `json:"code"        example:"func Search(...) int { ... }"`
	Description string    `json:"description" example:"Classic iterative binary search"`
	Tags        []string  `json:"tags"        example:"algorithms,search"`
	CreatedAt   time.Time `json:"createdAt"   example:"2024-01-15T10:30:00Z"`
} // @name SnippetResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"snippet not found"`
} // @name ErrorResponse

func toSnippetResponse(s *models.Snippet) SnippetResponse {
	return SnippetResponse{
		ID:          s.ID,
		Title:       s.Title,
		Language:    s.Language.String(),
		Code:        s.Code,
		Description: s.Description,
		Tags:        s.Tags,
		CreatedAt:   s.CreatedAt,
	}
}

func toSnippetResponses(snippets []*models.Snippet) []SnippetResponse {
	out := make([]SnippetResponse, len(snippets))
	for i, s := range snippets {
		out[i] = toSnippetResponse(s)
	}
	return out
}
