package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/snipbase/pkg/errhttp"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	appsvcs "github.com/ghuser/snipbase/services/item/application/services"
	"github.com/ghuser/snipbase/services/item/domain/models"
)

// ItemResponse is the JSON shape for an item on all success responses.
type ItemResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Title     string    `json:"title"     example:"Review PR backlog"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ItemErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{ID: item.ID, Title: item.Title, CreatedAt: item.CreatedAt}
}

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services, log logger.Logger) *GetItemsHandler {
	return &GetItemsHandler{svc: svc, log: log}
}

// Execute lists all items, newest first. Requires a valid token.
//
//	@Summary		List items
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Security		TokenAuth
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, out)
}
