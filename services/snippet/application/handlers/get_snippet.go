package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/snipbase/pkg/errhttp"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	appsvcs "github.com/ghuser/snipbase/services/snippet/application/services"
)

// GetSnippetHandler handles GET /snippets/{id} requests.
type GetSnippetHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetSnippetHandler returns a GetSnippetHandler backed by the given services.
func NewGetSnippetHandler(svc *appsvcs.Services, log logger.Logger) *GetSnippetHandler {
	return &GetSnippetHandler{svc: svc, log: log}
}

// Execute fetches one snippet by id.
// A malformed id gets the same 404 as an absent record.
//
//	@Summary		Get snippet
//	@Tags			snippets
//	@Produce		json
//	@Param			id	path		string	true	"Snippet ID"
//	@Success		200	{object}	SnippetResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/snippets/{id} [get]
func (h *GetSnippetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "snippet not found")
		return
	}

	snippet, err := h.svc.Snippet.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSnippetResponse(snippet))
}
