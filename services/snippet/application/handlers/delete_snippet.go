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

// DeleteSnippetHandler handles DELETE /snippets/{id} requests.
type DeleteSnippetHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteSnippetHandler returns a DeleteSnippetHandler backed by the given services.
func NewDeleteSnippetHandler(svc *appsvcs.Services, log logger.Logger) *DeleteSnippetHandler {
	return &DeleteSnippetHandler{svc: svc, log: log}
}

// Execute deletes a snippet by id.
// A malformed id gets the same 404 as an absent record.
//
//	@Summary		Delete snippet
//	@Tags			snippets
//	@Produce		json
//	@Param			id	path		string	true	"Snippet ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/snippets/{id} [delete]
func (h *DeleteSnippetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "snippet not found")
		return
	}

	if err := h.svc.Snippet.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSONMessage(w, http.StatusOK, "snippet deleted")
}
