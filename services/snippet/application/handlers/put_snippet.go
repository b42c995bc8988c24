package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/snipbase/pkg/errhttp"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	pkgvalidator "github.com/ghuser/snipbase/pkg/validator"
	appsvcs "github.com/ghuser/snipbase/services/snippet/application/services"
)

// UpdateSnippetRequest is the request body for PUT /snippets/{id}.
// All fields are optional; omitted fields keep their stored value. The merged
// record is re-validated in full, so clearing a required field is rejected.
type UpdateSnippetRequest struct {
	Title       *string   `json:"title"       validate:"omitempty,max=255"`
	Language    *string   `json:"language"    validate:"omitempty,max=64"`
	Code        *string   `json:"code"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"        validate:"omitempty,dive,max=64"`
} // @name UpdateSnippetRequest

// PutSnippetHandler handles PUT /snippets/{id} requests.
type PutSnippetHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPutSnippetHandler returns a PutSnippetHandler backed by the given services.
func NewPutSnippetHandler(svc *appsvcs.Services, log logger.Logger) *PutSnippetHandler {
	return &PutSnippetHandler{svc: svc, log: log}
}

// Execute applies a partial update to a snippet.
// A malformed id gets the same 404 as an absent record.
//
//	@Summary		Update snippet
//	@Tags			snippets
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Snippet ID"
//	@Param			request	body		UpdateSnippetRequest	true	"Partial snippet update"
//	@Success		200		{object}	SnippetResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/snippets/{id} [put]
func (h *PutSnippetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, http.StatusNotFound, "snippet not found")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateSnippetRequest](w, r)
	if !ok {
		return
	}

	snippet, err := h.svc.Snippet.Update(r.Context(), id, appsvcs.UpdateParams{
		Title:       req.Title,
		Language:    req.Language,
		Code:        req.Code,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSnippetResponse(snippet))
}
