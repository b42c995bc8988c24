package handlers

import (
	"net/http"

	"github.com/ghuser/snipbase/pkg/errhttp"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	pkgvalidator "github.com/ghuser/snipbase/pkg/validator"
	appsvcs "github.com/ghuser/snipbase/services/snippet/application/services"
)

// CreateSnippetRequest is the request body for POST /snippets.
type CreateSnippetRequest struct {
	Title       string   `json:"title"       validate:"required,max=255" example:"Binary search"`
	Language    string   `json:"language"    validate:"required,max=64"  example:"Go"`
	Code        string   `json:"code"        validate:"required"         example:"func Search(...) int { ... }"`
	Description string   `json:"description" validate:"omitempty"        example:"Classic iterative binary search"`
	Tags        []string `json:"tags"        validate:"omitempty,dive,required,max=64"`
} // @name CreateSnippetRequest

// PostSnippetHandler handles POST /snippets requests.
type PostSnippetHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostSnippetHandler returns a PostSnippetHandler backed by the given services.
func NewPostSnippetHandler(svc *appsvcs.Services, log logger.Logger) *PostSnippetHandler {
	return &PostSnippetHandler{svc: svc, log: log}
}

// Execute creates a new snippet.
//
//	@Summary		Create snippet
//	@Tags			snippets
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateSnippetRequest	true	"Snippet creation request"
//	@Success		201		{object}	SnippetResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/snippets [post]
func (h *PostSnippetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateSnippetRequest](w, r)
	if !ok {
		return
	}

	snippet, err := h.svc.Snippet.Create(r.Context(), appsvcs.CreateParams{
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

	httpx.JSON(w, http.StatusCreated, toSnippetResponse(snippet))
}
