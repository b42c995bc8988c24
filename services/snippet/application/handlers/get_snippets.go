package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/snipbase/pkg/errhttp"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	appsvcs "github.com/ghuser/snipbase/services/snippet/application/services"
)

// GetSnippetsHandler handles GET /snippets requests.
type GetSnippetsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetSnippetsHandler returns a GetSnippetsHandler backed by the given services.
func NewGetSnippetsHandler(svc *appsvcs.Services, log logger.Logger) *GetSnippetsHandler {
	return &GetSnippetsHandler{svc: svc, log: log}
}

// Execute lists snippets, newest first.
//
//	@Summary		List snippets
//	@Description	Lists snippets newest first, optionally filtered by language
//	@Tags			snippets
//	@Produce		json
//	@Param			lang	query		string	false	"Language filter (case-insensitive)"
//	@Param			limit	query		int		false	"Maximum results (default 10)"
//	@Success		200		{array}		SnippetResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/snippets [get]
func (h *GetSnippetsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	language := r.URL.Query().Get("lang")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			httpx.JSONError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	snippets, err := h.svc.Snippet.List(r.Context(), language, limit)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toSnippetResponses(snippets))
}
