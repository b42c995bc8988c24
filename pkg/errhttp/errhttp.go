// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapError for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/snipbase/pkg/auth"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	identitydomain "github.com/ghuser/snipbase/services/identity/domain"
	itemdomain "github.com/ghuser/snipbase/services/item/domain"
	snippetdomain "github.com/ghuser/snipbase/services/snippet/domain"
)

// internalMessage is the only text 5xx responses ever carry; detail stays in logs.
const internalMessage = "internal server error"

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Unrecognized errors become a 500: the cause is logged with request context
// but the client sees only a generic message.
//
// Not-found and auth errors always carry the sentinel's canonical text, never
// the wrapped chain. In particular, unknown email and wrong password produce
// byte-identical 401 bodies.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, message := mapError(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "unhandled error", "error", err)
		httpx.JSONError(w, status, internalMessage)
		return
	}
	httpx.JSONError(w, status, message)
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, snippetdomain.ErrSnippetNotFound):
		return http.StatusNotFound, snippetdomain.ErrSnippetNotFound.Error()
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound, itemdomain.ErrItemNotFound.Error()
	case errors.Is(err, snippetdomain.ErrInvalidSnippet),
		errors.Is(err, itemdomain.ErrInvalidItemTitle),
		errors.Is(err, identitydomain.ErrInvalidEmail),
		errors.Is(err, identitydomain.ErrInvalidPassword):
		// Validation errors keep their detail ("invalid snippet: title is required").
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, identitydomain.ErrUserAlreadyExists):
		// Duplicate registration is reported as a plain bad request,
		// not 409, matching the public API contract.
		return http.StatusBadRequest, identitydomain.ErrUserAlreadyExists.Error()
	case errors.Is(err, identitydomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, identitydomain.ErrInvalidCredentials.Error()
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, auth.ErrInvalidToken.Error()
	case errors.Is(err, auth.ErrUserIDNotFound):
		return http.StatusUnauthorized, auth.ErrUserIDNotFound.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}
