package auth

import (
	"net/http"

	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
)

// TokenHeader is the request header carrying the auth token.
const TokenHeader = "X-Auth-Token"

// RequireToken is a chi middleware that enforces authentication via the
// X-Auth-Token header. A missing header fails closed with 401; a present
// token is verified (signature + expiry) and the subject user id is injected
// into the request context.
//
// After this middleware, handlers can safely call auth.UserIDFromCtx(r.Context()).
func RequireToken(tokens *TokenService, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get(TokenHeader)
			if tokenStr == "" {
				httpx.JSONError(w, http.StatusUnauthorized, "no token, authorization denied")
				return
			}

			userID, err := tokens.Verify(tokenStr)
			if err != nil {
				log.WarnContext(r.Context(), "token rejected", "error", err)
				httpx.JSONError(w, http.StatusUnauthorized, "token is not valid")
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
