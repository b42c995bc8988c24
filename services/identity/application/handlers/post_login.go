package handlers

import (
	"net/http"

	"github.com/ghuser/snipbase/pkg/errhttp"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	pkgvalidator "github.com/ghuser/snipbase/pkg/validator"
	appsvcs "github.com/ghuser/snipbase/services/identity/application/services"
)

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"dev@example.com"`
	Password string `json:"password" validate:"required"       example:"hunter22"`
} // @name LoginRequest

// LoginResponse carries the signed auth token on successful login.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
} // @name LoginResponse

// PostLoginHandler handles POST /login requests.
type PostLoginHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostLoginHandler returns a PostLoginHandler backed by the given services.
func NewPostLoginHandler(svc *appsvcs.Services, log logger.Logger) *PostLoginHandler {
	return &PostLoginHandler{svc: svc, log: log}
}

// Execute verifies credentials and issues a token.
// Unknown email and wrong password produce identical 401 responses.
//
//	@Summary		Login
//	@Tags			identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login request"
//	@Success		200		{object}	LoginResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/login [post]
func (h *PostLoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[LoginRequest](w, r)
	if !ok {
		return
	}

	token, err := h.svc.Identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{Token: token})
}
