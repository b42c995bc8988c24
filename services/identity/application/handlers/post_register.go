package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/snipbase/pkg/errhttp"
	"github.com/ghuser/snipbase/pkg/httpx"
	"github.com/ghuser/snipbase/pkg/logger"
	pkgvalidator "github.com/ghuser/snipbase/pkg/validator"
	appsvcs "github.com/ghuser/snipbase/services/identity/application/services"
)

// RegisterRequest is the request body for POST /register.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email" example:"dev@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"hunter22"`
} // @name RegisterRequest

// RegisterResponse is returned on successful registration.
// It never carries the password hash.
type RegisterResponse struct {
	ID        uuid.UUID `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Email     string    `json:"email"     example:"dev@example.com"`
	CreatedAt time.Time `json:"createdAt" example:"2024-01-15T10:30:00Z"`
} // @name RegisterResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"user already exists"`
} // @name IdentityErrorResponse

// PostRegisterHandler handles POST /register requests.
type PostRegisterHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostRegisterHandler returns a PostRegisterHandler backed by the given services.
func NewPostRegisterHandler(svc *appsvcs.Services, log logger.Logger) *PostRegisterHandler {
	return &PostRegisterHandler{svc: svc, log: log}
}

// Execute registers a new user.
//
//	@Summary		Register
//	@Tags			identity
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"Registration request"
//	@Success		201		{object}	RegisterResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/register [post]
func (h *PostRegisterHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RegisterRequest](w, r)
	if !ok {
		return
	}

	user, err := h.svc.Identity.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, RegisterResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		CreatedAt: user.CreatedAt,
	})
}
