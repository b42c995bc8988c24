package services

import (
	"context"
	"fmt"

	"github.com/ghuser/snipbase/pkg/auth"
	identitydomain "github.com/ghuser/snipbase/services/identity/domain"
	"github.com/ghuser/snipbase/services/identity/domain/models"
	"github.com/ghuser/snipbase/services/identity/domain/repositories"
	domainsvcs "github.com/ghuser/snipbase/services/identity/domain/services"
)

// IdentityService handles registration and login.
type IdentityService struct {
	repo       repositories.UserRepository
	tokens     *auth.TokenService
	bcryptCost int
}

// NewIdentityService returns an IdentityService wired with the given
// repository, token service, and bcrypt cost factor.
func NewIdentityService(repo repositories.UserRepository, tokens *auth.TokenService, bcryptCost int) *IdentityService {
	return &IdentityService{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

// Register creates a new user with a hashed password.
// Returns ErrUserAlreadyExists if the email is taken.
func (s *IdentityService) Register(ctx context.Context, email, password string) (*models.User, error) {
	addr, err := models.NewEmail(email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", identitydomain.ErrInvalidEmail, err)
	}

	hash, err := domainsvcs.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", identitydomain.ErrInvalidPassword, err)
	}

	user, err := models.NewUser(addr, hash)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a signed token.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response does not leak which check failed.
func (s *IdentityService) Login(ctx context.Context, email, password string) (string, error) {
	addr, err := models.NewEmail(email)
	if err != nil {
		return "", identitydomain.ErrInvalidCredentials
	}

	user, err := s.repo.GetByEmail(ctx, addr)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}

	if !domainsvcs.ComparePassword(password, user.PasswordHash) {
		return "", identitydomain.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
