package repositories

import (
	"context"

	"github.com/ghuser/snipbase/services/identity/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// Users are created once and read for login; no update or delete exists.
type UserRepository interface {
	// Save persists a new User. Returns ErrUserAlreadyExists when the email
	// is already taken (unique constraint).
	Save(ctx context.Context, user *models.User) error

	// GetByEmail returns ErrInvalidCredentials when no user matches, so the
	// caller cannot distinguish unknown email from wrong password.
	GetByEmail(ctx context.Context, email models.Email) (*models.User, error)
}
