package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/snipbase/pkg/database"
	identitydomain "github.com/ghuser/snipbase/services/identity/domain"
	"github.com/ghuser/snipbase/services/identity/domain/models"
)

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Save persists a new User. The unique index on email turns concurrent
// duplicate registrations into ErrUserAlreadyExists (pg error 23505).
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email.String(), user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identitydomain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByEmail retrieves a User by normalized email.
func (r *UserRepository) GetByEmail(ctx context.Context, email models.Email) (*models.User, error) {
	var user models.User
	var emailStr string
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT id, email, password_hash, created_at
		FROM users WHERE email = $1`, email.String(),
	).Scan(&user.ID, &emailStr, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identitydomain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	user.Email = models.Email(emailStr)
	return &user, nil
}
