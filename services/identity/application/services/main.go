package services

import (
	"github.com/ghuser/snipbase/pkg/app"
	"github.com/ghuser/snipbase/services/identity/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Identity *IdentityService
}

// New wires all identity application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewUserRepository(a.Db)
	return &Services{
		Identity: NewIdentityService(repo, a.Tokens, a.BcryptCost),
	}
}
