package services

import (
	"github.com/ghuser/snipbase/pkg/app"
	"github.com/ghuser/snipbase/services/item/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Item *ItemService
}

// New wires all item application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewItemRepository(a.Db)
	return &Services{
		Item: NewItemService(repo),
	}
}
