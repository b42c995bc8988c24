package services

import (
	"github.com/ghuser/snipbase/pkg/app"
	"github.com/ghuser/snipbase/pkg/cache"
	"github.com/ghuser/snipbase/services/snippet/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Snippet *SnippetService
}

// New wires all snippet application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewSnippetRepository(a.Db, a.EventBus)
	snippetCache := cache.NewSnippetCache(a.Redis)
	return &Services{
		Snippet: NewSnippetService(repo, snippetCache),
	}
}
