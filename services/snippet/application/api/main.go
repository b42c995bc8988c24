package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/snipbase/pkg/app"
	"github.com/ghuser/snipbase/services/snippet/application/handlers"
	appsvcs "github.com/ghuser/snipbase/services/snippet/application/services"
)

// SnippetRoutes registers snippet endpoints on the provided chi router.
// All snippet routes are public.
func SnippetRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/snippets", func(r chi.Router) {
		r.Get("/", handlers.NewGetSnippetsHandler(svcs, a.Logger).Execute)
		r.Post("/", handlers.NewPostSnippetHandler(svcs, a.Logger).Execute)
		r.Get("/{id}", handlers.NewGetSnippetHandler(svcs, a.Logger).Execute)
		r.Put("/{id}", handlers.NewPutSnippetHandler(svcs, a.Logger).Execute)
		r.Delete("/{id}", handlers.NewDeleteSnippetHandler(svcs, a.Logger).Execute)
	})
}
