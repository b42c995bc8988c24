package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/snipbase/pkg/app"
	"github.com/ghuser/snipbase/pkg/auth"
	"github.com/ghuser/snipbase/services/item/application/handlers"
	appsvcs "github.com/ghuser/snipbase/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
// All item routes require a valid auth token.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/items", func(r chi.Router) {
		r.Use(auth.RequireToken(a.Tokens, a.Logger))
		r.Get("/", handlers.NewGetItemsHandler(svcs, a.Logger).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs, a.Logger).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs, a.Logger).Execute)
	})
}
