package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/snipbase/pkg/app"
	"github.com/ghuser/snipbase/services/identity/application/handlers"
	appsvcs "github.com/ghuser/snipbase/services/identity/application/services"
)

// IdentityRoutes registers register/login endpoints on the provided chi router.
// Both routes are public; login is the only place tokens are issued.
func IdentityRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Post("/register", handlers.NewPostRegisterHandler(svcs, a.Logger).Execute)
	r.Post("/login", handlers.NewPostLoginHandler(svcs, a.Logger).Execute)
}
