// Package fiber exposes the HTTP surface: the public identity endpoints,
// the token-gated user endpoints, and the auth middleware between them.
package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nbarth/gatehouse/core"
)

type Adapter struct {
	app      *fiber.App
	auth     core.AuthProvider
	assets   core.AssetProvider
	verifier core.TokenVerifier
}

func New(app *fiber.App, auth core.AuthProvider, assets core.AssetProvider, verifier core.TokenVerifier) *Adapter {
	return &Adapter{
		app:      app,
		auth:     auth,
		assets:   assets,
		verifier: verifier,
	}
}

// RegisterRoutes mounts the API. Everything below the auth endpoints
// passes through the gate; handlers never re-derive identity themselves.
func (a *Adapter) RegisterRoutes() {
	api := a.app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/signup", a.signUp)
	auth.Post("/signin", a.signIn)

	// Protected routes
	gate := RequireAuth(a.verifier)
	api.Get("/user-info", gate, a.userInfo)
	api.Get("/user-image", gate, a.userImage)
	api.Post("/upload", gate, a.upload)
}
