package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ecomm-api/internal/middleware"
)

// RegisterRoutes wires every endpoint. Registration and login are the only
// routes outside the auth guard.
func RegisterRoutes(app *fiber.App, auth *AuthHandler, products *ProductHandler, guard *middleware.Auth) {
	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)

	app.Post("/add-product", guard.RequireAuth, products.Add)
	app.Get("/products", guard.RequireAuth, products.List)
	app.Get("/product/:id", guard.RequireAuth, products.Get)
	app.Put("/product/:id", guard.RequireAuth, products.Update)
	app.Delete("/product/:id", guard.RequireAuth, products.Delete)
	app.Get("/search/:key", guard.RequireAuth, products.Search)
}
