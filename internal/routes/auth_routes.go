package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupAuth(app *fiber.App, h *Handlers) {
	auth := app.Group("/auth")
	auth.Post("/login", h.Auth.Login)
	auth.Get("/me", middleware.RequireAuth(), h.Auth.Me)
}
