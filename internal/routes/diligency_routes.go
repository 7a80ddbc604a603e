package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupRoutesDiligency(app *fiber.App, h *Handlers) {
	diligences := app.Group("/diligences", middleware.RequireAuth())

	diligences.Get("/", h.Diligency.GetDiligencies)
	diligences.Get("/student/:studentId", h.Diligency.GetStudentReport)
	diligences.Post("/:studentId", middleware.RequireAdmin(), h.Diligency.CreateDiligency)
	diligences.Put("/:id", middleware.RequireAdmin(), h.Diligency.UpdateDiligency)
	diligences.Delete("/:id", middleware.RequireAdmin(), h.Diligency.DeleteDiligency)
}
