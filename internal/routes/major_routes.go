package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupRoutesMajor(app *fiber.App, h *Handlers) {
	majors := app.Group("/majors", middleware.RequireAuth())

	majors.Get("/", h.Major.GetMajors)
	majors.Post("/", middleware.RequireAdmin(), h.Major.CreateMajor)
	majors.Get("/:id", h.Major.GetMajor)
	majors.Put("/:id", middleware.RequireAdmin(), h.Major.UpdateMajor)
	majors.Delete("/:id", middleware.RequireAdmin(), h.Major.DeleteMajor)

	courses := app.Group("/courses", middleware.RequireAuth())
	courses.Get("/", h.Major.GetCourses)
	courses.Post("/", middleware.RequireAdmin(), h.Major.CreateCourse)
	courses.Get("/:id", h.Major.GetCourse)
}
