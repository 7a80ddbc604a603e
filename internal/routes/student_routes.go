package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupRoutesStudent(app *fiber.App, h *Handlers) {
	students := app.Group("/students", middleware.RequireAuth())

	// static paths before the :id wildcard
	students.Get("/search", h.Student.SearchStudents)
	students.Post("/restore", middleware.RequireAdmin(), h.Student.RestoreStudent)
	students.Post("/admin", middleware.RequireAdmin(), h.Student.CreateAdmin)
	students.Put("/profile", h.Student.UpdateProfile)
	students.Put("/password", h.Student.ChangePassword)

	students.Get("/", h.Student.GetStudents)
	students.Post("/", middleware.RequireAdmin(), h.Student.CreateStudent)
	students.Get("/:id", h.Student.GetStudent)
	students.Put("/:id", middleware.RequireAdmin(), h.Student.AdminUpdateStudent)
	students.Delete("/:id", middleware.RequireAdmin(), h.Student.DeleteStudent)
}
