package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupRoutesFaculty(app *fiber.App, h *Handlers) {
	faculties := app.Group("/faculties", middleware.RequireAuth())

	faculties.Get("/", h.Faculty.GetFaculties)
	faculties.Post("/", middleware.RequireAdmin(), h.Faculty.CreateFaculty)
	faculties.Get("/deleted", middleware.RequireAdmin(), h.Faculty.GetDeletedFaculties)
	faculties.Get("/:id", h.Faculty.GetFaculty)
	faculties.Get("/:id/students", h.Faculty.GetFacultyWithStudents)
	faculties.Get("/:id/majors", h.Faculty.GetFacultyMajors)
	faculties.Get("/:id/teachers", h.Faculty.GetFacultyTeachers)
	faculties.Put("/:id", middleware.RequireAdmin(), h.Faculty.UpdateFaculty)
	faculties.Delete("/:id", middleware.RequireAdmin(), h.Faculty.DeleteFaculty)
	faculties.Post("/:id/restore", middleware.RequireAdmin(), h.Faculty.RestoreFaculty)
}
