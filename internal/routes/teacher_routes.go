package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupRoutesTeacher(app *fiber.App, h *Handlers) {
	teachers := app.Group("/teachers", middleware.RequireAuth())

	teachers.Get("/", h.Teacher.GetTeachers)
	teachers.Post("/", middleware.RequireAdmin(), h.Teacher.CreateTeacher)
	teachers.Get("/:id", h.Teacher.GetTeacher)
	teachers.Get("/:id/students", h.Teacher.GetTeacherStudents)
	teachers.Put("/:id", middleware.RequireAdmin(), h.Teacher.UpdateTeacher)
	teachers.Delete("/:id", middleware.RequireAdmin(), h.Teacher.DeleteTeacher)
	teachers.Post("/:id/restore", middleware.RequireAdmin(), h.Teacher.RestoreTeacher)
}
