package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupRoutesClassroom(app *fiber.App, h *Handlers) {
	classrooms := app.Group("/classrooms", middleware.RequireAuth())

	classrooms.Get("/", h.Classroom.GetClassrooms)
	classrooms.Post("/", middleware.RequireAdmin(), h.Classroom.CreateClassroom)
	classrooms.Get("/deleted", middleware.RequireAdmin(), h.Classroom.GetDeletedClassrooms)
	classrooms.Get("/:id", h.Classroom.GetClassroom)
	classrooms.Put("/:id", middleware.RequireAdmin(), h.Classroom.UpdateClassroom)
	classrooms.Delete("/:id", middleware.RequireAdmin(), h.Classroom.DeleteClassroom)
	classrooms.Post("/:id/restore", middleware.RequireAdmin(), h.Classroom.RestoreClassroom)
	classrooms.Post("/:id/students/:studentId", middleware.RequireAdmin(), h.Classroom.AssignStudent)
}
