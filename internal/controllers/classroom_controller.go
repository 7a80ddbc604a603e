package controllers

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/repository"
	"uniadmin_backend/internal/services"
	"uniadmin_backend/utils"
)

type ClassroomHandler struct {
	catalog    *services.CatalogService
	enrollment *services.EnrollmentService
	lifecycle  *services.LifecycleService
	classrooms *repository.ClassroomRepository
}

func NewClassroomHandler(catalog *services.CatalogService, enrollment *services.EnrollmentService, lifecycle *services.LifecycleService, classrooms *repository.ClassroomRepository) *ClassroomHandler {
	return &ClassroomHandler{catalog: catalog, enrollment: enrollment, lifecycle: lifecycle, classrooms: classrooms}
}

// CreateClassroom godoc
// @Summary      Create a classroom
// @Description  Adds the classroom to the teacher's set and places the listed students.
// @Tags         classrooms
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateClassroomRequest true "Classroom"
// @Success      201 {object} models.Classroom
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /classrooms [post]
func (h *ClassroomHandler) CreateClassroom(c *fiber.Ctx) error {
	var req dto.CreateClassroomRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	classroom, err := h.catalog.CreateClassroom(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(classroom)
}

func (h *ClassroomHandler) GetClassrooms(c *fiber.Ctx) error {
	classrooms, err := h.classrooms.FindByDeleted(c.Context(), false)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(classrooms)
}

// GetDeletedClassrooms lists soft-deleted classrooms, for the restore screen.
func (h *ClassroomHandler) GetDeletedClassrooms(c *fiber.Ctx) error {
	classrooms, err := h.classrooms.FindByDeleted(c.Context(), true)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(classrooms)
}

func (h *ClassroomHandler) GetClassroom(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	classroom, err := h.classrooms.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if classroom == nil || classroom.Deleted {
		return apperr.Respond(c, apperr.NotFound("Classroom not found"))
	}
	return c.JSON(classroom)
}

func (h *ClassroomHandler) UpdateClassroom(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	var req dto.UpdateClassroomRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	classroom, err := h.catalog.UpdateClassroom(c.Context(), id, req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(classroom)
}

// AssignStudent moves one student into this classroom's homeroom.
func (h *ClassroomHandler) AssignStudent(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	studentID, err := utils.Oid(c.Params("studentId"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid studentId"))
	}
	classroom, err := h.classrooms.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if classroom == nil || classroom.Deleted {
		return apperr.Respond(c, apperr.NotFound("Classroom not found"))
	}
	student, err := h.enrollment.AssignHomeroom(c.Context(), studentID, classroom.TeacherID)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(student)
}

func (h *ClassroomHandler) DeleteClassroom(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	if err := h.lifecycle.DeleteClassroom(c.Context(), id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Classroom deleted"})
}

func (h *ClassroomHandler) RestoreClassroom(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	classroom, err := h.lifecycle.RestoreClassroom(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(classroom)
}
