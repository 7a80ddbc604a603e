package controllers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/repository"
	"uniadmin_backend/internal/services"
	"uniadmin_backend/utils"
)

type TeacherHandler struct {
	catalog    *services.CatalogService
	lifecycle  *services.LifecycleService
	teachers   *repository.TeacherRepository
	classrooms *repository.ClassroomRepository
	students   *repository.StudentRepository
}

func NewTeacherHandler(catalog *services.CatalogService, lifecycle *services.LifecycleService, teachers *repository.TeacherRepository, classrooms *repository.ClassroomRepository, students *repository.StudentRepository) *TeacherHandler {
	return &TeacherHandler{catalog: catalog, lifecycle: lifecycle, teachers: teachers, classrooms: classrooms, students: students}
}

// CreateTeacher godoc
// @Summary      Create a teacher under a faculty
// @Description  The initial password is the mgv.
// @Tags         teachers
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateTeacherRequest true "Teacher"
// @Success      201 {object} models.Teacher
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /teachers [post]
func (h *TeacherHandler) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	teacher, err := h.catalog.CreateTeacher(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(teacher)
}

// GetTeachers lists teachers together with the names of the classrooms
// they manage.
func (h *TeacherHandler) GetTeachers(c *fiber.Ctx) error {
	teachers, err := h.teachers.FindAll(c.Context())
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	rooms, err := h.classrooms.FindByDeleted(c.Context(), false)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	names := make(map[bson.ObjectID][]string, len(rooms))
	for _, r := range rooms {
		names[r.TeacherID] = append(names[r.TeacherID], r.Name)
	}
	out := make([]fiber.Map, 0, len(teachers))
	for _, t := range teachers {
		out = append(out, fiber.Map{"teacher": t, "classroomNames": names[t.ID]})
	}
	return c.JSON(out)
}

func (h *TeacherHandler) GetTeacher(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	teacher, err := h.teachers.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if teacher == nil || teacher.Deleted {
		return apperr.Respond(c, apperr.NotFound("Teacher not found"))
	}
	return c.JSON(teacher)
}

// GetTeacherStudents lists the students the teacher is homeroom teacher of.
func (h *TeacherHandler) GetTeacherStudents(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	teacher, err := h.teachers.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if teacher == nil || teacher.Deleted {
		return apperr.Respond(c, apperr.NotFound("Teacher not found"))
	}
	students, err := h.students.FindByHomeroom(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(students)
}

func (h *TeacherHandler) UpdateTeacher(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	var req dto.UpdateTeacherRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	teacher, err := h.catalog.UpdateTeacher(c.Context(), id, req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(teacher)
}

func (h *TeacherHandler) DeleteTeacher(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	if err := h.lifecycle.DeleteTeacher(c.Context(), id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Teacher deleted"})
}

func (h *TeacherHandler) RestoreTeacher(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	teacher, err := h.lifecycle.RestoreTeacher(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(teacher)
}
