package controllers

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/repository"
	"uniadmin_backend/internal/services"
	"uniadmin_backend/utils"
)

type FacultyHandler struct {
	catalog   *services.CatalogService
	lifecycle *services.LifecycleService
	faculties *repository.FacultyRepository
	majors    *repository.MajorRepository
	teachers  *repository.TeacherRepository
	students  *repository.StudentRepository
}

func NewFacultyHandler(catalog *services.CatalogService, lifecycle *services.LifecycleService, faculties *repository.FacultyRepository, majors *repository.MajorRepository, teachers *repository.TeacherRepository, students *repository.StudentRepository) *FacultyHandler {
	return &FacultyHandler{catalog: catalog, lifecycle: lifecycle, faculties: faculties, majors: majors, teachers: teachers, students: students}
}

// CreateFaculty godoc
// @Summary      Create a faculty
// @Tags         faculties
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateFacultyRequest true "Faculty"
// @Success      201 {object} models.Faculty
// @Failure      409 {object} dto.ErrorResponse
// @Router       /faculties [post]
func (h *FacultyHandler) CreateFaculty(c *fiber.Ctx) error {
	var req dto.CreateFacultyRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	faculty, err := h.catalog.CreateFaculty(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(faculty)
}

func (h *FacultyHandler) GetFaculties(c *fiber.Ctx) error {
	faculties, err := h.faculties.FindByDeleted(c.Context(), false)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(faculties)
}

func (h *FacultyHandler) GetFaculty(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	faculty, err := h.faculties.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if faculty == nil || faculty.Deleted {
		return apperr.Respond(c, apperr.NotFound("Faculty not found"))
	}
	return c.JSON(faculty)
}

// GetFacultyWithStudents returns the faculty together with the students of
// its majors, for the faculty detail screen.
func (h *FacultyHandler) GetFacultyWithStudents(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	faculty, err := h.faculties.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if faculty == nil || faculty.Deleted {
		return apperr.Respond(c, apperr.NotFound("Faculty not found"))
	}
	students, err := h.students.FindByMajorIDs(c.Context(), faculty.MajorIDs)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(fiber.Map{"faculty": faculty, "students": students})
}

func (h *FacultyHandler) GetFacultyMajors(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	faculty, err := h.faculties.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if faculty == nil || faculty.Deleted {
		return apperr.Respond(c, apperr.NotFound("Faculty not found"))
	}
	majors, err := h.majors.FindByFaculty(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(majors)
}

func (h *FacultyHandler) GetFacultyTeachers(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	faculty, err := h.faculties.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if faculty == nil || faculty.Deleted {
		return apperr.Respond(c, apperr.NotFound("Faculty not found"))
	}
	teachers, err := h.teachers.FindByFaculty(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(teachers)
}

// GetDeletedFaculties lists soft-deleted faculties, for the restore screen.
func (h *FacultyHandler) GetDeletedFaculties(c *fiber.Ctx) error {
	faculties, err := h.faculties.FindByDeleted(c.Context(), true)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(faculties)
}

func (h *FacultyHandler) UpdateFaculty(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	var req dto.UpdateFacultyRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	faculty, err := h.catalog.UpdateFaculty(c.Context(), id, req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(faculty)
}

// DeleteFaculty godoc
// @Summary      Soft-delete a faculty
// @Description  The faculty's teachers and majors are soft-deleted with it.
// @Tags         faculties
// @Produce      json
// @Param        id path string true "Faculty ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /faculties/{id} [delete]
func (h *FacultyHandler) DeleteFaculty(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	if err := h.lifecycle.DeleteFaculty(c.Context(), id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Faculty deleted"})
}

func (h *FacultyHandler) RestoreFaculty(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	faculty, err := h.lifecycle.RestoreFaculty(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(faculty)
}
