package controllers

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/repository"
	"uniadmin_backend/internal/services"
	"uniadmin_backend/utils"
)

type MajorHandler struct {
	catalog *services.CatalogService
	majors  *repository.MajorRepository
	courses *repository.CourseRepository
}

func NewMajorHandler(catalog *services.CatalogService, majors *repository.MajorRepository, courses *repository.CourseRepository) *MajorHandler {
	return &MajorHandler{catalog: catalog, majors: majors, courses: courses}
}

// CreateMajor godoc
// @Summary      Create a major under a faculty
// @Tags         majors
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateMajorRequest true "Major"
// @Success      201 {object} models.Major
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /majors [post]
func (h *MajorHandler) CreateMajor(c *fiber.Ctx) error {
	var req dto.CreateMajorRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	major, err := h.catalog.CreateMajor(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(major)
}

func (h *MajorHandler) GetMajors(c *fiber.Ctx) error {
	majors, err := h.majors.FindAll(c.Context())
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(majors)
}

func (h *MajorHandler) GetMajor(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	major, err := h.majors.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if major == nil || major.Deleted {
		return apperr.Respond(c, apperr.NotFound("Major not found"))
	}
	return c.JSON(major)
}

func (h *MajorHandler) UpdateMajor(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	var req dto.UpdateMajorRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	major, err := h.catalog.UpdateMajor(c.Context(), id, req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(major)
}

// DeleteMajor removes the major permanently, pulling it from the faculty
// and from every enrolled student's forward refs.
func (h *MajorHandler) DeleteMajor(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	if err := h.catalog.DeleteMajor(c.Context(), id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Major deleted"})
}

func (h *MajorHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	course, err := h.catalog.CreateCourse(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(course)
}

func (h *MajorHandler) GetCourses(c *fiber.Ctx) error {
	courses, err := h.courses.FindAll(c.Context())
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	return c.JSON(courses)
}

func (h *MajorHandler) GetCourse(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	course, err := h.courses.FindByID(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, apperr.Internal(err))
	}
	if course == nil {
		return apperr.Respond(c, apperr.NotFound("Course not found"))
	}
	return c.JSON(course)
}
