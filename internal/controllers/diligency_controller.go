package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/services"
	"uniadmin_backend/utils"
)

const dateLayout = "2006-01-02"

type DiligencyHandler struct {
	diligencies *services.DiligencyService
}

func NewDiligencyHandler(diligencies *services.DiligencyService) *DiligencyHandler {
	return &DiligencyHandler{diligencies: diligencies}
}

// CreateDiligency godoc
// @Summary      Record an absence
// @Description  One record per (student, course, date). Crossing 3 or 4 absences rewrites the status on every record of the pair.
// @Tags         diligences
// @Accept       json
// @Produce      json
// @Param        studentId path string true "Student ID"
// @Param        body body dto.CreateDiligencyRequest true "Absence"
// @Success      201 {object} models.Diligency
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse
// @Router       /diligences/{studentId} [post]
func (h *DiligencyHandler) CreateDiligency(c *fiber.Ctx) error {
	studentID, err := utils.Oid(c.Params("studentId"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid studentId"))
	}
	var req dto.CreateDiligencyRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	courseID, err := utils.Oid(req.CourseID)
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid courseId"))
	}
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid date"))
	}
	record, err := h.diligencies.Create(c.Context(), studentID, courseID, date, req.Notes)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetDiligencies lists every absence record.
func (h *DiligencyHandler) GetDiligencies(c *fiber.Ctx) error {
	records, err := h.diligencies.ListAll(c.Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(records)
}

// GetStudentReport godoc
// @Summary      Absence report for one student
// @Tags         diligences
// @Produce      json
// @Param        studentId path string true "Student ID"
// @Success      200 {object} services.StudentReport
// @Failure      404 {object} dto.ErrorResponse
// @Router       /diligences/student/{studentId} [get]
func (h *DiligencyHandler) GetStudentReport(c *fiber.Ctx) error {
	studentID, err := utils.Oid(c.Params("studentId"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid studentId"))
	}
	report, err := h.diligencies.Report(c.Context(), studentID)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(report)
}

// UpdateDiligency edits the date or notes of one record.
func (h *DiligencyHandler) UpdateDiligency(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	var req dto.UpdateDiligencyRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			return apperr.Respond(c, apperr.BadRequest("invalid date"))
		}
		date = &parsed
	}
	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}
	record, err := h.diligencies.Update(c.Context(), id, date, notes)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(record)
}

// DeleteDiligency removes a record; the pair is reclassified with the
// lowered count.
func (h *DiligencyHandler) DeleteDiligency(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	if err := h.diligencies.Delete(c.Context(), id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Diligency deleted"})
}
