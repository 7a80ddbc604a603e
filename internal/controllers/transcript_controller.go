package controllers

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/middleware"
	"uniadmin_backend/internal/services"
	"uniadmin_backend/utils"
)

type TranscriptHandler struct {
	transcripts *services.TranscriptService
}

func NewTranscriptHandler(transcripts *services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{transcripts: transcripts}
}

// CreateTranscript godoc
// @Summary      Record scores for a student in a course
// @Tags         transcripts
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateTranscriptRequest true "Transcript"
// @Success      201 {object} models.Transcript
// @Failure      404 {object} dto.ErrorResponse
// @Router       /transcripts [post]
func (h *TranscriptHandler) CreateTranscript(c *fiber.Ctx) error {
	var req dto.CreateTranscriptRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	transcript, err := h.transcripts.Create(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transcript)
}

// GetStudentTranscripts lists one student's visible transcripts.
func (h *TranscriptHandler) GetStudentTranscripts(c *fiber.Ctx) error {
	studentID, err := utils.Oid(c.Params("studentId"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid studentId"))
	}
	transcripts, err := h.transcripts.ListByStudent(c.Context(), studentID)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(transcripts)
}

// GetMyTranscripts lists the caller's own transcripts.
func (h *TranscriptHandler) GetMyTranscripts(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	transcripts, err := h.transcripts.ListByStudent(c.Context(), uid)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(transcripts)
}
