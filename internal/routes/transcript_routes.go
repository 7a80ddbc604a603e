package routes

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/internal/middleware"
)

func SetupRoutesTranscript(app *fiber.App, h *Handlers) {
	transcripts := app.Group("/transcripts", middleware.RequireAuth())

	transcripts.Get("/me", h.Transcript.GetMyTranscripts)
	transcripts.Get("/student/:studentId", h.Transcript.GetStudentTranscripts)
	transcripts.Post("/", middleware.RequireAdmin(), h.Transcript.CreateTranscript)
}
