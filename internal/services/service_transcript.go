package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/models"
	"uniadmin_backend/utils"
)

// TranscriptService records scores. Transcripts never carry their own
// lifecycle; hiding and restoring them is the student lifecycle's job.
type TranscriptService struct {
	transcripts TranscriptStore
	students    StudentStore
	courses     CourseStore
}

func NewTranscriptService(transcripts TranscriptStore, students StudentStore, courses CourseStore) *TranscriptService {
	return &TranscriptService{transcripts: transcripts, students: students, courses: courses}
}

func (s *TranscriptService) Create(ctx context.Context, req dto.CreateTranscriptRequest) (*models.Transcript, error) {
	studentID, err := utils.Oid(req.Student)
	if err != nil {
		return nil, apperr.BadRequest("invalid student")
	}
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil || student.Deleted {
		return nil, apperr.NotFound("Student not found")
	}
	courseID, err := utils.Oid(req.Course)
	if err != nil {
		return nil, apperr.BadRequest("invalid course")
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if course == nil {
		return nil, apperr.NotFound("Course not found")
	}

	t := &models.Transcript{
		StudentID:  studentID,
		CourseID:   courseID,
		Semester:   req.Semester,
		MidScore:   req.MidScore,
		FinalScore: req.FinalScore,
	}
	if _, err := s.transcripts.Insert(ctx, t); err != nil {
		return nil, apperr.Internal(err)
	}
	return t, nil
}

// ListByStudent returns the student's visible transcripts.
func (s *TranscriptService) ListByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Transcript, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil || student.Deleted {
		return nil, apperr.NotFound("Student not found")
	}
	transcripts, err := s.transcripts.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return transcripts, nil
}
