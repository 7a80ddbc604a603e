package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/models"
)

// Classify maps an absence count for one (student, course) pair to the
// eligibility status stamped on every record of that pair.
func Classify(n int64) models.DiligencyStatus {
	switch {
	case n >= 4:
		return models.StatusBanned
	case n >= 3:
		return models.StatusWarning
	default:
		return models.StatusEligible
	}
}

// DiligencyService records absences and keeps the derived status in step
// with the record count. Every mutation recounts the (student, course)
// pair inside the same transaction and rewrites the status on all of the
// pair's records, so the n-th insert retroactively updates records 1..n-1.
type DiligencyService struct {
	tx          TxRunner
	diligencies DiligencyStore
	students    StudentStore
	courses     CourseStore
}

func NewDiligencyService(tx TxRunner, diligencies DiligencyStore, students StudentStore, courses CourseStore) *DiligencyService {
	return &DiligencyService{tx: tx, diligencies: diligencies, students: students, courses: courses}
}

// Create records one absence. A second record for the same student,
// course and date is a conflict, caught either by the pre-check or by the
// unique index during the insert.
func (s *DiligencyService) Create(ctx context.Context, studentID, courseID bson.ObjectID, date time.Time, notes string) (*models.Diligency, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil || student.Deleted {
		return nil, apperr.NotFound("Student not found")
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if course == nil {
		return nil, apperr.NotFound("Course not found")
	}

	exists, err := s.diligencies.Exists(ctx, studentID, courseID, date)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Conflict("Diligency already exists")
	}

	d := &models.Diligency{
		StudentID: studentID,
		CourseID:  courseID,
		Date:      date,
		Notes:     notes,
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		dup, err := s.diligencies.Insert(txCtx, d)
		if err != nil {
			return err
		}
		if dup {
			return apperr.Conflict("Diligency already exists")
		}
		return s.reclassify(txCtx, studentID, courseID)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.diligencies.FindByID(ctx, d.ID)
}

// Update edits the date or notes of a record. A date change can collide
// with an existing record for the same pair; the unique index rejects it.
func (s *DiligencyService) Update(ctx context.Context, id bson.ObjectID, date *time.Time, notes *string) (*models.Diligency, error) {
	d, err := s.diligencies.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if d == nil {
		return nil, apperr.NotFound("Diligency not found")
	}

	set := bson.M{}
	if date != nil && !date.Equal(d.Date) {
		exists, err := s.diligencies.Exists(ctx, d.StudentID, d.CourseID, *date)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			return nil, apperr.Conflict("Diligency already exists")
		}
		set["date"] = *date
	}
	if notes != nil {
		set["notes"] = *notes
	}
	if len(set) == 0 {
		return d, nil
	}
	dup, err := s.diligencies.SetFields(ctx, id, set)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if dup {
		return nil, apperr.Conflict("Diligency already exists")
	}
	return s.diligencies.FindByID(ctx, id)
}

// Delete removes a record and reclassifies the pair with the lowered
// count, so a student can drop back below a threshold.
func (s *DiligencyService) Delete(ctx context.Context, id bson.ObjectID) error {
	d, err := s.diligencies.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if d == nil {
		return apperr.NotFound("Diligency not found")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.diligencies.DeleteByID(txCtx, id); err != nil {
			return err
		}
		return s.reclassify(txCtx, d.StudentID, d.CourseID)
	})
	return asAppErr(err)
}

func (s *DiligencyService) reclassify(txCtx context.Context, studentID, courseID bson.ObjectID) error {
	n, err := s.diligencies.CountByStudentCourse(txCtx, studentID, courseID)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return s.diligencies.SetStatusByStudentCourse(txCtx, studentID, courseID, Classify(n))
}

// CourseReport is one (course, date) line of a student's absence report.
type CourseReport struct {
	CourseID bson.ObjectID          `json:"courseId"`
	Date     time.Time              `json:"date"`
	Status   models.DiligencyStatus `json:"status"`
	Notes    string                 `json:"notes,omitempty"`
}

// StudentReport is a student's absences grouped per course, with the
// per-course total and the current status.
type StudentReport struct {
	StudentID     bson.ObjectID                     `json:"studentId"`
	TotalAbsences int                               `json:"totalAbsences"`
	Records       []CourseReport                    `json:"records"`
	Statuses      map[string]models.DiligencyStatus `json:"statuses"`
}

// Report lists a student's absence records with the per-course status map
// and the overall count.
func (s *DiligencyService) Report(ctx context.Context, studentID bson.ObjectID) (*StudentReport, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil {
		return nil, apperr.NotFound("Student not found")
	}
	records, err := s.diligencies.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	report := &StudentReport{
		StudentID:     studentID,
		TotalAbsences: len(records),
		Records:       make([]CourseReport, 0, len(records)),
		Statuses:      make(map[string]models.DiligencyStatus),
	}
	for _, d := range records {
		report.Records = append(report.Records, CourseReport{
			CourseID: d.CourseID,
			Date:     d.Date,
			Status:   d.Status,
			Notes:    d.Notes,
		})
		report.Statuses[d.CourseID.Hex()] = d.Status
	}
	return report, nil
}

// ListAll returns every absence record, for the admin overview screen.
func (s *DiligencyService) ListAll(ctx context.Context) ([]models.Diligency, error) {
	records, err := s.diligencies.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return records, nil
}
