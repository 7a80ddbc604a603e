package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/models"
)

// LifecycleService implements soft delete and restore with their
// cascades. Deleting hides a document and detaches it from membership
// arrays; restoring reverses both, so delete-then-restore round-trips.
type LifecycleService struct {
	tx          TxRunner
	students    StudentStore
	teachers    TeacherStore
	classrooms  ClassroomStore
	majors      MajorStore
	faculties   FacultyStore
	transcripts TranscriptStore
}

func NewLifecycleService(tx TxRunner, students StudentStore, teachers TeacherStore, classrooms ClassroomStore, majors MajorStore, faculties FacultyStore, transcripts TranscriptStore) *LifecycleService {
	return &LifecycleService{
		tx:          tx,
		students:    students,
		teachers:    teachers,
		classrooms:  classrooms,
		majors:      majors,
		faculties:   faculties,
		transcripts: transcripts,
	}
}

// DeleteStudent soft-deletes a student, pulls them from every classroom
// and major membership array and hides their transcripts. The student's
// forward refs (gvcn, majorIds) are kept so restore can re-attach.
func (s *LifecycleService) DeleteStudent(ctx context.Context, id bson.ObjectID) error {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if student == nil {
		return apperr.NotFound("Student not found")
	}
	if student.Deleted {
		return apperr.BadRequest("Student already deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.students.SetDeleted(txCtx, id, true); err != nil {
			return err
		}
		if err := s.classrooms.RemoveStudentFromAll(txCtx, id); err != nil {
			return err
		}
		if err := s.majors.RemoveStudentFromAll(txCtx, id); err != nil {
			return err
		}
		return s.transcripts.SetDeletedByStudent(txCtx, id, true)
	})
	return asAppErr(err)
}

// RestoreStudent undoes DeleteStudent, keyed by msv the way the restore
// screen submits it. Membership is rebuilt from the kept forward refs;
// refs whose target was deleted in the meantime are skipped.
func (s *LifecycleService) RestoreStudent(ctx context.Context, msv string) (*models.Student, error) {
	student, err := s.students.FindByMSV(ctx, msv)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil {
		return nil, apperr.NotFound("Student not found")
	}
	if !student.Deleted {
		return nil, apperr.BadRequest("Student not deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.students.SetDeleted(txCtx, student.ID, false); err != nil {
			return err
		}
		if len(student.MajorIDs) > 0 {
			live, err := s.majors.FindActiveByIDs(txCtx, student.MajorIDs)
			if err != nil {
				return err
			}
			liveIDs := make([]bson.ObjectID, 0, len(live))
			for _, m := range live {
				liveIDs = append(liveIDs, m.ID)
			}
			if err := s.majors.AddStudent(txCtx, liveIDs, student.ID); err != nil {
				return err
			}
		}
		if !student.TeacherID.IsZero() {
			classroom, err := s.classrooms.FindByTeacher(txCtx, student.TeacherID)
			if err != nil {
				return err
			}
			if classroom != nil {
				if err := s.classrooms.AddStudent(txCtx, classroom.ID, student.ID); err != nil {
					return err
				}
			}
		}
		return s.transcripts.SetDeletedByStudent(txCtx, student.ID, false)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.students.FindByID(ctx, student.ID)
}

// DeleteTeacher soft-deletes a teacher and detaches them from their
// faculty. Their classrooms and homeroom students keep the forward ref.
func (s *LifecycleService) DeleteTeacher(ctx context.Context, id bson.ObjectID) error {
	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if teacher == nil {
		return apperr.NotFound("Teacher not found")
	}
	if teacher.Deleted {
		return apperr.BadRequest("Teacher already deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.teachers.SetDeleted(txCtx, id, true); err != nil {
			return err
		}
		if !teacher.FacultyID.IsZero() {
			return s.faculties.RemoveTeacher(txCtx, teacher.FacultyID, id)
		}
		return nil
	})
	return asAppErr(err)
}

// RestoreTeacher undoes DeleteTeacher. The faculty link is rebuilt only
// when the faculty is still active.
func (s *LifecycleService) RestoreTeacher(ctx context.Context, id bson.ObjectID) (*models.Teacher, error) {
	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if teacher == nil {
		return nil, apperr.NotFound("Teacher not found")
	}
	if !teacher.Deleted {
		return nil, apperr.BadRequest("Teacher not deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.teachers.SetDeleted(txCtx, id, false); err != nil {
			return err
		}
		if !teacher.FacultyID.IsZero() {
			faculty, err := s.faculties.FindActiveByID(txCtx, teacher.FacultyID)
			if err != nil {
				return err
			}
			if faculty != nil {
				return s.faculties.AddTeacher(txCtx, faculty.ID, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.teachers.FindByID(ctx, id)
}

// DeleteClassroom soft-deletes a classroom and pulls it from its
// teacher's classrooms set. Member students are untouched.
func (s *LifecycleService) DeleteClassroom(ctx context.Context, id bson.ObjectID) error {
	classroom, err := s.classrooms.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if classroom == nil {
		return apperr.NotFound("Classroom not found")
	}
	if classroom.Deleted {
		return apperr.BadRequest("Classroom already deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.classrooms.SetDeleted(txCtx, id, true); err != nil {
			return err
		}
		if !classroom.TeacherID.IsZero() {
			return s.teachers.RemoveClassroom(txCtx, classroom.TeacherID, id)
		}
		return nil
	})
	return asAppErr(err)
}

// RestoreClassroom undoes DeleteClassroom and re-attaches the teacher
// link when the teacher is still active.
func (s *LifecycleService) RestoreClassroom(ctx context.Context, id bson.ObjectID) (*models.Classroom, error) {
	classroom, err := s.classrooms.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if classroom == nil {
		return nil, apperr.NotFound("Classroom not found")
	}
	if !classroom.Deleted {
		return nil, apperr.BadRequest("Classroom not deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.classrooms.SetDeleted(txCtx, id, false); err != nil {
			return err
		}
		if !classroom.TeacherID.IsZero() {
			teacher, err := s.teachers.FindByID(txCtx, classroom.TeacherID)
			if err != nil {
				return err
			}
			if teacher != nil && !teacher.Deleted {
				return s.teachers.AddClassroom(txCtx, teacher.ID, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.classrooms.FindByID(ctx, id)
}

// DeleteFaculty soft-deletes a faculty and cascades to its teachers and
// majors in the same transaction.
func (s *LifecycleService) DeleteFaculty(ctx context.Context, id bson.ObjectID) error {
	faculty, err := s.faculties.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if faculty == nil {
		return apperr.NotFound("Faculty not found")
	}
	if faculty.Deleted {
		return apperr.BadRequest("Faculty already deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.faculties.SetDeleted(txCtx, id, true); err != nil {
			return err
		}
		if err := s.teachers.SetDeletedByFaculty(txCtx, id, true); err != nil {
			return err
		}
		return s.majors.SetDeletedByFaculty(txCtx, id, true)
	})
	return asAppErr(err)
}

// RestoreFaculty undoes DeleteFaculty with the symmetric cascade, so the
// faculty's teachers and majors come back with it.
func (s *LifecycleService) RestoreFaculty(ctx context.Context, id bson.ObjectID) (*models.Faculty, error) {
	faculty, err := s.faculties.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if faculty == nil {
		return nil, apperr.NotFound("Faculty not found")
	}
	if !faculty.Deleted {
		return nil, apperr.BadRequest("Faculty not deleted")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.faculties.SetDeleted(txCtx, id, false); err != nil {
			return err
		}
		if err := s.teachers.SetDeletedByFaculty(txCtx, id, false); err != nil {
			return err
		}
		return s.majors.SetDeletedByFaculty(txCtx, id, false)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.faculties.FindByID(ctx, id)
}
