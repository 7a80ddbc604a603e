package services

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/models"
	"uniadmin_backend/utils"
)

// EnrollmentService owns every write that touches student membership
// arrays: creation, major reassignment and homeroom reassignment. No other
// code mutates majors.students or classrooms.students for a student, so
// the forward refs and the inverse arrays can only move together.
type EnrollmentService struct {
	tx         TxRunner
	students   StudentStore
	teachers   TeacherStore
	classrooms ClassroomStore
	majors     MajorStore
}

func NewEnrollmentService(tx TxRunner, students StudentStore, teachers TeacherStore, classrooms ClassroomStore, majors MajorStore) *EnrollmentService {
	return &EnrollmentService{tx: tx, students: students, teachers: teachers, classrooms: classrooms, majors: majors}
}

// CreateStudent enrolls a new student: resolves the homeroom teacher and
// every major up front, then inserts the document and adds the student to
// the majors' and classroom's membership arrays in one transaction. The
// initial password is the msv.
func (s *EnrollmentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*models.Student, error) {
	existing, err := s.students.FindByMSV(ctx, req.MSV)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil && !existing.Deleted {
		return nil, apperr.BadRequest("Student already exists")
	}
	if existing != nil && existing.Deleted {
		return nil, apperr.BadRequest("Student deleted, You want to restore student")
	}

	teacherID, err := utils.Oid(req.GVCN)
	if err != nil {
		return nil, apperr.BadRequest("invalid gvcn")
	}
	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if teacher == nil || teacher.Deleted {
		return nil, apperr.NotFound("Teacher not found")
	}

	majorIDs, err := utils.Oids(req.MajorIDs)
	if err != nil {
		return nil, apperr.BadRequest("invalid majorIds")
	}
	majorIDs = utils.DedupeOids(majorIDs)
	majors, err := s.resolveMajors(ctx, majorIDs)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MSV), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	student := &models.Student{
		Deleted:   false,
		TeacherID: teacherID,
		FullName:  req.FullName,
		MSV:       req.MSV,
		Password:  string(hash),
		MajorIDs:  majorIDs,
		FacultyID: sharedFaculty(majors),
		Year:      req.Year,
		Gender:    req.Gender,
		Email:     req.Email,
		Class:     req.ClassName,
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.students.Insert(txCtx, student)
		if err != nil {
			return err
		}
		if err := s.majors.AddStudent(txCtx, majorIDs, id); err != nil {
			return err
		}
		return s.joinClassroom(txCtx, student, teacherID, req.ClassName == "")
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return student, nil
}

// AssignMajors replaces the student's major set. An empty set clears all
// membership; it is not an error.
func (s *EnrollmentService) AssignMajors(ctx context.Context, studentID bson.ObjectID, majorIDs []bson.ObjectID) (*models.Student, error) {
	student, err := s.activeStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	majorIDs = utils.DedupeOids(majorIDs)
	majors, err := s.resolveMajors(ctx, majorIDs)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.applyMajors(txCtx, student, majorIDs, majors)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.students.FindByID(ctx, studentID)
}

// AssignHomeroom moves the student to a new homeroom teacher, keeping the
// old and new classrooms' membership arrays in step.
func (s *EnrollmentService) AssignHomeroom(ctx context.Context, studentID, teacherID bson.ObjectID) (*models.Student, error) {
	student, err := s.activeStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if teacher == nil || teacher.Deleted {
		return nil, apperr.NotFound("Teacher not found")
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.applyHomeroom(txCtx, student, teacherID)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.students.FindByID(ctx, studentID)
}

// AdminUpdate reassigns homeroom teacher and majors together, as one
// transaction, the way the admin update screen submits them.
func (s *EnrollmentService) AdminUpdate(ctx context.Context, studentID bson.ObjectID, req dto.AdminUpdateStudentRequest) (*models.Student, error) {
	student, err := s.activeStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	teacherID, err := utils.Oid(req.GVCN)
	if err != nil {
		return nil, apperr.BadRequest("invalid gvcn")
	}
	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if teacher == nil || teacher.Deleted {
		return nil, apperr.NotFound("Teacher not found")
	}

	majorIDs, err := utils.Oids(req.MajorIDs)
	if err != nil {
		return nil, apperr.BadRequest("invalid majorIds")
	}
	majorIDs = utils.DedupeOids(majorIDs)
	majors, err := s.resolveMajors(ctx, majorIDs)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.applyMajors(txCtx, student, majorIDs, majors); err != nil {
			return err
		}
		return s.applyHomeroom(txCtx, student, teacherID)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.students.FindByID(ctx, studentID)
}

// applyMajors runs inside a transaction: pull the student from the old
// majors, add to the new ones, overwrite the forward refs.
func (s *EnrollmentService) applyMajors(txCtx context.Context, student *models.Student, majorIDs []bson.ObjectID, majors []models.Major) error {
	if err := s.majors.RemoveStudent(txCtx, student.MajorIDs, student.ID); err != nil {
		return err
	}
	if err := s.majors.AddStudent(txCtx, majorIDs, student.ID); err != nil {
		return err
	}
	return s.students.SetEnrollment(txCtx, student.ID, majorIDs, sharedFaculty(majors))
}

// applyHomeroom runs inside a transaction: leave the old teacher's
// classroom, join the new one (warning-only when the teacher manages no
// classroom), set the forward ref and class label.
func (s *EnrollmentService) applyHomeroom(txCtx context.Context, student *models.Student, teacherID bson.ObjectID) error {
	if !student.TeacherID.IsZero() && student.TeacherID != teacherID {
		old, err := s.classrooms.FindByTeacher(txCtx, student.TeacherID)
		if err != nil {
			return err
		}
		if old != nil {
			if err := s.classrooms.RemoveStudent(txCtx, old.ID, student.ID); err != nil {
				return err
			}
		}
	}
	return s.joinClassroom(txCtx, student, teacherID, true)
}

func (s *EnrollmentService) joinClassroom(txCtx context.Context, student *models.Student, teacherID bson.ObjectID, relabel bool) error {
	classroom, err := s.classrooms.FindByTeacher(txCtx, teacherID)
	if err != nil {
		return err
	}
	label := student.Class
	if classroom == nil {
		log.Printf("warn: teacher %s manages no classroom, student %s not placed", teacherID.Hex(), student.MSV)
	} else {
		if err := s.classrooms.AddStudent(txCtx, classroom.ID, student.ID); err != nil {
			return err
		}
		if relabel {
			label = classroom.Name
		}
	}
	return s.students.SetHomeroom(txCtx, student.ID, teacherID, label)
}

func (s *EnrollmentService) activeStudent(ctx context.Context, id bson.ObjectID) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil {
		return nil, apperr.NotFound("Student not found")
	}
	if student.Deleted {
		return nil, apperr.BadRequest("Student deleted, You want to restore student")
	}
	return student, nil
}

// resolveMajors resolves ids to active majors, failing when any id is
// unknown or soft-deleted.
func (s *EnrollmentService) resolveMajors(ctx context.Context, ids []bson.ObjectID) ([]models.Major, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	majors, err := s.majors.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(majors) != len(ids) {
		return nil, apperr.NotFound("One or more majors not found")
	}
	return majors, nil
}

// sharedFaculty returns the single faculty all majors belong to, or zero
// when the set is empty or spans faculties (the denormalized ref is then
// left unset).
func sharedFaculty(majors []models.Major) bson.ObjectID {
	var fid bson.ObjectID
	for _, m := range majors {
		if fid.IsZero() {
			fid = m.FacultyID
			continue
		}
		if m.FacultyID != fid {
			return bson.NilObjectID
		}
	}
	return fid
}

// asAppErr keeps typed errors from inside a transaction intact and wraps
// raw store errors.
func asAppErr(err error) error {
	if err == nil {
		return nil
	}
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae
	}
	return apperr.Internal(err)
}
