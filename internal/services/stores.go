package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/internal/models"
)

// Store interfaces consumed by the services. The mongo repositories in
// internal/repository satisfy them; the service tests run against in-memory
// fakes. Lookup methods return (nil, nil) when no document matches.

// TxRunner executes fn atomically. Any error from fn aborts every write
// issued inside it.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type StudentStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Student, error)
	FindByMSV(ctx context.Context, msv string) (*models.Student, error)
	FindActive(ctx context.Context) ([]models.Student, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]models.Student, error)
	FindByMajorIDs(ctx context.Context, majorIDs []bson.ObjectID) ([]models.Student, error)
	Insert(ctx context.Context, s *models.Student) (bson.ObjectID, error)
	SetProfile(ctx context.Context, id bson.ObjectID, set bson.M) error
	SetEnrollment(ctx context.Context, id bson.ObjectID, majorIDs []bson.ObjectID, facultyID bson.ObjectID) error
	SetHomeroom(ctx context.Context, id, teacherID bson.ObjectID, classLabel string) error
	SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error
	RemoveMajorRef(ctx context.Context, majorID bson.ObjectID) error
}

type TeacherStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Teacher, error)
	FindByMGV(ctx context.Context, mgv string) (*models.Teacher, error)
	Insert(ctx context.Context, t *models.Teacher) (bson.ObjectID, error)
	SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	AddClassroom(ctx context.Context, teacherID, classroomID bson.ObjectID) error
	RemoveClassroom(ctx context.Context, teacherID, classroomID bson.ObjectID) error
	SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error
	SetDeletedByFaculty(ctx context.Context, facultyID bson.ObjectID, deleted bool) error
}

type ClassroomStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Classroom, error)
	FindByName(ctx context.Context, name string) (*models.Classroom, error)
	FindByTeacher(ctx context.Context, teacherID bson.ObjectID) (*models.Classroom, error)
	Insert(ctx context.Context, cr *models.Classroom) (bson.ObjectID, error)
	SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	AddStudent(ctx context.Context, classroomID, studentID bson.ObjectID) error
	RemoveStudent(ctx context.Context, classroomID, studentID bson.ObjectID) error
	RemoveStudentFromAll(ctx context.Context, studentID bson.ObjectID) error
	SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error
}

type MajorStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Major, error)
	FindByCode(ctx context.Context, code string) (*models.Major, error)
	FindActiveByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Major, error)
	SearchByName(ctx context.Context, keyword string) ([]models.Major, error)
	Insert(ctx context.Context, m *models.Major) (bson.ObjectID, error)
	SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	AddStudent(ctx context.Context, majorIDs []bson.ObjectID, studentID bson.ObjectID) error
	RemoveStudent(ctx context.Context, majorIDs []bson.ObjectID, studentID bson.ObjectID) error
	RemoveStudentFromAll(ctx context.Context, studentID bson.ObjectID) error
	DeleteByID(ctx context.Context, id bson.ObjectID) error
	SetDeletedByFaculty(ctx context.Context, facultyID bson.ObjectID, deleted bool) error
}

type FacultyStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Faculty, error)
	FindActiveByID(ctx context.Context, id bson.ObjectID) (*models.Faculty, error)
	FindByCode(ctx context.Context, code string) (*models.Faculty, error)
	FindByTeacher(ctx context.Context, teacherID bson.ObjectID) (*models.Faculty, error)
	Insert(ctx context.Context, f *models.Faculty) (bson.ObjectID, error)
	SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error
	AddMajor(ctx context.Context, facultyID, majorID bson.ObjectID) error
	RemoveMajor(ctx context.Context, facultyID, majorID bson.ObjectID) error
	AddTeacher(ctx context.Context, facultyID, teacherID bson.ObjectID) error
	RemoveTeacher(ctx context.Context, facultyID, teacherID bson.ObjectID) error
	SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error
}

type DiligencyStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Diligency, error)
	Exists(ctx context.Context, studentID, courseID bson.ObjectID, date time.Time) (bool, error)
	Insert(ctx context.Context, d *models.Diligency) (dup bool, err error)
	CountByStudentCourse(ctx context.Context, studentID, courseID bson.ObjectID) (int64, error)
	SetStatusByStudentCourse(ctx context.Context, studentID, courseID bson.ObjectID, status models.DiligencyStatus) error
	SetFields(ctx context.Context, id bson.ObjectID, set bson.M) (dup bool, err error)
	DeleteByID(ctx context.Context, id bson.ObjectID) error
	FindByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Diligency, error)
	FindAll(ctx context.Context) ([]models.Diligency, error)
}

type CourseStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Course, error)
	Insert(ctx context.Context, course *models.Course) (bson.ObjectID, error)
}

type TranscriptStore interface {
	Insert(ctx context.Context, t *models.Transcript) (bson.ObjectID, error)
	FindByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Transcript, error)
	SetDeletedByStudent(ctx context.Context, studentID bson.ObjectID, deleted bool) error
}
