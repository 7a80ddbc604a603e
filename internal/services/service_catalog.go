package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/models"
	"uniadmin_backend/utils"
)

// CatalogService handles the organizational entities: faculties, majors,
// teachers, classrooms and courses. Any write touching a membership array
// updates both sides in one transaction.
type CatalogService struct {
	tx         TxRunner
	students   StudentStore
	teachers   TeacherStore
	classrooms ClassroomStore
	majors     MajorStore
	faculties  FacultyStore
	courses    CourseStore
}

func NewCatalogService(tx TxRunner, students StudentStore, teachers TeacherStore, classrooms ClassroomStore, majors MajorStore, faculties FacultyStore, courses CourseStore) *CatalogService {
	return &CatalogService{
		tx:         tx,
		students:   students,
		teachers:   teachers,
		classrooms: classrooms,
		majors:     majors,
		faculties:  faculties,
		courses:    courses,
	}
}

// CreateFaculty inserts a faculty and points the listed teachers and
// majors at it.
func (s *CatalogService) CreateFaculty(ctx context.Context, req dto.CreateFacultyRequest) (*models.Faculty, error) {
	existing, err := s.faculties.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Faculty already exists")
	}

	teacherIDs, err := utils.Oids(req.Teachers)
	if err != nil {
		return nil, apperr.BadRequest("invalid teachers")
	}
	teacherIDs = utils.DedupeOids(teacherIDs)
	teacherDocs, err := s.resolveFacultyTeachers(ctx, teacherIDs)
	if err != nil {
		return nil, err
	}
	majorIDs, err := utils.Oids(req.Majors)
	if err != nil {
		return nil, apperr.BadRequest("invalid majors")
	}
	majorIDs = utils.DedupeOids(majorIDs)
	majorDocs, err := s.resolveFacultyMajors(ctx, majorIDs)
	if err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		Name:       req.Name,
		Code:       req.Code,
		TeacherIDs: teacherIDs,
		MajorIDs:   majorIDs,
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.faculties.Insert(txCtx, faculty)
		if err != nil {
			return err
		}
		for _, t := range teacherDocs {
			if err := s.moveTeacherRef(txCtx, t, id); err != nil {
				return err
			}
		}
		for _, m := range majorDocs {
			if err := s.moveMajorRef(txCtx, m, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return faculty, nil
}

// UpdateFaculty patches name and code, and when the request carries a
// teachers or majors slice, replaces that membership set: departing
// members lose the forward ref, joining members gain it.
func (s *CatalogService) UpdateFaculty(ctx context.Context, id bson.ObjectID, req dto.UpdateFacultyRequest) (*models.Faculty, error) {
	faculty, err := s.faculties.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if faculty == nil {
		return nil, apperr.NotFound("Faculty not found")
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Code != "" {
		set["code"] = req.Code
	}

	var newTeachers, newMajors []bson.ObjectID
	var teacherDocs []models.Teacher
	var majorDocs []models.Major
	if req.Teachers != nil {
		newTeachers, err = utils.Oids(*req.Teachers)
		if err != nil {
			return nil, apperr.BadRequest("invalid teachers")
		}
		newTeachers = utils.DedupeOids(newTeachers)
		teacherDocs, err = s.resolveFacultyTeachers(ctx, newTeachers)
		if err != nil {
			return nil, err
		}
		set["teachers"] = newTeachers
	}
	if req.Majors != nil {
		newMajors, err = utils.Oids(*req.Majors)
		if err != nil {
			return nil, apperr.BadRequest("invalid majors")
		}
		newMajors = utils.DedupeOids(newMajors)
		majorDocs, err = s.resolveFacultyMajors(ctx, newMajors)
		if err != nil {
			return nil, err
		}
		set["majors"] = newMajors
	}
	if len(set) == 0 {
		return faculty, nil
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.faculties.SetFields(txCtx, id, set); err != nil {
			return err
		}
		if req.Teachers != nil {
			for _, tid := range diffOids(faculty.TeacherIDs, newTeachers) {
				if err := s.teachers.SetFields(txCtx, tid, bson.M{"faculty": bson.NilObjectID}); err != nil {
					return err
				}
			}
			joining := diffOids(newTeachers, faculty.TeacherIDs)
			for _, t := range teacherDocs {
				if !containsOid(joining, t.ID) {
					continue
				}
				if err := s.moveTeacherRef(txCtx, t, id); err != nil {
					return err
				}
			}
		}
		if req.Majors != nil {
			for _, mid := range diffOids(faculty.MajorIDs, newMajors) {
				if err := s.majors.SetFields(txCtx, mid, bson.M{"faculty": bson.NilObjectID}); err != nil {
					return err
				}
			}
			joining := diffOids(newMajors, faculty.MajorIDs)
			for _, m := range majorDocs {
				if !containsOid(joining, m.ID) {
					continue
				}
				if err := s.moveMajorRef(txCtx, m, id); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.faculties.FindByID(ctx, id)
}

// CreateMajor inserts a major under an active faculty and adds it to the
// faculty's majors set.
func (s *CatalogService) CreateMajor(ctx context.Context, req dto.CreateMajorRequest) (*models.Major, error) {
	existing, err := s.majors.FindByCode(ctx, req.Code)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Major already exists")
	}

	facultyID, err := utils.Oid(req.FacultyID)
	if err != nil {
		return nil, apperr.BadRequest("invalid facultyId")
	}
	faculty, err := s.faculties.FindActiveByID(ctx, facultyID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if faculty == nil {
		return nil, apperr.NotFound("Faculty not found")
	}

	major := &models.Major{
		Name:      req.Name,
		Code:      req.Code,
		FacultyID: facultyID,
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.majors.Insert(txCtx, major)
		if err != nil {
			return err
		}
		return s.faculties.AddMajor(txCtx, facultyID, id)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return major, nil
}

// UpdateMajor patches name, code and faculty. A faculty move swaps the
// major between the two faculties' majors sets in one transaction.
func (s *CatalogService) UpdateMajor(ctx context.Context, id bson.ObjectID, req dto.UpdateMajorRequest) (*models.Major, error) {
	major, err := s.majors.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if major == nil || major.Deleted {
		return nil, apperr.NotFound("Major not found")
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Code != "" {
		set["code"] = req.Code
	}

	var newFaculty bson.ObjectID
	if req.FacultyID != "" {
		newFaculty, err = utils.Oid(req.FacultyID)
		if err != nil {
			return nil, apperr.BadRequest("invalid facultyId")
		}
		if newFaculty != major.FacultyID {
			faculty, err := s.faculties.FindActiveByID(ctx, newFaculty)
			if err != nil {
				return nil, apperr.Internal(err)
			}
			if faculty == nil {
				return nil, apperr.NotFound("Faculty not found")
			}
			set["faculty"] = newFaculty
		}
	}
	if len(set) == 0 {
		return major, nil
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.majors.SetFields(txCtx, id, set); err != nil {
			return err
		}
		if _, moved := set["faculty"]; moved {
			if !major.FacultyID.IsZero() {
				if err := s.faculties.RemoveMajor(txCtx, major.FacultyID, id); err != nil {
					return err
				}
			}
			return s.faculties.AddMajor(txCtx, newFaculty, id)
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.majors.FindByID(ctx, id)
}

// DeleteMajor removes a major permanently: the document, the faculty's
// reference, and the major id held by every enrolled student.
func (s *CatalogService) DeleteMajor(ctx context.Context, id bson.ObjectID) error {
	major, err := s.majors.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if major == nil {
		return apperr.NotFound("Major not found")
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.majors.DeleteByID(txCtx, id); err != nil {
			return err
		}
		if !major.FacultyID.IsZero() {
			if err := s.faculties.RemoveMajor(txCtx, major.FacultyID, id); err != nil {
				return err
			}
		}
		return s.students.RemoveMajorRef(txCtx, id)
	})
	return asAppErr(err)
}

// CreateTeacher inserts a teacher under an active faculty. The initial
// password is the mgv.
func (s *CatalogService) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest) (*models.Teacher, error) {
	existing, err := s.teachers.FindByMGV(ctx, req.MGV)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Teacher already exists")
	}

	facultyID, err := utils.Oid(req.FacultyID)
	if err != nil {
		return nil, apperr.BadRequest("invalid facultyId")
	}
	faculty, err := s.faculties.FindActiveByID(ctx, facultyID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if faculty == nil {
		return nil, apperr.NotFound("Faculty not found")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.MGV), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	teacher := &models.Teacher{
		MGV:       req.MGV,
		FullName:  req.FullName,
		Password:  string(hash),
		IsGV:      true,
		FacultyID: facultyID,
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.teachers.Insert(txCtx, teacher)
		if err != nil {
			return err
		}
		return s.faculties.AddTeacher(txCtx, facultyID, id)
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return teacher, nil
}

// UpdateTeacher patches mgv, fullname and faculty. A faculty move swaps
// the teacher between the two faculties' teachers sets.
func (s *CatalogService) UpdateTeacher(ctx context.Context, id bson.ObjectID, req dto.UpdateTeacherRequest) (*models.Teacher, error) {
	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if teacher == nil || teacher.Deleted {
		return nil, apperr.NotFound("Teacher not found")
	}

	set := bson.M{}
	if req.MGV != "" && req.MGV != teacher.MGV {
		dup, err := s.teachers.FindByMGV(ctx, req.MGV)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if dup != nil {
			return nil, apperr.Conflict("Teacher already exists")
		}
		set["mgv"] = req.MGV
	}
	if req.FullName != "" {
		set["fullname"] = req.FullName
	}

	var newFaculty bson.ObjectID
	if req.FacultyID != "" {
		newFaculty, err = utils.Oid(req.FacultyID)
		if err != nil {
			return nil, apperr.BadRequest("invalid facultyId")
		}
		if newFaculty != teacher.FacultyID {
			faculty, err := s.faculties.FindActiveByID(ctx, newFaculty)
			if err != nil {
				return nil, apperr.Internal(err)
			}
			if faculty == nil {
				return nil, apperr.NotFound("Faculty not found")
			}
			set["faculty"] = newFaculty
		}
	}
	if len(set) == 0 {
		return teacher, nil
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.teachers.SetFields(txCtx, id, set); err != nil {
			return err
		}
		if _, moved := set["faculty"]; moved {
			if !teacher.FacultyID.IsZero() {
				if err := s.faculties.RemoveTeacher(txCtx, teacher.FacultyID, id); err != nil {
					return err
				}
			}
			return s.faculties.AddTeacher(txCtx, newFaculty, id)
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return s.teachers.FindByID(ctx, id)
}

// CreateClassroom inserts a classroom, adds it to the homeroom teacher's
// classrooms set and places the listed students in it.
func (s *CatalogService) CreateClassroom(ctx context.Context, req dto.CreateClassroomRequest) (*models.Classroom, error) {
	existing, err := s.classrooms.FindByName(ctx, req.Name)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("Classroom already exists")
	}

	teacherID, err := utils.Oid(req.Teacher)
	if err != nil {
		return nil, apperr.BadRequest("invalid teacher")
	}
	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if teacher == nil || teacher.Deleted {
		return nil, apperr.NotFound("Teacher not found")
	}

	studentIDs, err := utils.Oids(req.Students)
	if err != nil {
		return nil, apperr.BadRequest("invalid students")
	}
	studentIDs = utils.DedupeOids(studentIDs)
	studentDocs := make([]models.Student, 0, len(studentIDs))
	for _, sid := range studentIDs {
		student, err := s.students.FindByID(ctx, sid)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if student == nil || student.Deleted {
			return nil, apperr.NotFound("Student not found")
		}
		studentDocs = append(studentDocs, *student)
	}

	classroom := &models.Classroom{
		Name:       req.Name,
		TeacherID:  teacherID,
		StudentIDs: studentIDs,
		Year:       req.Year,
	}
	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.classrooms.Insert(txCtx, classroom)
		if err != nil {
			return err
		}
		if err := s.teachers.AddClassroom(txCtx, teacherID, id); err != nil {
			return err
		}
		for _, st := range studentDocs {
			if !st.TeacherID.IsZero() && st.TeacherID != teacherID {
				old, err := s.classrooms.FindByTeacher(txCtx, st.TeacherID)
				if err != nil {
					return err
				}
				if old != nil {
					if err := s.classrooms.RemoveStudent(txCtx, old.ID, st.ID); err != nil {
						return err
					}
				}
			}
			if err := s.students.SetHomeroom(txCtx, st.ID, teacherID, req.Name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, asAppErr(err)
	}
	return classroom, nil
}

// UpdateClassroom patches name and year.
func (s *CatalogService) UpdateClassroom(ctx context.Context, id bson.ObjectID, req dto.UpdateClassroomRequest) (*models.Classroom, error) {
	classroom, err := s.classrooms.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if classroom == nil || classroom.Deleted {
		return nil, apperr.NotFound("Classroom not found")
	}
	set := bson.M{}
	if req.Name != "" && req.Name != classroom.Name {
		dup, err := s.classrooms.FindByName(ctx, req.Name)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if dup != nil {
			return nil, apperr.Conflict("Classroom already exists")
		}
		set["name"] = req.Name
	}
	if req.Year != "" {
		set["year"] = req.Year
	}
	if len(set) == 0 {
		return classroom, nil
	}
	if err := s.classrooms.SetFields(ctx, id, set); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.classrooms.FindByID(ctx, id)
}

// CreateCourse inserts a course.
func (s *CatalogService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{Name: req.Name, Code: req.Code}
	if _, err := s.courses.Insert(ctx, course); err != nil {
		return nil, apperr.Internal(err)
	}
	return course, nil
}

// resolveFacultyTeachers resolves ids to active teachers, failing when any
// id is unknown or soft-deleted.
func (s *CatalogService) resolveFacultyTeachers(ctx context.Context, ids []bson.ObjectID) ([]models.Teacher, error) {
	out := make([]models.Teacher, 0, len(ids))
	for _, id := range ids {
		t, err := s.teachers.FindByID(ctx, id)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if t == nil || t.Deleted {
			return nil, apperr.BadRequest("Some teacher IDs are invalid")
		}
		out = append(out, *t)
	}
	return out, nil
}

func (s *CatalogService) resolveFacultyMajors(ctx context.Context, ids []bson.ObjectID) ([]models.Major, error) {
	out := make([]models.Major, 0, len(ids))
	for _, id := range ids {
		m, err := s.majors.FindByID(ctx, id)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if m == nil || m.Deleted {
			return nil, apperr.BadRequest("Some major IDs are invalid")
		}
		out = append(out, *m)
	}
	return out, nil
}

// moveTeacherRef runs inside a transaction: point the teacher at the
// faculty, pulling it from its previous faculty's set first.
func (s *CatalogService) moveTeacherRef(txCtx context.Context, t models.Teacher, facultyID bson.ObjectID) error {
	if !t.FacultyID.IsZero() && t.FacultyID != facultyID {
		if err := s.faculties.RemoveTeacher(txCtx, t.FacultyID, t.ID); err != nil {
			return err
		}
	}
	return s.teachers.SetFields(txCtx, t.ID, bson.M{"faculty": facultyID})
}

func (s *CatalogService) moveMajorRef(txCtx context.Context, m models.Major, facultyID bson.ObjectID) error {
	if !m.FacultyID.IsZero() && m.FacultyID != facultyID {
		if err := s.faculties.RemoveMajor(txCtx, m.FacultyID, m.ID); err != nil {
			return err
		}
	}
	return s.majors.SetFields(txCtx, m.ID, bson.M{"faculty": facultyID})
}

func containsOid(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// diffOids returns the ids in a that are not in b.
func diffOids(a, b []bson.ObjectID) []bson.ObjectID {
	inB := make(map[bson.ObjectID]struct{}, len(b))
	for _, id := range b {
		inB[id] = struct{}{}
	}
	var out []bson.ObjectID
	for _, id := range a {
		if _, ok := inB[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
