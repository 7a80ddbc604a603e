package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/internal/models"
)

// In-memory store fakes. They implement the same contracts as the mongo
// repositories, including (nil, nil) lookups, $addToSet/$pull semantics
// and the unique (studentId, courseId, date) constraint, so the services
// run unchanged against them.

type memDB struct {
	students    map[bson.ObjectID]models.Student
	teachers    map[bson.ObjectID]models.Teacher
	classrooms  map[bson.ObjectID]models.Classroom
	majors      map[bson.ObjectID]models.Major
	faculties   map[bson.ObjectID]models.Faculty
	diligencies map[bson.ObjectID]models.Diligency
	courses     map[bson.ObjectID]models.Course
	transcripts map[bson.ObjectID]models.Transcript
}

func newMemDB() *memDB {
	return &memDB{
		students:    map[bson.ObjectID]models.Student{},
		teachers:    map[bson.ObjectID]models.Teacher{},
		classrooms:  map[bson.ObjectID]models.Classroom{},
		majors:      map[bson.ObjectID]models.Major{},
		faculties:   map[bson.ObjectID]models.Faculty{},
		diligencies: map[bson.ObjectID]models.Diligency{},
		courses:     map[bson.ObjectID]models.Course{},
		transcripts: map[bson.ObjectID]models.Transcript{},
	}
}

func cloneOids(ids []bson.ObjectID) []bson.ObjectID {
	if ids == nil {
		return nil
	}
	out := make([]bson.ObjectID, len(ids))
	copy(out, ids)
	return out
}

func (db *memDB) clone() *memDB {
	c := newMemDB()
	for id, s := range db.students {
		s.MajorIDs = cloneOids(s.MajorIDs)
		c.students[id] = s
	}
	for id, t := range db.teachers {
		t.ClassroomIDs = cloneOids(t.ClassroomIDs)
		c.teachers[id] = t
	}
	for id, cr := range db.classrooms {
		cr.StudentIDs = cloneOids(cr.StudentIDs)
		c.classrooms[id] = cr
	}
	for id, m := range db.majors {
		m.StudentIDs = cloneOids(m.StudentIDs)
		m.CourseIDs = cloneOids(m.CourseIDs)
		c.majors[id] = m
	}
	for id, f := range db.faculties {
		f.TeacherIDs = cloneOids(f.TeacherIDs)
		f.MajorIDs = cloneOids(f.MajorIDs)
		c.faculties[id] = f
	}
	for id, d := range db.diligencies {
		c.diligencies[id] = d
	}
	for id, course := range db.courses {
		c.courses[id] = course
	}
	for id, t := range db.transcripts {
		c.transcripts[id] = t
	}
	return c
}

// memTx rolls the whole database back when fn fails, the way an aborted
// mongo transaction does.
type memTx struct{ db *memDB }

func (t *memTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	snapshot := t.db.clone()
	if err := fn(ctx); err != nil {
		*t.db = *snapshot
		return err
	}
	return nil
}

func addToSet(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

func pull(ids []bson.ObjectID, id bson.ObjectID) []bson.ObjectID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

type memStudents struct{ db *memDB }

func (s *memStudents) FindByID(_ context.Context, id bson.ObjectID) (*models.Student, error) {
	if st, ok := s.db.students[id]; ok {
		st.MajorIDs = cloneOids(st.MajorIDs)
		return &st, nil
	}
	return nil, nil
}

func (s *memStudents) FindByMSV(_ context.Context, msv string) (*models.Student, error) {
	for _, st := range s.db.students {
		if st.MSV == msv {
			st.MajorIDs = cloneOids(st.MajorIDs)
			return &st, nil
		}
	}
	return nil, nil
}

func (s *memStudents) FindActive(_ context.Context) ([]models.Student, error) {
	var out []models.Student
	for _, st := range s.db.students {
		if !st.Deleted && !st.IsAdmin {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *memStudents) SearchByKeyword(_ context.Context, keyword string) ([]models.Student, error) {
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
	var out []models.Student
	for _, st := range s.db.students {
		if st.Deleted || st.IsAdmin {
			continue
		}
		if re.MatchString(st.MSV) || re.MatchString(st.FullName) || re.MatchString(st.Email) ||
			re.MatchString(st.Phone) || re.MatchString(st.Class) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *memStudents) FindByMajorIDs(_ context.Context, majorIDs []bson.ObjectID) ([]models.Student, error) {
	var out []models.Student
	for _, st := range s.db.students {
		if st.Deleted {
			continue
		}
		for _, mid := range majorIDs {
			if st.HasMajor(mid) {
				out = append(out, st)
				break
			}
		}
	}
	return out, nil
}

func (s *memStudents) Insert(_ context.Context, st *models.Student) (bson.ObjectID, error) {
	if st.ID.IsZero() {
		st.ID = bson.NewObjectID()
	}
	st.CreatedAt = time.Now()
	st.UpdatedAt = st.CreatedAt
	s.db.students[st.ID] = *st
	return st.ID, nil
}

func (s *memStudents) SetEnrollment(_ context.Context, id bson.ObjectID, majorIDs []bson.ObjectID, facultyID bson.ObjectID) error {
	st := s.db.students[id]
	st.MajorIDs = cloneOids(majorIDs)
	st.FacultyID = facultyID
	s.db.students[id] = st
	return nil
}

func (s *memStudents) SetHomeroom(_ context.Context, id, teacherID bson.ObjectID, classLabel string) error {
	st := s.db.students[id]
	st.TeacherID = teacherID
	st.Class = classLabel
	s.db.students[id] = st
	return nil
}

func (s *memStudents) SetDeleted(_ context.Context, id bson.ObjectID, deleted bool) error {
	st := s.db.students[id]
	st.Deleted = deleted
	s.db.students[id] = st
	return nil
}

func (s *memStudents) SetProfile(_ context.Context, id bson.ObjectID, set bson.M) error {
	st := s.db.students[id]
	for k, v := range set {
		val, _ := v.(string)
		switch k {
		case "fullname":
			st.FullName = val
		case "email":
			st.Email = val
		case "address":
			st.Address = val
		case "dob":
			st.DOB = val
		case "phone":
			st.Phone = val
		case "gender":
			st.Gender = val
		case "password":
			st.Password = val
		default:
			if strings.HasPrefix(k, "parent.") {
				setParentField(&st.Parent, strings.TrimPrefix(k, "parent."), val)
			}
		}
	}
	s.db.students[id] = st
	return nil
}

func setParentField(p *models.ParentInfo, field, val string) {
	switch field {
	case "fatherName":
		p.FatherName = val
	case "motherName":
		p.MotherName = val
	case "fatherJob":
		p.FatherJob = val
	case "motherJob":
		p.MotherJob = val
	case "parentPhone":
		p.ParentPhone = val
	case "nation":
		p.Nation = val
	case "presentAddress":
		p.PresentAddress = val
	case "permanentAddress":
		p.PermanentAddress = val
	}
}

func (s *memStudents) RemoveMajorRef(_ context.Context, majorID bson.ObjectID) error {
	for id, st := range s.db.students {
		st.MajorIDs = pull(st.MajorIDs, majorID)
		s.db.students[id] = st
	}
	return nil
}

type memTeachers struct{ db *memDB }

func (s *memTeachers) FindByID(_ context.Context, id bson.ObjectID) (*models.Teacher, error) {
	if t, ok := s.db.teachers[id]; ok {
		t.ClassroomIDs = cloneOids(t.ClassroomIDs)
		return &t, nil
	}
	return nil, nil
}

func (s *memTeachers) FindByMGV(_ context.Context, mgv string) (*models.Teacher, error) {
	for _, t := range s.db.teachers {
		if t.MGV == mgv {
			t.ClassroomIDs = cloneOids(t.ClassroomIDs)
			return &t, nil
		}
	}
	return nil, nil
}

func (s *memTeachers) Insert(_ context.Context, t *models.Teacher) (bson.ObjectID, error) {
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	s.db.teachers[t.ID] = *t
	return t.ID, nil
}

func (s *memTeachers) SetFields(_ context.Context, id bson.ObjectID, set bson.M) error {
	t := s.db.teachers[id]
	for k, v := range set {
		switch k {
		case "mgv":
			t.MGV = v.(string)
		case "fullname":
			t.FullName = v.(string)
		case "faculty":
			t.FacultyID = v.(bson.ObjectID)
		}
	}
	s.db.teachers[id] = t
	return nil
}

func (s *memTeachers) AddClassroom(_ context.Context, teacherID, classroomID bson.ObjectID) error {
	t := s.db.teachers[teacherID]
	t.ClassroomIDs = addToSet(t.ClassroomIDs, classroomID)
	s.db.teachers[teacherID] = t
	return nil
}

func (s *memTeachers) RemoveClassroom(_ context.Context, teacherID, classroomID bson.ObjectID) error {
	t := s.db.teachers[teacherID]
	t.ClassroomIDs = pull(t.ClassroomIDs, classroomID)
	s.db.teachers[teacherID] = t
	return nil
}

func (s *memTeachers) SetDeleted(_ context.Context, id bson.ObjectID, deleted bool) error {
	t := s.db.teachers[id]
	t.Deleted = deleted
	s.db.teachers[id] = t
	return nil
}

func (s *memTeachers) SetDeletedByFaculty(_ context.Context, facultyID bson.ObjectID, deleted bool) error {
	for id, t := range s.db.teachers {
		if t.FacultyID == facultyID {
			t.Deleted = deleted
			s.db.teachers[id] = t
		}
	}
	return nil
}

type memClassrooms struct{ db *memDB }

func (s *memClassrooms) FindByID(_ context.Context, id bson.ObjectID) (*models.Classroom, error) {
	if cr, ok := s.db.classrooms[id]; ok {
		cr.StudentIDs = cloneOids(cr.StudentIDs)
		return &cr, nil
	}
	return nil, nil
}

func (s *memClassrooms) FindByName(_ context.Context, name string) (*models.Classroom, error) {
	for _, cr := range s.db.classrooms {
		if cr.Name == name {
			cr.StudentIDs = cloneOids(cr.StudentIDs)
			return &cr, nil
		}
	}
	return nil, nil
}

func (s *memClassrooms) FindByTeacher(_ context.Context, teacherID bson.ObjectID) (*models.Classroom, error) {
	for _, cr := range s.db.classrooms {
		if cr.TeacherID == teacherID && !cr.Deleted {
			cr.StudentIDs = cloneOids(cr.StudentIDs)
			return &cr, nil
		}
	}
	return nil, nil
}

func (s *memClassrooms) Insert(_ context.Context, cr *models.Classroom) (bson.ObjectID, error) {
	if cr.ID.IsZero() {
		cr.ID = bson.NewObjectID()
	}
	s.db.classrooms[cr.ID] = *cr
	return cr.ID, nil
}

func (s *memClassrooms) SetFields(_ context.Context, id bson.ObjectID, set bson.M) error {
	cr := s.db.classrooms[id]
	for k, v := range set {
		switch k {
		case "name":
			cr.Name = v.(string)
		case "year":
			cr.Year = v.(string)
		}
	}
	s.db.classrooms[id] = cr
	return nil
}

func (s *memClassrooms) AddStudent(_ context.Context, classroomID, studentID bson.ObjectID) error {
	cr := s.db.classrooms[classroomID]
	cr.StudentIDs = addToSet(cr.StudentIDs, studentID)
	s.db.classrooms[classroomID] = cr
	return nil
}

func (s *memClassrooms) RemoveStudent(_ context.Context, classroomID, studentID bson.ObjectID) error {
	cr := s.db.classrooms[classroomID]
	cr.StudentIDs = pull(cr.StudentIDs, studentID)
	s.db.classrooms[classroomID] = cr
	return nil
}

func (s *memClassrooms) RemoveStudentFromAll(_ context.Context, studentID bson.ObjectID) error {
	for id, cr := range s.db.classrooms {
		cr.StudentIDs = pull(cr.StudentIDs, studentID)
		s.db.classrooms[id] = cr
	}
	return nil
}

func (s *memClassrooms) SetDeleted(_ context.Context, id bson.ObjectID, deleted bool) error {
	cr := s.db.classrooms[id]
	cr.Deleted = deleted
	s.db.classrooms[id] = cr
	return nil
}

type memMajors struct{ db *memDB }

func (s *memMajors) FindByID(_ context.Context, id bson.ObjectID) (*models.Major, error) {
	if m, ok := s.db.majors[id]; ok {
		m.StudentIDs = cloneOids(m.StudentIDs)
		return &m, nil
	}
	return nil, nil
}

func (s *memMajors) FindByCode(_ context.Context, code string) (*models.Major, error) {
	for _, m := range s.db.majors {
		if m.Code == code && !m.Deleted {
			return &m, nil
		}
	}
	return nil, nil
}

func (s *memMajors) FindActiveByIDs(_ context.Context, ids []bson.ObjectID) ([]models.Major, error) {
	var out []models.Major
	for _, id := range ids {
		if m, ok := s.db.majors[id]; ok && !m.Deleted {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memMajors) SearchByName(_ context.Context, keyword string) ([]models.Major, error) {
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))
	var out []models.Major
	for _, m := range s.db.majors {
		if !m.Deleted && re.MatchString(m.Name) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *memMajors) Insert(_ context.Context, m *models.Major) (bson.ObjectID, error) {
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	s.db.majors[m.ID] = *m
	return m.ID, nil
}

func (s *memMajors) SetFields(_ context.Context, id bson.ObjectID, set bson.M) error {
	m := s.db.majors[id]
	for k, v := range set {
		switch k {
		case "name":
			m.Name = v.(string)
		case "code":
			m.Code = v.(string)
		case "faculty":
			m.FacultyID = v.(bson.ObjectID)
		}
	}
	s.db.majors[id] = m
	return nil
}

func (s *memMajors) AddStudent(_ context.Context, majorIDs []bson.ObjectID, studentID bson.ObjectID) error {
	for _, mid := range majorIDs {
		m := s.db.majors[mid]
		m.StudentIDs = addToSet(m.StudentIDs, studentID)
		s.db.majors[mid] = m
	}
	return nil
}

func (s *memMajors) RemoveStudent(_ context.Context, majorIDs []bson.ObjectID, studentID bson.ObjectID) error {
	for _, mid := range majorIDs {
		m := s.db.majors[mid]
		m.StudentIDs = pull(m.StudentIDs, studentID)
		s.db.majors[mid] = m
	}
	return nil
}

func (s *memMajors) RemoveStudentFromAll(_ context.Context, studentID bson.ObjectID) error {
	for id, m := range s.db.majors {
		m.StudentIDs = pull(m.StudentIDs, studentID)
		s.db.majors[id] = m
	}
	return nil
}

func (s *memMajors) DeleteByID(_ context.Context, id bson.ObjectID) error {
	delete(s.db.majors, id)
	return nil
}

func (s *memMajors) SetDeletedByFaculty(_ context.Context, facultyID bson.ObjectID, deleted bool) error {
	for id, m := range s.db.majors {
		if m.FacultyID == facultyID {
			m.Deleted = deleted
			s.db.majors[id] = m
		}
	}
	return nil
}

type memFaculties struct{ db *memDB }

func (s *memFaculties) FindByID(_ context.Context, id bson.ObjectID) (*models.Faculty, error) {
	if f, ok := s.db.faculties[id]; ok {
		f.TeacherIDs = cloneOids(f.TeacherIDs)
		f.MajorIDs = cloneOids(f.MajorIDs)
		return &f, nil
	}
	return nil, nil
}

func (s *memFaculties) FindActiveByID(ctx context.Context, id bson.ObjectID) (*models.Faculty, error) {
	f, _ := s.FindByID(ctx, id)
	if f == nil || f.Deleted {
		return nil, nil
	}
	return f, nil
}

func (s *memFaculties) FindByCode(_ context.Context, code string) (*models.Faculty, error) {
	for _, f := range s.db.faculties {
		if f.Code == code && !f.Deleted {
			return &f, nil
		}
	}
	return nil, nil
}

func (s *memFaculties) FindByTeacher(_ context.Context, teacherID bson.ObjectID) (*models.Faculty, error) {
	for _, f := range s.db.faculties {
		for _, tid := range f.TeacherIDs {
			if tid == teacherID {
				return &f, nil
			}
		}
	}
	return nil, nil
}

func (s *memFaculties) Insert(_ context.Context, f *models.Faculty) (bson.ObjectID, error) {
	if f.ID.IsZero() {
		f.ID = bson.NewObjectID()
	}
	s.db.faculties[f.ID] = *f
	return f.ID, nil
}

func (s *memFaculties) SetFields(_ context.Context, id bson.ObjectID, set bson.M) error {
	f := s.db.faculties[id]
	for k, v := range set {
		switch k {
		case "name":
			f.Name = v.(string)
		case "code":
			f.Code = v.(string)
		case "teachers":
			f.TeacherIDs = cloneOids(v.([]bson.ObjectID))
		case "majors":
			f.MajorIDs = cloneOids(v.([]bson.ObjectID))
		}
	}
	s.db.faculties[id] = f
	return nil
}

func (s *memFaculties) AddMajor(_ context.Context, facultyID, majorID bson.ObjectID) error {
	f := s.db.faculties[facultyID]
	f.MajorIDs = addToSet(f.MajorIDs, majorID)
	s.db.faculties[facultyID] = f
	return nil
}

func (s *memFaculties) RemoveMajor(_ context.Context, facultyID, majorID bson.ObjectID) error {
	f := s.db.faculties[facultyID]
	f.MajorIDs = pull(f.MajorIDs, majorID)
	s.db.faculties[facultyID] = f
	return nil
}

func (s *memFaculties) AddTeacher(_ context.Context, facultyID, teacherID bson.ObjectID) error {
	f := s.db.faculties[facultyID]
	f.TeacherIDs = addToSet(f.TeacherIDs, teacherID)
	s.db.faculties[facultyID] = f
	return nil
}

func (s *memFaculties) RemoveTeacher(_ context.Context, facultyID, teacherID bson.ObjectID) error {
	f := s.db.faculties[facultyID]
	f.TeacherIDs = pull(f.TeacherIDs, teacherID)
	s.db.faculties[facultyID] = f
	return nil
}

func (s *memFaculties) SetDeleted(_ context.Context, id bson.ObjectID, deleted bool) error {
	f := s.db.faculties[id]
	f.Deleted = deleted
	s.db.faculties[id] = f
	return nil
}

type memDiligencies struct{ db *memDB }

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (s *memDiligencies) FindByID(_ context.Context, id bson.ObjectID) (*models.Diligency, error) {
	if d, ok := s.db.diligencies[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (s *memDiligencies) Exists(_ context.Context, studentID, courseID bson.ObjectID, date time.Time) (bool, error) {
	for _, d := range s.db.diligencies {
		if d.StudentID == studentID && d.CourseID == courseID && sameDay(d.Date, date) {
			return true, nil
		}
	}
	return false, nil
}

func (s *memDiligencies) Insert(ctx context.Context, d *models.Diligency) (bool, error) {
	if dup, _ := s.Exists(ctx, d.StudentID, d.CourseID, d.Date); dup {
		return true, nil
	}
	if d.ID.IsZero() {
		d.ID = bson.NewObjectID()
	}
	if d.Status == "" {
		d.Status = models.StatusEligible
	}
	s.db.diligencies[d.ID] = *d
	return false, nil
}

func (s *memDiligencies) CountByStudentCourse(_ context.Context, studentID, courseID bson.ObjectID) (int64, error) {
	var n int64
	for _, d := range s.db.diligencies {
		if d.StudentID == studentID && d.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

func (s *memDiligencies) SetStatusByStudentCourse(_ context.Context, studentID, courseID bson.ObjectID, status models.DiligencyStatus) error {
	for id, d := range s.db.diligencies {
		if d.StudentID == studentID && d.CourseID == courseID {
			d.Status = status
			s.db.diligencies[id] = d
		}
	}
	return nil
}

func (s *memDiligencies) SetFields(_ context.Context, id bson.ObjectID, set bson.M) (bool, error) {
	d := s.db.diligencies[id]
	for k, v := range set {
		switch k {
		case "date":
			date := v.(time.Time)
			for other, o := range s.db.diligencies {
				if other != id && o.StudentID == d.StudentID && o.CourseID == d.CourseID && sameDay(o.Date, date) {
					return true, nil
				}
			}
			d.Date = date
		case "notes":
			d.Notes = v.(string)
		}
	}
	s.db.diligencies[id] = d
	return false, nil
}

func (s *memDiligencies) DeleteByID(_ context.Context, id bson.ObjectID) error {
	delete(s.db.diligencies, id)
	return nil
}

func (s *memDiligencies) FindByStudent(_ context.Context, studentID bson.ObjectID) ([]models.Diligency, error) {
	var out []models.Diligency
	for _, d := range s.db.diligencies {
		if d.StudentID == studentID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *memDiligencies) FindAll(_ context.Context) ([]models.Diligency, error) {
	var out []models.Diligency
	for _, d := range s.db.diligencies {
		out = append(out, d)
	}
	return out, nil
}

type memCourses struct{ db *memDB }

func (s *memCourses) FindByID(_ context.Context, id bson.ObjectID) (*models.Course, error) {
	if c, ok := s.db.courses[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *memCourses) Insert(_ context.Context, c *models.Course) (bson.ObjectID, error) {
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	s.db.courses[c.ID] = *c
	return c.ID, nil
}

type memTranscripts struct{ db *memDB }

func (s *memTranscripts) Insert(_ context.Context, t *models.Transcript) (bson.ObjectID, error) {
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	s.db.transcripts[t.ID] = *t
	return t.ID, nil
}

func (s *memTranscripts) FindByStudent(_ context.Context, studentID bson.ObjectID) ([]models.Transcript, error) {
	var out []models.Transcript
	for _, t := range s.db.transcripts {
		if t.StudentID == studentID && !t.Deleted {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memTranscripts) SetDeletedByStudent(_ context.Context, studentID bson.ObjectID, deleted bool) error {
	for id, t := range s.db.transcripts {
		if t.StudentID == studentID {
			t.Deleted = deleted
			s.db.transcripts[id] = t
		}
	}
	return nil
}

// env bundles the fakes for a test.
type env struct {
	db          *memDB
	tx          *memTx
	students    *memStudents
	teachers    *memTeachers
	classrooms  *memClassrooms
	majors      *memMajors
	faculties   *memFaculties
	diligencies *memDiligencies
	courses     *memCourses
	transcripts *memTranscripts
}

func newEnv() *env {
	db := newMemDB()
	return &env{
		db:          db,
		tx:          &memTx{db: db},
		students:    &memStudents{db: db},
		teachers:    &memTeachers{db: db},
		classrooms:  &memClassrooms{db: db},
		majors:      &memMajors{db: db},
		faculties:   &memFaculties{db: db},
		diligencies: &memDiligencies{db: db},
		courses:     &memCourses{db: db},
		transcripts: &memTranscripts{db: db},
	}
}

// Seed helpers.

func (e *env) addTeacher(mgv string, facultyID bson.ObjectID) bson.ObjectID {
	t := models.Teacher{ID: bson.NewObjectID(), MGV: mgv, FullName: "GV " + mgv, IsGV: true, FacultyID: facultyID}
	e.db.teachers[t.ID] = t
	if !facultyID.IsZero() {
		f := e.db.faculties[facultyID]
		f.TeacherIDs = addToSet(f.TeacherIDs, t.ID)
		e.db.faculties[facultyID] = f
	}
	return t.ID
}

func (e *env) addClassroom(name string, teacherID bson.ObjectID) bson.ObjectID {
	cr := models.Classroom{ID: bson.NewObjectID(), Name: name, TeacherID: teacherID, Year: "2026"}
	e.db.classrooms[cr.ID] = cr
	t := e.db.teachers[teacherID]
	t.ClassroomIDs = addToSet(t.ClassroomIDs, cr.ID)
	e.db.teachers[teacherID] = t
	return cr.ID
}

func (e *env) addFaculty(name, code string) bson.ObjectID {
	f := models.Faculty{ID: bson.NewObjectID(), Name: name, Code: code}
	e.db.faculties[f.ID] = f
	return f.ID
}

func (e *env) addMajor(name, code string, facultyID bson.ObjectID) bson.ObjectID {
	m := models.Major{ID: bson.NewObjectID(), Name: name, Code: code, FacultyID: facultyID}
	e.db.majors[m.ID] = m
	if !facultyID.IsZero() {
		f := e.db.faculties[facultyID]
		f.MajorIDs = addToSet(f.MajorIDs, m.ID)
		e.db.faculties[facultyID] = f
	}
	return m.ID
}

func (e *env) addCourse(name, code string) bson.ObjectID {
	c := models.Course{ID: bson.NewObjectID(), Name: name, Code: code}
	e.db.courses[c.ID] = c
	return c.ID
}
