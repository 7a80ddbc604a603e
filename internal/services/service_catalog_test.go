package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
)

func newCatalog(e *env) *CatalogService {
	return NewCatalogService(e.tx, e.students, e.teachers, e.classrooms, e.majors, e.faculties, e.courses)
}

func TestCreateMajorLinksFaculty(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")

	svc := newCatalog(e)
	m, err := svc.CreateMajor(context.Background(), dto.CreateMajorRequest{
		Name: "Khoa học máy tính", Code: "KHMT", FacultyID: fac.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, fac, m.FacultyID)
	assert.Contains(t, e.db.faculties[fac].MajorIDs, m.ID)
}

func TestCreateMajorUnknownFacultyLeavesNothing(t *testing.T) {
	e := newEnv()
	svc := newCatalog(e)
	_, err := svc.CreateMajor(context.Background(), dto.CreateMajorRequest{
		Name: "KHMT", Code: "KHMT", FacultyID: bson.NewObjectID().Hex(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.Empty(t, e.db.majors, "failed create must not leave a document")
}

func TestCreateMajorDeletedFacultyRejected(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	f := e.db.faculties[fac]
	f.Deleted = true
	e.db.faculties[fac] = f

	_, err := newCatalog(e).CreateMajor(context.Background(), dto.CreateMajorRequest{
		Name: "KHMT", Code: "KHMT", FacultyID: fac.Hex(),
	})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound), "soft-deleted faculty cannot take new majors")
}

func TestUpdateMajorMovesBetweenFaculties(t *testing.T) {
	e := newEnv()
	f1 := e.addFaculty("CNTT", "FIT")
	f2 := e.addFaculty("Điện tử", "FET")
	major := e.addMajor("KHMT", "KHMT", f1)

	updated, err := newCatalog(e).UpdateMajor(context.Background(), major, dto.UpdateMajorRequest{
		FacultyID: f2.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, f2, updated.FacultyID)
	assert.NotContains(t, e.db.faculties[f1].MajorIDs, major)
	assert.Contains(t, e.db.faculties[f2].MajorIDs, major)
}

func TestDeleteMajorDetachesEverywhere(t *testing.T) {
	e := newEnv()
	st, _, major := seedStudent(t, e)
	facID := e.db.majors[major].FacultyID

	require.NoError(t, newCatalog(e).DeleteMajor(context.Background(), major))
	_, ok := e.db.majors[major]
	assert.False(t, ok, "major is removed for good")
	assert.NotContains(t, e.db.faculties[facID].MajorIDs, major)
	assert.NotContains(t, e.db.students[st.ID].MajorIDs, major, "students drop the dead ref")
}

func TestCreateTeacherDuplicateMGV(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")

	svc := newCatalog(e)
	first, err := svc.CreateTeacher(context.Background(), dto.CreateTeacherRequest{
		MGV: "GV001", FullName: "Trần Thị B", FacultyID: fac.Hex(),
	})
	require.NoError(t, err)
	assert.True(t, first.IsGV)
	assert.Contains(t, e.db.faculties[fac].TeacherIDs, first.ID)

	_, err = svc.CreateTeacher(context.Background(), dto.CreateTeacherRequest{
		MGV: "GV001", FullName: "Khác", FacultyID: fac.Hex(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUpdateTeacherMovesFaculty(t *testing.T) {
	e := newEnv()
	f1 := e.addFaculty("CNTT", "FIT")
	f2 := e.addFaculty("Điện tử", "FET")
	gv := e.addTeacher("GV001", f1)

	updated, err := newCatalog(e).UpdateTeacher(context.Background(), gv, dto.UpdateTeacherRequest{
		FacultyID: f2.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, f2, updated.FacultyID)
	assert.NotContains(t, e.db.faculties[f1].TeacherIDs, gv)
	assert.Contains(t, e.db.faculties[f2].TeacherIDs, gv)
}

func TestCreateClassroomPlacesStudents(t *testing.T) {
	e := newEnv()
	st, _, _ := seedStudent(t, e)
	fac := e.db.teachers[st.TeacherID].FacultyID
	gv2 := e.addTeacher("GV002", fac)

	room, err := newCatalog(e).CreateClassroom(context.Background(), dto.CreateClassroomRequest{
		Name: "CNTT2", Teacher: gv2.Hex(), Students: []string{st.ID.Hex()}, Year: "2026",
	})
	require.NoError(t, err)
	assert.Contains(t, e.db.teachers[gv2].ClassroomIDs, room.ID)
	assert.Equal(t, gv2, e.db.students[st.ID].TeacherID)
	assert.Equal(t, "CNTT2", e.db.students[st.ID].Class)
}

func TestCreateClassroomDuplicateName(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	gv := e.addTeacher("GV001", fac)
	e.addClassroom("CNTT1", gv)

	_, err := newCatalog(e).CreateClassroom(context.Background(), dto.CreateClassroomRequest{
		Name: "CNTT1", Teacher: gv.Hex(), Year: "2026",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUpdateFacultyReconcilesMembership(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	gv1 := e.addTeacher("GV001", fac)
	gv2 := e.addTeacher("GV002", bson.NilObjectID)

	teachers := []string{gv2.Hex()}
	updated, err := newCatalog(e).UpdateFaculty(context.Background(), fac, dto.UpdateFacultyRequest{
		Teachers: &teachers,
	})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{gv2}, updated.TeacherIDs)
	assert.True(t, e.db.teachers[gv1].FacultyID.IsZero(), "departing teacher loses the ref")
	assert.Equal(t, fac, e.db.teachers[gv2].FacultyID)
}

func TestUpdateFacultyNilSlicesLeaveMembership(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	gv := e.addTeacher("GV001", fac)

	updated, err := newCatalog(e).UpdateFaculty(context.Background(), fac, dto.UpdateFacultyRequest{
		Name: "Công nghệ thông tin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Công nghệ thông tin", updated.Name)
	assert.Contains(t, updated.TeacherIDs, gv, "membership untouched when no slice is sent")
}

func TestCreateFacultyRejectsInvalidMemberIDs(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	gv := e.addTeacher("GV001", fac)

	svc := newCatalog(e)
	_, err := svc.CreateFaculty(context.Background(), dto.CreateFacultyRequest{
		Name: "Điện tử", Code: "FET",
		Teachers: []string{gv.Hex(), bson.NewObjectID().Hex()},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	assert.Len(t, e.db.faculties, 1, "failed create must not leave a document")

	_, err = svc.CreateFaculty(context.Background(), dto.CreateFacultyRequest{
		Name: "Điện tử", Code: "FET",
		Majors: []string{bson.NewObjectID().Hex()},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	assert.Len(t, e.db.faculties, 1)
}

func TestCreateFacultyRejectsDeletedMembers(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	gv := e.addTeacher("GV001", fac)
	doc := e.db.teachers[gv]
	doc.Deleted = true
	e.db.teachers[gv] = doc

	_, err := newCatalog(e).CreateFaculty(context.Background(), dto.CreateFacultyRequest{
		Name: "Điện tử", Code: "FET", Teachers: []string{gv.Hex()},
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest), "soft-deleted teachers cannot join a faculty")
}

func TestUpdateFacultyRejectsInvalidMemberIDs(t *testing.T) {
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	gv := e.addTeacher("GV001", fac)

	teachers := []string{bson.NewObjectID().Hex()}
	_, err := newCatalog(e).UpdateFaculty(context.Background(), fac, dto.UpdateFacultyRequest{
		Teachers: &teachers,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	assert.Contains(t, e.db.faculties[fac].TeacherIDs, gv, "membership untouched on a rejected update")

	majors := []string{bson.NewObjectID().Hex()}
	_, err = newCatalog(e).UpdateFaculty(context.Background(), fac, dto.UpdateFacultyRequest{
		Majors: &majors,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
}

func TestCreateFacultyPullsMembersFromOldFaculty(t *testing.T) {
	e := newEnv()
	f1 := e.addFaculty("CNTT", "FIT")
	gv := e.addTeacher("GV001", f1)
	major := e.addMajor("KHMT", "KHMT", f1)

	f2, err := newCatalog(e).CreateFaculty(context.Background(), dto.CreateFacultyRequest{
		Name: "Điện tử", Code: "FET",
		Teachers: []string{gv.Hex()}, Majors: []string{major.Hex()},
	})
	require.NoError(t, err)
	assert.NotContains(t, e.db.faculties[f1].TeacherIDs, gv, "exactly one faculty lists the teacher")
	assert.NotContains(t, e.db.faculties[f1].MajorIDs, major)
	assert.Equal(t, f2.ID, e.db.teachers[gv].FacultyID)
	assert.Equal(t, f2.ID, e.db.majors[major].FacultyID)
}

func TestUpdateFacultyPullsJoinerFromOldFaculty(t *testing.T) {
	e := newEnv()
	f1 := e.addFaculty("CNTT", "FIT")
	f2 := e.addFaculty("Điện tử", "FET")
	gv := e.addTeacher("GV001", f1)
	major := e.addMajor("KHMT", "KHMT", f1)

	teachers := []string{gv.Hex()}
	majors := []string{major.Hex()}
	updated, err := newCatalog(e).UpdateFaculty(context.Background(), f2, dto.UpdateFacultyRequest{
		Teachers: &teachers, Majors: &majors,
	})
	require.NoError(t, err)
	assert.Contains(t, updated.TeacherIDs, gv)
	assert.Contains(t, updated.MajorIDs, major)
	assert.NotContains(t, e.db.faculties[f1].TeacherIDs, gv, "joiner is pulled from its previous faculty")
	assert.NotContains(t, e.db.faculties[f1].MajorIDs, major)
	assert.Equal(t, f2, e.db.teachers[gv].FacultyID)
	assert.Equal(t, f2, e.db.majors[major].FacultyID)
}

func TestCreateClassroomPullsStudentFromOldClassroom(t *testing.T) {
	e := newEnv()
	st, room, _ := seedStudent(t, e)
	fac := e.db.teachers[st.TeacherID].FacultyID
	gv2 := e.addTeacher("GV002", fac)

	newRoom, err := newCatalog(e).CreateClassroom(context.Background(), dto.CreateClassroomRequest{
		Name: "CNTT2", Teacher: gv2.Hex(), Students: []string{st.ID.Hex()}, Year: "2026",
	})
	require.NoError(t, err)
	assert.NotContains(t, e.db.classrooms[room].StudentIDs, st.ID, "old classroom no longer lists the moved student")
	assert.Contains(t, e.db.classrooms[newRoom.ID].StudentIDs, st.ID)
	assert.Equal(t, gv2, e.db.students[st.ID].TeacherID)
	checkRefIntegrity(t, e, st.ID)
}
