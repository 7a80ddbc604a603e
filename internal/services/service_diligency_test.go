package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		n    int64
		want models.DiligencyStatus
	}{
		{0, models.StatusEligible},
		{1, models.StatusEligible},
		{2, models.StatusEligible},
		{3, models.StatusWarning},
		{4, models.StatusBanned},
		{5, models.StatusBanned},
		{10, models.StatusBanned},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.n), "n=%d", c.n)
	}
}

func newDiligencyEnv(t *testing.T) (*env, *DiligencyService, bson.ObjectID, bson.ObjectID) {
	t.Helper()
	e := newEnv()
	fac := e.addFaculty("CNTT", "FIT")
	gv := e.addTeacher("GV001", fac)
	e.addClassroom("CNTT1", gv)
	course := e.addCourse("Giải tích 1", "MAT101")
	st := models.Student{ID: bson.NewObjectID(), MSV: "B20DCCN001", FullName: "A", TeacherID: gv}
	e.db.students[st.ID] = st
	svc := NewDiligencyService(e.tx, e.diligencies, e.students, e.courses)
	return e, svc, st.ID, course
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func pairStatuses(e *env, studentID, courseID bson.ObjectID) []models.DiligencyStatus {
	var out []models.DiligencyStatus
	for _, d := range e.db.diligencies {
		if d.StudentID == studentID && d.CourseID == courseID {
			out = append(out, d.Status)
		}
	}
	return out
}

func TestDiligencyThresholdsRewriteWholePair(t *testing.T) {
	e, svc, st, course := newDiligencyEnv(t)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		rec, err := svc.Create(ctx, st, course, day(i), "")
		require.NoError(t, err)
		assert.Equal(t, models.StatusEligible, rec.Status)
	}

	// third absence: every record of the pair flips to the warning status
	_, err := svc.Create(ctx, st, course, day(3), "")
	require.NoError(t, err)
	for _, status := range pairStatuses(e, st, course) {
		assert.Equal(t, models.StatusWarning, status)
	}

	// fourth absence: the whole pair is banned
	_, err = svc.Create(ctx, st, course, day(4), "")
	require.NoError(t, err)
	statuses := pairStatuses(e, st, course)
	require.Len(t, statuses, 4)
	for _, status := range statuses {
		assert.Equal(t, models.StatusBanned, status)
	}
}

func TestDiligencyScopeIsPerCourse(t *testing.T) {
	e, svc, st, course1 := newDiligencyEnv(t)
	course2 := e.addCourse("Vật lý 1", "PHY101")
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, st, course1, day(i), "")
		require.NoError(t, err)
	}
	rec, err := svc.Create(ctx, st, course2, day(1), "")
	require.NoError(t, err)

	assert.Equal(t, models.StatusEligible, rec.Status, "absences in another course must not count")
	for _, status := range pairStatuses(e, st, course1) {
		assert.Equal(t, models.StatusWarning, status)
	}
}

func TestDiligencyDuplicateDateConflicts(t *testing.T) {
	e, svc, st, course := newDiligencyEnv(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, st, course, day(1), "")
	require.NoError(t, err)

	_, err = svc.Create(ctx, st, course, day(1), "again")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	assert.Len(t, e.db.diligencies, 1, "conflicting insert must not leave a second record")
}

func TestDiligencyDeleteRecountsDownward(t *testing.T) {
	e, svc, st, course := newDiligencyEnv(t)
	ctx := context.Background()

	var ids []bson.ObjectID
	for i := 1; i <= 4; i++ {
		rec, err := svc.Create(ctx, st, course, day(i), "")
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}
	for _, status := range pairStatuses(e, st, course) {
		require.Equal(t, models.StatusBanned, status)
	}

	require.NoError(t, svc.Delete(ctx, ids[0]))
	for _, status := range pairStatuses(e, st, course) {
		assert.Equal(t, models.StatusWarning, status, "dropping to 3 lifts the ban")
	}

	require.NoError(t, svc.Delete(ctx, ids[1]))
	for _, status := range pairStatuses(e, st, course) {
		assert.Equal(t, models.StatusEligible, status)
	}
}

func TestDiligencyUpdateDateCollision(t *testing.T) {
	_, svc, st, course := newDiligencyEnv(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, st, course, day(1), "")
	require.NoError(t, err)
	_, err = svc.Create(ctx, st, course, day(2), "")
	require.NoError(t, err)

	collide := day(2)
	_, err = svc.Update(ctx, first.ID, &collide, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))

	notes := "ốm"
	updated, err := svc.Update(ctx, first.ID, nil, &notes)
	require.NoError(t, err)
	assert.Equal(t, "ốm", updated.Notes)
}

func TestDiligencyCreateUnknownStudentOrCourse(t *testing.T) {
	_, svc, st, course := newDiligencyEnv(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, bson.NewObjectID(), course, day(1), "")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.Create(ctx, st, bson.NewObjectID(), day(1), "")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestDiligencyReport(t *testing.T) {
	e, svc, st, course := newDiligencyEnv(t)
	course2 := e.addCourse("Vật lý 1", "PHY101")
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := svc.Create(ctx, st, course, day(i), "")
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, st, course2, day(1), "")
	require.NoError(t, err)

	report, err := svc.Report(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, 4, report.TotalAbsences)
	assert.Equal(t, models.StatusWarning, report.Statuses[course.Hex()])
	assert.Equal(t, models.StatusEligible, report.Statuses[course2.Hex()])
}

// staleExistsDiligencies never sees an existing record, standing in for a
// concurrent insert landing between the pre-check and the write. The
// unique index is then the only guard.
type staleExistsDiligencies struct{ DiligencyStore }

func (s staleExistsDiligencies) Exists(context.Context, bson.ObjectID, bson.ObjectID, time.Time) (bool, error) {
	return false, nil
}

func TestDiligencyUpdateDateRaceStillConflicts(t *testing.T) {
	e, _, st, course := newDiligencyEnv(t)
	ctx := context.Background()
	svc := NewDiligencyService(e.tx, staleExistsDiligencies{e.diligencies}, e.students, e.courses)

	_, err := svc.Create(ctx, st, course, day(1), "")
	require.NoError(t, err)
	second, err := svc.Create(ctx, st, course, day(2), "")
	require.NoError(t, err)

	collide := day(1)
	_, err = svc.Update(ctx, second.ID, &collide, nil)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict), "index rejection maps to 409, not 500")
	assert.True(t, e.db.diligencies[second.ID].Date.Equal(day(2)), "colliding date change is not applied")
}
