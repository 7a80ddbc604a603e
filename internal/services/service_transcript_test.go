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

func newTranscripts(e *env) *TranscriptService {
	return NewTranscriptService(e.transcripts, e.students, e.courses)
}

func TestCreateTranscriptAndList(t *testing.T) {
	e := newEnv()
	st, _, _ := seedStudent(t, e)
	course := e.addCourse("Giải tích 1", "MAT101")

	svc := newTranscripts(e)
	tr, err := svc.Create(context.Background(), dto.CreateTranscriptRequest{
		Student:    st.ID.Hex(),
		Course:     course.Hex(),
		Semester:   "2025.1",
		MidScore:   7.5,
		FinalScore: 8,
	})
	require.NoError(t, err)
	require.False(t, tr.ID.IsZero())

	got, err := svc.ListByStudent(context.Background(), st.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, course, got[0].CourseID)
	assert.Equal(t, 8.0, got[0].FinalScore)
}

func TestCreateTranscriptUnknownRefs(t *testing.T) {
	e := newEnv()
	st, _, _ := seedStudent(t, e)
	course := e.addCourse("Giải tích 1", "MAT101")

	svc := newTranscripts(e)

	_, err := svc.Create(context.Background(), dto.CreateTranscriptRequest{
		Student: bson.NewObjectID().Hex(),
		Course:  course.Hex(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.Create(context.Background(), dto.CreateTranscriptRequest{
		Student: st.ID.Hex(),
		Course:  bson.NewObjectID().Hex(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	assert.Empty(t, e.db.transcripts)
}

func TestListTranscriptsOfDeletedStudent(t *testing.T) {
	e := newEnv()
	st, _, _ := seedStudent(t, e)
	course := e.addCourse("Giải tích 1", "MAT101")

	svc := newTranscripts(e)
	_, err := svc.Create(context.Background(), dto.CreateTranscriptRequest{
		Student: st.ID.Hex(),
		Course:  course.Hex(),
	})
	require.NoError(t, err)

	doc := e.db.students[st.ID]
	doc.Deleted = true
	e.db.students[st.ID] = doc

	_, err = svc.ListByStudent(context.Background(), st.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
