package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/models"
)

type TranscriptRepository struct {
	col *mongo.Collection
}

func NewTranscriptRepository(db *mongo.Database) *TranscriptRepository {
	return &TranscriptRepository{col: db.Collection("transcripts")}
}

func (r *TranscriptRepository) Insert(ctx context.Context, t *models.Transcript) (bson.ObjectID, error) {
	if t.ID.IsZero() {
		t.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return bson.NilObjectID, err
	}
	return t.ID, nil
}

func (r *TranscriptRepository) FindByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Transcript, error) {
	cur, err := r.col.Find(ctx, bson.M{"student": studentID, "deleted": false})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var transcripts []models.Transcript
	if err := cur.All(ctx, &transcripts); err != nil {
		return nil, err
	}
	return transcripts, nil
}

// SetDeletedByStudent flags every transcript of a student; cascades from
// the student lifecycle.
func (r *TranscriptRepository) SetDeletedByStudent(ctx context.Context, studentID bson.ObjectID, deleted bool) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"student": studentID}, bson.M{"$set": bson.M{
		"deleted":   deleted,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}
