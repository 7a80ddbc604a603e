package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/models"
)

type DiligencyRepository struct {
	col *mongo.Collection
}

func NewDiligencyRepository(db *mongo.Database) *DiligencyRepository {
	return &DiligencyRepository{col: db.Collection("diligences")}
}

func (r *DiligencyRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Diligency, error) {
	var d models.Diligency
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Exists reports whether a record already covers (student, course, date).
func (r *DiligencyRepository) Exists(ctx context.Context, studentID, courseID bson.ObjectID, date time.Time) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{
		"studentId": studentID,
		"courseId":  courseID,
		"date":      date,
	}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert creates the record, reporting a duplicate (student, course, date)
// via dup=true when the unique index rejects it.
func (r *DiligencyRepository) Insert(ctx context.Context, d *models.Diligency) (dup bool, err error) {
	if d.ID.IsZero() {
		d.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	_, err = r.col.InsertOne(ctx, d)
	if err == nil {
		return false, nil
	}
	if isDupKey(err) {
		return true, nil
	}
	return false, err
}

func isDupKey(err error) bool {
	var we mongo.WriteException
	return errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000
}

func (r *DiligencyRepository) CountByStudentCourse(ctx context.Context, studentID, courseID bson.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"studentId": studentID, "courseId": courseID})
}

// SetStatusByStudentCourse rewrites the denormalized status on every record
// of the pair; called after each create/update/delete recount.
func (r *DiligencyRepository) SetStatusByStudentCourse(ctx context.Context, studentID, courseID bson.ObjectID, status models.DiligencyStatus) error {
	_, err := r.col.UpdateMany(ctx,
		bson.M{"studentId": studentID, "courseId": courseID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}})
	return err
}

// SetFields patches the record. A date change can race a concurrent insert
// past the service's pre-check; the unique index rejects it and dup=true
// reports it.
func (r *DiligencyRepository) SetFields(ctx context.Context, id bson.ObjectID, set bson.M) (dup bool, err error) {
	set["updatedAt"] = time.Now().UTC()
	_, err = r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err == nil {
		return false, nil
	}
	if isDupKey(err) {
		return true, nil
	}
	return false, err
}

func (r *DiligencyRepository) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *DiligencyRepository) FindByStudent(ctx context.Context, studentID bson.ObjectID) ([]models.Diligency, error) {
	cur, err := r.col.Find(ctx, bson.M{"studentId": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.Diligency
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *DiligencyRepository) FindAll(ctx context.Context) ([]models.Diligency, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var records []models.Diligency
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
