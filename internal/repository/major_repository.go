package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/models"
)

type MajorRepository struct {
	col *mongo.Collection
}

func NewMajorRepository(db *mongo.Database) *MajorRepository {
	return &MajorRepository{col: db.Collection("majors")}
}

func (r *MajorRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Major, error) {
	var m models.Major
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MajorRepository) FindByCode(ctx context.Context, code string) (*models.Major, error) {
	var m models.Major
	err := r.col.FindOne(ctx, bson.M{"code": code}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindActiveByIDs resolves the given ids to active majors. Callers compare
// the result length against the request to detect unknown ids.
func (r *MajorRepository) FindActiveByIDs(ctx context.Context, ids []bson.ObjectID) ([]models.Major, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}, "deleted": false})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var majors []models.Major
	if err := cur.All(ctx, &majors); err != nil {
		return nil, err
	}
	return majors, nil
}

func (r *MajorRepository) FindAll(ctx context.Context) ([]models.Major, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var majors []models.Major
	if err := cur.All(ctx, &majors); err != nil {
		return nil, err
	}
	return majors, nil
}

func (r *MajorRepository) FindByFaculty(ctx context.Context, facultyID bson.ObjectID) ([]models.Major, error) {
	cur, err := r.col.Find(ctx, bson.M{"faculty": facultyID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var majors []models.Major
	if err := cur.All(ctx, &majors); err != nil {
		return nil, err
	}
	return majors, nil
}

func (r *MajorRepository) Insert(ctx context.Context, m *models.Major) (bson.ObjectID, error) {
	if m.ID.IsZero() {
		m.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return bson.NilObjectID, err
	}
	return m.ID, nil
}

func (r *MajorRepository) SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// AddStudent adds the student to every listed major's membership array.
func (r *MajorRepository) AddStudent(ctx context.Context, majorIDs []bson.ObjectID, studentID bson.ObjectID) error {
	if len(majorIDs) == 0 {
		return nil
	}
	_, err := r.col.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": majorIDs}},
		bson.M{"$addToSet": bson.M{"students": studentID}})
	return err
}

func (r *MajorRepository) RemoveStudent(ctx context.Context, majorIDs []bson.ObjectID, studentID bson.ObjectID) error {
	if len(majorIDs) == 0 {
		return nil
	}
	_, err := r.col.UpdateMany(ctx, bson.M{"_id": bson.M{"$in": majorIDs}},
		bson.M{"$pull": bson.M{"students": studentID}})
	return err
}

// RemoveStudentFromAll pulls a student out of every major membership array.
func (r *MajorRepository) RemoveStudentFromAll(ctx context.Context, studentID bson.ObjectID) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"students": studentID},
		bson.M{"$pull": bson.M{"students": studentID}})
	return err
}

// DeleteByID is a hard delete; majors keep the original's hard-delete path.
func (r *MajorRepository) DeleteByID(ctx context.Context, id bson.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *MajorRepository) SetDeletedByFaculty(ctx context.Context, facultyID bson.ObjectID, deleted bool) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"faculty": facultyID}, bson.M{"$set": bson.M{
		"deleted":   deleted,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

// SearchByName matches active majors by name, case-insensitive.
func (r *MajorRepository) SearchByName(ctx context.Context, keyword string) ([]models.Major, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"name":    bson.M{"$regex": keyword, "$options": "i"},
		"deleted": false,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var majors []models.Major
	if err := cur.All(ctx, &majors); err != nil {
		return nil, err
	}
	return majors, nil
}
