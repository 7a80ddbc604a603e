package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/models"
)

type FacultyRepository struct {
	col *mongo.Collection
}

func NewFacultyRepository(db *mongo.Database) *FacultyRepository {
	return &FacultyRepository{col: db.Collection("faculties")}
}

func (r *FacultyRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Faculty, error) {
	var f models.Faculty
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindActiveByID resolves only faculties that are not soft-deleted.
func (r *FacultyRepository) FindActiveByID(ctx context.Context, id bson.ObjectID) (*models.Faculty, error) {
	var f models.Faculty
	err := r.col.FindOne(ctx, bson.M{"_id": id, "deleted": false}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FacultyRepository) FindByCode(ctx context.Context, code string) (*models.Faculty, error) {
	var f models.Faculty
	err := r.col.FindOne(ctx, bson.M{"code": code, "deleted": false}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FacultyRepository) FindByDeleted(ctx context.Context, deleted bool) ([]models.Faculty, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted": deleted})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var faculties []models.Faculty
	if err := cur.All(ctx, &faculties); err != nil {
		return nil, err
	}
	return faculties, nil
}

func (r *FacultyRepository) Insert(ctx context.Context, f *models.Faculty) (bson.ObjectID, error) {
	if f.ID.IsZero() {
		f.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, f); err != nil {
		return bson.NilObjectID, err
	}
	return f.ID, nil
}

func (r *FacultyRepository) SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *FacultyRepository) AddMajor(ctx context.Context, facultyID, majorID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": facultyID},
		bson.M{"$addToSet": bson.M{"majors": majorID}})
	return err
}

func (r *FacultyRepository) RemoveMajor(ctx context.Context, facultyID, majorID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": facultyID},
		bson.M{"$pull": bson.M{"majors": majorID}})
	return err
}

func (r *FacultyRepository) AddTeacher(ctx context.Context, facultyID, teacherID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": facultyID},
		bson.M{"$addToSet": bson.M{"teachers": teacherID}})
	return err
}

func (r *FacultyRepository) RemoveTeacher(ctx context.Context, facultyID, teacherID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": facultyID},
		bson.M{"$pull": bson.M{"teachers": teacherID}})
	return err
}

// FindByTeacher returns the faculty whose membership array contains the
// teacher, mirroring the original's reverse lookup on reassignment.
func (r *FacultyRepository) FindByTeacher(ctx context.Context, teacherID bson.ObjectID) (*models.Faculty, error) {
	var f models.Faculty
	err := r.col.FindOne(ctx, bson.M{"teachers": teacherID}).Decode(&f)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FacultyRepository) SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"deleted":   deleted,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}
