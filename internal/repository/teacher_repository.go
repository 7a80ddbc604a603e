package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/models"
)

type TeacherRepository struct {
	col *mongo.Collection
}

func NewTeacherRepository(db *mongo.Database) *TeacherRepository {
	return &TeacherRepository{col: db.Collection("teachers")}
}

func (r *TeacherRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Teacher, error) {
	var t models.Teacher
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) FindByMGV(ctx context.Context, mgv string) (*models.Teacher, error) {
	var t models.Teacher
	err := r.col.FindOne(ctx, bson.M{"mgv": mgv}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TeacherRepository) FindAll(ctx context.Context) ([]models.Teacher, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teachers []models.Teacher
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

// FindByFaculty lists active teachers attached to the faculty.
func (r *TeacherRepository) FindByFaculty(ctx context.Context, facultyID bson.ObjectID) ([]models.Teacher, error) {
	cur, err := r.col.Find(ctx, bson.M{"faculty": facultyID, "deleted": false})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teachers []models.Teacher
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *TeacherRepository) Insert(ctx context.Context, t *models.Teacher) (bson.ObjectID, error) {
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

func (r *TeacherRepository) SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *TeacherRepository) AddClassroom(ctx context.Context, teacherID, classroomID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": teacherID},
		bson.M{"$addToSet": bson.M{"classrooms": classroomID}})
	return err
}

func (r *TeacherRepository) RemoveClassroom(ctx context.Context, teacherID, classroomID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": teacherID},
		bson.M{"$pull": bson.M{"classrooms": classroomID}})
	return err
}

func (r *TeacherRepository) SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"deleted":   deleted,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

// SetDeletedByFaculty flags every teacher of a faculty; used by the faculty
// lifecycle cascade.
func (r *TeacherRepository) SetDeletedByFaculty(ctx context.Context, facultyID bson.ObjectID, deleted bool) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"faculty": facultyID}, bson.M{"$set": bson.M{
		"deleted":   deleted,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}
