package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/models"
)

type ClassroomRepository struct {
	col *mongo.Collection
}

func NewClassroomRepository(db *mongo.Database) *ClassroomRepository {
	return &ClassroomRepository{col: db.Collection("classrooms")}
}

func (r *ClassroomRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Classroom, error) {
	var cr models.Classroom
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

// FindByTeacher returns the active classroom a homeroom teacher manages,
// or nil when the teacher manages none.
func (r *ClassroomRepository) FindByTeacher(ctx context.Context, teacherID bson.ObjectID) (*models.Classroom, error) {
	var cr models.Classroom
	err := r.col.FindOne(ctx, bson.M{"teacher": teacherID, "deleted": false}).Decode(&cr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}

func (r *ClassroomRepository) FindByDeleted(ctx context.Context, deleted bool) ([]models.Classroom, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted": deleted})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var classrooms []models.Classroom
	if err := cur.All(ctx, &classrooms); err != nil {
		return nil, err
	}
	return classrooms, nil
}

func (r *ClassroomRepository) Insert(ctx context.Context, cr *models.Classroom) (bson.ObjectID, error) {
	if cr.ID.IsZero() {
		cr.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	cr.CreatedAt = now
	cr.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, cr); err != nil {
		return bson.NilObjectID, err
	}
	return cr.ID, nil
}

func (r *ClassroomRepository) SetFields(ctx context.Context, id bson.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

func (r *ClassroomRepository) AddStudent(ctx context.Context, classroomID, studentID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": classroomID},
		bson.M{"$addToSet": bson.M{"students": studentID}})
	return err
}

func (r *ClassroomRepository) RemoveStudent(ctx context.Context, classroomID, studentID bson.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": classroomID},
		bson.M{"$pull": bson.M{"students": studentID}})
	return err
}

// RemoveStudentFromAll pulls a student out of every classroom membership
// array; used by the student soft-delete cascade.
func (r *ClassroomRepository) RemoveStudentFromAll(ctx context.Context, studentID bson.ObjectID) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"students": studentID},
		bson.M{"$pull": bson.M{"students": studentID}})
	return err
}

func (r *ClassroomRepository) SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"deleted":   deleted,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

func (r *ClassroomRepository) FindByName(ctx context.Context, name string) (*models.Classroom, error) {
	var cr models.Classroom
	err := r.col.FindOne(ctx, bson.M{"name": name}).Decode(&cr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cr, nil
}
