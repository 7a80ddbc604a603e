package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/models"
)

// StudentRepository owns the "users" collection (students and admins).
// Lookup methods return (nil, nil) when no document matches.
type StudentRepository struct {
	col *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{col: db.Collection("users")}
}

func (r *StudentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*models.Student, error) {
	var s models.Student
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) FindByMSV(ctx context.Context, msv string) (*models.Student, error) {
	var s models.Student
	err := r.col.FindOne(ctx, bson.M{"msv": msv}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// FindActive lists students that are neither deleted nor admin accounts.
func (r *StudentRepository) FindActive(ctx context.Context) ([]models.Student, error) {
	cur, err := r.col.Find(ctx, bson.M{"deleted": false, "isAdmin": false})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// SearchByKeyword matches msv, fullname, email, phone or class label,
// case-insensitive, active non-admin accounts only.
func (r *StudentRepository) SearchByKeyword(ctx context.Context, keyword string) ([]models.Student, error) {
	rx := bson.M{"$regex": keyword, "$options": "i"}
	cur, err := r.col.Find(ctx, bson.M{
		"$or": []bson.M{
			{"msv": rx},
			{"fullname": rx},
			{"email": rx},
			{"phone": rx},
			{"class": rx},
		},
		"deleted": false,
		"isAdmin": false,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// FindByMajorIDs lists active students enrolled in any of the majors.
func (r *StudentRepository) FindByMajorIDs(ctx context.Context, majorIDs []bson.ObjectID) ([]models.Student, error) {
	if len(majorIDs) == 0 {
		return nil, nil
	}
	cur, err := r.col.Find(ctx, bson.M{
		"majorIds": bson.M{"$in": majorIDs},
		"deleted":  false,
		"isAdmin":  false,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// FindByHomeroom lists active students whose homeroom teacher is teacherID.
func (r *StudentRepository) FindByHomeroom(ctx context.Context, teacherID bson.ObjectID) ([]models.Student, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"gvcn":    teacherID,
		"deleted": false,
		"isAdmin": false,
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var students []models.Student
	if err := cur.All(ctx, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (r *StudentRepository) Insert(ctx context.Context, s *models.Student) (bson.ObjectID, error) {
	if s.ID.IsZero() {
		s.ID = bson.NewObjectID()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return bson.NilObjectID, err
	}
	return s.ID, nil
}

// SetEnrollment overwrites the forward refs for major membership. The
// denormalized faculty ref is cleared when the majors span faculties.
func (r *StudentRepository) SetEnrollment(ctx context.Context, id bson.ObjectID, majorIDs []bson.ObjectID, facultyID bson.ObjectID) error {
	set := bson.M{"majorIds": majorIDs, "updatedAt": time.Now().UTC()}
	unset := bson.M{}
	if facultyID.IsZero() {
		unset["faculty"] = ""
	} else {
		set["faculty"] = facultyID
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (r *StudentRepository) SetHomeroom(ctx context.Context, id, teacherID bson.ObjectID, classLabel string) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"gvcn":      teacherID,
		"class":     classLabel,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

func (r *StudentRepository) SetDeleted(ctx context.Context, id bson.ObjectID, deleted bool) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"deleted":   deleted,
		"updatedAt": time.Now().UTC(),
	}})
	return err
}

// SetProfile applies the student's own profile patch.
func (r *StudentRepository) SetProfile(ctx context.Context, id bson.ObjectID, set bson.M) error {
	set["updatedAt"] = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// RemoveMajorRef pulls a hard-deleted major out of every student's forward
// refs so no student references a major that no longer exists.
func (r *StudentRepository) RemoveMajorRef(ctx context.Context, majorID bson.ObjectID) error {
	_, err := r.col.UpdateMany(ctx, bson.M{"majorIds": majorID},
		bson.M{"$pull": bson.M{"majorIds": majorID}})
	return err
}
