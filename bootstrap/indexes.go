package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique indexes the services rely on. The
// compound diligency index is the backstop for the one-absence-per-day
// rule: even if two requests race past the pre-check, the second insert
// fails with a duplicate-key error.
func EnsureIndexes(db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "msv", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_msv"),
			},
			{
				Keys: bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_email").
					SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
			},
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("teachers").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "mgv", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_mgv"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("classrooms").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_name"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("faculties").Indexes().CreateMany(
		context.Background(),
		[]mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_name"),
			},
			{
				Keys:    bson.D{{Key: "code", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_code"),
			},
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("majors").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_code"),
		},
	)
	if err != nil {
		return err
	}

	_, err = db.Collection("diligences").Indexes().CreateOne(
		context.Background(),
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "studentId", Value: 1},
				{Key: "courseId", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("uniq_student_course_date"),
		},
	)
	return err
}
