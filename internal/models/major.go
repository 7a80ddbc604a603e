package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Major document stored in "majors".
//
// FacultyID must match the one faculty whose majors array contains this
// major; both sides are written in the same transaction.
type Major struct {
	ID         bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string          `bson:"name" json:"name"`
	Code       string          `bson:"code" json:"code"` // unique
	StudentIDs []bson.ObjectID `bson:"students" json:"students"`
	CourseIDs  []bson.ObjectID `bson:"courses" json:"courses"`
	FacultyID  bson.ObjectID   `bson:"faculty" json:"faculty"`
	Deleted    bool            `bson:"deleted" json:"deleted"`
	CreatedAt  time.Time       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Course document stored in "courses". Diligency records reference courses;
// majors carry a set of the courses they offer.
type Course struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string        `bson:"name" json:"name"`
	Code      string        `bson:"code" json:"code"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
