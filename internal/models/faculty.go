package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Faculty document stored in "faculties".
type Faculty struct {
	ID         bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string          `bson:"name" json:"name"` // unique
	Code       string          `bson:"code" json:"code"` // unique
	TeacherIDs []bson.ObjectID `bson:"teachers" json:"teachers"`
	MajorIDs   []bson.ObjectID `bson:"majors" json:"majors"`
	Deleted    bool            `bson:"deleted" json:"deleted"`
	CreatedAt  time.Time       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
