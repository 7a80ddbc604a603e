package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Teacher document stored in "teachers".
//
// ClassroomIDs is a set: a teacher manages zero or more classrooms. All
// writers go through $addToSet/$pull, never a scalar overwrite.
type Teacher struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	MGV          string          `bson:"mgv" json:"mgv"` // teacher number, unique
	FullName     string          `bson:"fullname" json:"fullname"`
	Password     string          `bson:"password" json:"-"`
	IsGV         bool            `bson:"isGV" json:"isGV"`
	IsAdmin      bool            `bson:"isAdmin" json:"isAdmin"`
	ClassroomIDs []bson.ObjectID `bson:"classrooms" json:"classrooms"`
	FacultyID    bson.ObjectID   `bson:"faculty,omitempty" json:"faculty,omitempty"`
	Deleted      bool            `bson:"deleted" json:"deleted"`
	CreatedAt    time.Time       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
