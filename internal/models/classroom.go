package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Classroom document stored in "classrooms".
type Classroom struct {
	ID         bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string          `bson:"name" json:"name"` // unique
	TeacherID  bson.ObjectID   `bson:"teacher" json:"teacher"`
	StudentIDs []bson.ObjectID `bson:"students" json:"students"`
	Year       string          `bson:"year" json:"year"`
	Deleted    bool            `bson:"deleted" json:"deleted"`
	CreatedAt  time.Time       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
