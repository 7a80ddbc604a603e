package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Transcript document stored in "transcripts". Deleted cascades from the
// owning student's lifecycle; transcripts are never deleted on their own.
type Transcript struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentID  bson.ObjectID `bson:"student" json:"student"`
	CourseID   bson.ObjectID `bson:"course" json:"course"`
	Semester   string        `bson:"semester,omitempty" json:"semester,omitempty"`
	MidScore   float64       `bson:"midScore" json:"midScore"`
	FinalScore float64       `bson:"finalScore" json:"finalScore"`
	Deleted    bool          `bson:"deleted" json:"deleted"`
	CreatedAt  time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt  time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
