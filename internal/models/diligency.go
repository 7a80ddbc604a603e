package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DiligencyStatus is the attendance standing of a student in a course.
// The literal strings are persisted and consumed by existing clients; they
// must not be translated or renamed.
type DiligencyStatus string

const (
	StatusEligible DiligencyStatus = "Đủ điều kiện" // eligible to sit the exam
	StatusWarning  DiligencyStatus = "Cảnh báo"     // warning
	StatusBanned   DiligencyStatus = "Cấm thi"      // banned from the exam
)

// Diligency is one absence event, stored in "diligences". At most one
// record may exist per (studentId, courseId, date); the compound unique
// index enforces it.
//
// Status is denormalized: it always equals the classification of the
// current record count for (studentId, courseId). The diligency service
// rewrites it on every create, update and delete for the pair.
type Diligency struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	StudentID bson.ObjectID   `bson:"studentId" json:"studentId"`
	CourseID  bson.ObjectID   `bson:"courseId" json:"courseId"`
	Date      time.Time       `bson:"date" json:"date"`
	Status    DiligencyStatus `bson:"status" json:"status"`
	Notes     string          `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
