package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ParentInfo is the guardian subdocument on a student.
type ParentInfo struct {
	FatherName       string `bson:"fatherName,omitempty" json:"fatherName,omitempty"`
	MotherName       string `bson:"motherName,omitempty" json:"motherName,omitempty"`
	FatherJob        string `bson:"fatherJob,omitempty" json:"fatherJob,omitempty"`
	MotherJob        string `bson:"motherJob,omitempty" json:"motherJob,omitempty"`
	ParentPhone      string `bson:"parentPhone,omitempty" json:"parentPhone,omitempty"`
	Nation           string `bson:"nation,omitempty" json:"nation,omitempty"`
	PresentAddress   string `bson:"presentAddress,omitempty" json:"presentAddress,omitempty"`
	PermanentAddress string `bson:"permanentAddress,omitempty" json:"permanentAddress,omitempty"`
}

// Student document stored in "users". Admin accounts live in the same
// collection with IsAdmin set and no enrollment fields.
//
// gvcn/majorIds/faculty are forward references; the inverse membership
// arrays live on classrooms/majors/faculties and are kept in sync by the
// enrollment and lifecycle services. They are deliberately NOT cleared on
// soft delete: restore uses them to rebuild membership.
type Student struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Deleted   bool            `bson:"deleted" json:"deleted"`
	TeacherID bson.ObjectID   `bson:"gvcn,omitempty" json:"gvcn,omitempty"` // homeroom teacher
	FullName  string          `bson:"fullname" json:"fullname"`
	MSV       string          `bson:"msv" json:"msv"` // student number, unique
	Password  string          `bson:"password" json:"-"`
	MajorIDs  []bson.ObjectID `bson:"majorIds" json:"majorIds"`
	FacultyID bson.ObjectID   `bson:"faculty,omitempty" json:"faculty,omitempty"`
	Year      string          `bson:"year,omitempty" json:"year,omitempty"`
	IsAdmin   bool            `bson:"isAdmin" json:"isAdmin"`
	IsGV      bool            `bson:"isGV" json:"isGV"`
	DOB       string          `bson:"dob,omitempty" json:"dob,omitempty"`
	Phone     string          `bson:"phone,omitempty" json:"phone,omitempty"`
	Email     string          `bson:"email,omitempty" json:"email,omitempty"`
	Gender    string          `bson:"gender,omitempty" json:"gender,omitempty"`
	Country   string          `bson:"country,omitempty" json:"country,omitempty"`
	Address   string          `bson:"address,omitempty" json:"address,omitempty"`
	Class     string          `bson:"class,omitempty" json:"class,omitempty"` // label of the homeroom classroom
	Parent    ParentInfo      `bson:"parent,omitempty" json:"parent,omitempty"`
	CreatedAt time.Time       `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time       `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// HasMajor reports whether the student's forward refs contain id.
func (s *Student) HasMajor(id bson.ObjectID) bool {
	for _, m := range s.MajorIDs {
		if m == id {
			return true
		}
	}
	return false
}
