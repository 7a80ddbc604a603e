package dto

type CreateTeacherRequest struct {
	MGV       string `json:"mgv" validate:"required"`
	FullName  string `json:"fullname" validate:"required"`
	FacultyID string `json:"facultyId" validate:"required,len=24,hexadecimal"`
}

// UpdateTeacherRequest patches only the fields that are present. A new
// facultyId moves the teacher between faculties atomically.
type UpdateTeacherRequest struct {
	MGV       string `json:"mgv" validate:"omitempty"`
	FullName  string `json:"fullname" validate:"omitempty"`
	FacultyID string `json:"facultyId" validate:"omitempty,len=24,hexadecimal"`
}
