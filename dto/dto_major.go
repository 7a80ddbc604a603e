package dto

type CreateMajorRequest struct {
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code" validate:"required"`
	FacultyID string `json:"facultyId" validate:"required,len=24,hexadecimal"`
}

type UpdateMajorRequest struct {
	Name      string `json:"name" validate:"omitempty"`
	Code      string `json:"code" validate:"omitempty"`
	FacultyID string `json:"facultyId" validate:"omitempty,len=24,hexadecimal"`
}

type CreateCourseRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}
