package dto

// CreateDiligencyRequest records one absence of a student in a course on a
// calendar date. Dates are date-only; one record per day per course.
type CreateDiligencyRequest struct {
	CourseID string `json:"courseId" validate:"required,len=24,hexadecimal"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Notes    string `json:"notes" validate:"omitempty"`
}

type UpdateDiligencyRequest struct {
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Notes string `json:"notes" validate:"omitempty"`
}
