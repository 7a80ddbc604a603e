package dto

type CreateFacultyRequest struct {
	Name     string   `json:"name" validate:"required"`
	Code     string   `json:"code" validate:"required"`
	Teachers []string `json:"teachers" validate:"dive,len=24,hexadecimal"`
	Majors   []string `json:"majors" validate:"dive,len=24,hexadecimal"`
}

// UpdateFacultyRequest: nil slices mean "leave unchanged"; non-nil slices
// (including empty ones) replace the membership set.
type UpdateFacultyRequest struct {
	Name     string    `json:"name" validate:"omitempty"`
	Code     string    `json:"code" validate:"omitempty"`
	Teachers *[]string `json:"teachers" validate:"omitempty,dive,len=24,hexadecimal"`
	Majors   *[]string `json:"majors" validate:"omitempty,dive,len=24,hexadecimal"`
}
