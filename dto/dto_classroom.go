package dto

type CreateClassroomRequest struct {
	Name     string   `json:"name" validate:"required"`
	Teacher  string   `json:"teacher" validate:"required,len=24,hexadecimal"`
	Students []string `json:"students" validate:"dive,len=24,hexadecimal"`
	Year     string   `json:"year" validate:"required"`
}

type UpdateClassroomRequest struct {
	Name string `json:"name" validate:"omitempty"`
	Year string `json:"year" validate:"omitempty"`
}
