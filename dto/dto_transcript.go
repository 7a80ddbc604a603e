package dto

type CreateTranscriptRequest struct {
	Student    string  `json:"student" validate:"required,len=24,hexadecimal"`
	Course     string  `json:"course" validate:"required,len=24,hexadecimal"`
	Semester   string  `json:"semester" validate:"omitempty"`
	MidScore   float64 `json:"midScore" validate:"gte=0,lte=10"`
	FinalScore float64 `json:"finalScore" validate:"gte=0,lte=10"`
}
