package dto

// CreateStudentRequest is the admin operation that enrolls a new student.
// The initial password is the msv (changed by the student later).
type CreateStudentRequest struct {
	FullName  string   `json:"fullname" validate:"required"`
	MSV       string   `json:"msv" validate:"required"`
	Year      string   `json:"year" validate:"required"`
	GVCN      string   `json:"gvcn" validate:"required,len=24,hexadecimal"`
	Gender    string   `json:"gender" validate:"omitempty,oneof=male female other"`
	ClassName string   `json:"className" validate:"omitempty"`
	Email     string   `json:"email" validate:"required,email"`
	MajorIDs  []string `json:"majorIds" validate:"required,min=1,dive,len=24,hexadecimal"`
}

// UpdateProfileRequest is the student's own profile update. Enrollment
// fields (gvcn, majorIds, class) are admin-only and not accepted here.
type UpdateProfileRequest struct {
	FullName         string `json:"fullname" validate:"required"`
	Address          string `json:"address" validate:"omitempty"`
	Email            string `json:"email" validate:"required,email"`
	DOB              string `json:"dob" validate:"omitempty"`
	Phone            string `json:"phone" validate:"omitempty"`
	Gender           string `json:"gender" validate:"omitempty,oneof=male female other"`
	FatherName       string `json:"fatherName" validate:"omitempty"`
	MotherName       string `json:"motherName" validate:"omitempty"`
	FatherJob        string `json:"fatherJob" validate:"omitempty"`
	MotherJob        string `json:"motherJob" validate:"omitempty"`
	ParentPhone      string `json:"parentPhone" validate:"omitempty"`
	Nation           string `json:"nation" validate:"omitempty"`
	PresentAddress   string `json:"presentAddress" validate:"omitempty"`
	PermanentAddress string `json:"permanentAddress" validate:"omitempty"`
}

// AdminUpdateStudentRequest reassigns homeroom teacher and majors. An empty
// majorIds list is legal and clears all major membership.
type AdminUpdateStudentRequest struct {
	GVCN     string   `json:"gvcn" validate:"required,len=24,hexadecimal"`
	MajorIDs []string `json:"majorIds" validate:"dive,len=24,hexadecimal"`
}

type RestoreStudentRequest struct {
	MSV string `json:"msv" validate:"required"`
}

type CreateAdminRequest struct {
	MSV      string `json:"msv" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}
