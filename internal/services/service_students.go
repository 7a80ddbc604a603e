package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/models"
)

// StudentService covers the student reads and the writes that touch only
// the student's own document.
type StudentService struct {
	students StudentStore
	majors   MajorStore
}

func NewStudentService(students StudentStore, majors MajorStore) *StudentService {
	return &StudentService{students: students, majors: majors}
}

func (s *StudentService) Get(ctx context.Context, id bson.ObjectID) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil || student.Deleted {
		return nil, apperr.NotFound("Student not found")
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.students.FindActive(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return students, nil
}

// Search matches the keyword against student fields (msv, fullname,
// email, phone, class) and against major names; students of matching
// majors are merged in, deduplicated.
func (s *StudentService) Search(ctx context.Context, keyword string) ([]models.Student, error) {
	if keyword == "" {
		return nil, apperr.BadRequest("keyword is required")
	}
	students, err := s.students.SearchByKeyword(ctx, keyword)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	majors, err := s.majors.SearchByName(ctx, keyword)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(majors) > 0 {
		majorIDs := make([]bson.ObjectID, 0, len(majors))
		for _, m := range majors {
			majorIDs = append(majorIDs, m.ID)
		}
		byMajor, err := s.students.FindByMajorIDs(ctx, majorIDs)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		seen := make(map[bson.ObjectID]struct{}, len(students))
		for _, st := range students {
			seen[st.ID] = struct{}{}
		}
		for _, st := range byMajor {
			if _, ok := seen[st.ID]; !ok {
				students = append(students, st)
			}
		}
	}
	if len(students) == 0 {
		return nil, apperr.NotFound("Student not found")
	}
	return students, nil
}

// UpdateProfile applies a student's own edit. Enrollment fields are not
// reachable from here.
func (s *StudentService) UpdateProfile(ctx context.Context, id bson.ObjectID, req dto.UpdateProfileRequest) (*models.Student, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student == nil || student.Deleted {
		return nil, apperr.NotFound("Student not found")
	}
	set := bson.M{
		"fullname": req.FullName,
		"email":    req.Email,
	}
	if req.Address != "" {
		set["address"] = req.Address
	}
	if req.DOB != "" {
		set["dob"] = req.DOB
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.Gender != "" {
		set["gender"] = req.Gender
	}
	parent := bson.M{}
	for field, val := range map[string]string{
		"fatherName":       req.FatherName,
		"motherName":       req.MotherName,
		"fatherJob":        req.FatherJob,
		"motherJob":        req.MotherJob,
		"parentPhone":      req.ParentPhone,
		"nation":           req.Nation,
		"presentAddress":   req.PresentAddress,
		"permanentAddress": req.PermanentAddress,
	} {
		if val != "" {
			parent["parent."+field] = val
		}
	}
	for k, v := range parent {
		set[k] = v
	}
	if err := s.students.SetProfile(ctx, id, set); err != nil {
		return nil, apperr.Internal(err)
	}
	return s.students.FindByID(ctx, id)
}

// ChangePassword verifies the old password before storing the new hash.
func (s *StudentService) ChangePassword(ctx context.Context, id bson.ObjectID, oldPassword, newPassword string) error {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if student == nil || student.Deleted {
		return apperr.NotFound("Student not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(oldPassword)) != nil {
		return apperr.BadRequest("Old password is incorrect")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}
	return asAppErr(s.students.SetProfile(ctx, id, bson.M{"password": string(hash)}))
}

// CreateAdmin inserts an admin account in the users collection. Admins
// carry no enrollment fields.
func (s *StudentService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) (*models.Student, error) {
	existing, err := s.students.FindByMSV(ctx, req.MSV)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	admin := &models.Student{
		MSV:      req.MSV,
		Password: string(hash),
		IsAdmin:  true,
	}
	if _, err := s.students.Insert(ctx, admin); err != nil {
		return nil, apperr.Internal(err)
	}
	return admin, nil
}
