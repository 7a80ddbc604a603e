package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/middleware"
)

// AuthService issues login tokens. Students and admins log in with their
// msv, teachers with their mgv; both live behind the same endpoint.
type AuthService struct {
	students StudentStore
	teachers TeacherStore
	secret   string
	tokenTTL time.Duration
}

func NewAuthService(students StudentStore, teachers TeacherStore, secret string) *AuthService {
	return &AuthService{students: students, teachers: teachers, secret: secret, tokenTTL: 24 * time.Hour}
}

// Login verifies the code/password pair and returns a signed token. The
// error is the same for unknown accounts and wrong passwords.
func (s *AuthService) Login(ctx context.Context, code, password string) (string, error) {
	uid, isAdmin, isGV, hash, err := s.lookup(ctx, code)
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", apperr.BadRequest("Incorrect login credentials")
	}

	now := time.Now()
	claims := middleware.Claims{
		UID:     uid,
		IsAdmin: isAdmin,
		IsGV:    isGV,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", apperr.Internal(err)
	}
	return token, nil
}

// Me resolves a token's uid back to its account, student or teacher.
func (s *AuthService) Me(ctx context.Context, uid bson.ObjectID) (any, error) {
	student, err := s.students.FindByID(ctx, uid)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if student != nil && !student.Deleted {
		return student, nil
	}
	teacher, err := s.teachers.FindByID(ctx, uid)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if teacher != nil && !teacher.Deleted {
		return teacher, nil
	}
	return nil, apperr.NotFound("Account not found")
}

func (s *AuthService) lookup(ctx context.Context, code string) (uid string, isAdmin, isGV bool, hash string, err error) {
	student, err := s.students.FindByMSV(ctx, code)
	if err != nil {
		return "", false, false, "", apperr.Internal(err)
	}
	if student != nil && !student.Deleted {
		return student.ID.Hex(), student.IsAdmin, student.IsGV, student.Password, nil
	}
	teacher, err := s.teachers.FindByMGV(ctx, code)
	if err != nil {
		return "", false, false, "", apperr.Internal(err)
	}
	if teacher != nil && !teacher.Deleted {
		return teacher.ID.Hex(), teacher.IsAdmin, teacher.IsGV, teacher.Password, nil
	}
	return "", false, false, "", apperr.BadRequest("Incorrect login credentials")
}
