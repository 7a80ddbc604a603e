package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"uniadmin_backend/internal/controllers"
	"uniadmin_backend/internal/repository"
	"uniadmin_backend/internal/services"
)

// Handlers bundles every wired controller. Built once at startup.
type Handlers struct {
	Auth       *controllers.AuthHandler
	Student    *controllers.StudentHandler
	Teacher    *controllers.TeacherHandler
	Classroom  *controllers.ClassroomHandler
	Faculty    *controllers.FacultyHandler
	Major      *controllers.MajorHandler
	Diligency  *controllers.DiligencyHandler
	Transcript *controllers.TranscriptHandler
}

// BuildHandlers wires repositories, services and controllers against the
// connected database.
func BuildHandlers(db *mongo.Database, client *mongo.Client, jwtSecret string) *Handlers {
	students := repository.NewStudentRepository(db)
	teachers := repository.NewTeacherRepository(db)
	classrooms := repository.NewClassroomRepository(db)
	majors := repository.NewMajorRepository(db)
	faculties := repository.NewFacultyRepository(db)
	diligencies := repository.NewDiligencyRepository(db)
	courses := repository.NewCourseRepository(db)
	transcripts := repository.NewTranscriptRepository(db)
	tx := repository.SessionRunner{Client: client}

	auth := services.NewAuthService(students, teachers, jwtSecret)
	studentSvc := services.NewStudentService(students, majors)
	enrollment := services.NewEnrollmentService(tx, students, teachers, classrooms, majors)
	lifecycle := services.NewLifecycleService(tx, students, teachers, classrooms, majors, faculties, transcripts)
	catalog := services.NewCatalogService(tx, students, teachers, classrooms, majors, faculties, courses)
	diligency := services.NewDiligencyService(tx, diligencies, students, courses)
	transcript := services.NewTranscriptService(transcripts, students, courses)

	return &Handlers{
		Auth:       controllers.NewAuthHandler(auth),
		Student:    controllers.NewStudentHandler(studentSvc, enrollment, lifecycle),
		Teacher:    controllers.NewTeacherHandler(catalog, lifecycle, teachers, classrooms, students),
		Classroom:  controllers.NewClassroomHandler(catalog, enrollment, lifecycle, classrooms),
		Faculty:    controllers.NewFacultyHandler(catalog, lifecycle, faculties, majors, teachers, students),
		Major:      controllers.NewMajorHandler(catalog, majors, courses),
		Diligency:  controllers.NewDiligencyHandler(diligency),
		Transcript: controllers.NewTranscriptHandler(transcript),
	}
}

// SetupRoutes registers every route group on the app.
func SetupRoutes(app *fiber.App, h *Handlers) {
	SetupAuth(app, h)
	SetupRoutesStudent(app, h)
	SetupRoutesTeacher(app, h)
	SetupRoutesClassroom(app, h)
	SetupRoutesFaculty(app, h)
	SetupRoutesMajor(app, h)
	SetupRoutesDiligency(app, h)
	SetupRoutesTranscript(app, h)
}
