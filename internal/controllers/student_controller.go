package controllers

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/middleware"
	"uniadmin_backend/internal/services"
	"uniadmin_backend/utils"
)

type StudentHandler struct {
	students   *services.StudentService
	enrollment *services.EnrollmentService
	lifecycle  *services.LifecycleService
}

func NewStudentHandler(students *services.StudentService, enrollment *services.EnrollmentService, lifecycle *services.LifecycleService) *StudentHandler {
	return &StudentHandler{students: students, enrollment: enrollment, lifecycle: lifecycle}
}

// CreateStudent godoc
// @Summary      Enroll a new student
// @Description  Creates the student and joins the majors' and classroom's membership arrays atomically. The initial password is the msv.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body body dto.CreateStudentRequest true "Student"
// @Success      201 {object} models.Student
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /students [post]
func (h *StudentHandler) CreateStudent(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	student, err := h.enrollment.CreateStudent(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(student)
}

// GetStudents godoc
// @Summary      List active students
// @Tags         students
// @Produce      json
// @Success      200 {array} models.Student
// @Router       /students [get]
func (h *StudentHandler) GetStudents(c *fiber.Ctx) error {
	students, err := h.students.List(c.Context())
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(students)
}

// GetStudent godoc
// @Summary      Get one student
// @Tags         students
// @Produce      json
// @Param        id path string true "Student ID"
// @Success      200 {object} models.Student
// @Failure      404 {object} dto.ErrorResponse
// @Router       /students/{id} [get]
func (h *StudentHandler) GetStudent(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	student, err := h.students.Get(c.Context(), id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(student)
}

// SearchStudents godoc
// @Summary      Search students
// @Description  Matches msv, fullname, email, phone, class and major names.
// @Tags         students
// @Produce      json
// @Param        keyword query string true "Search keyword"
// @Success      200 {array} models.Student
// @Failure      404 {object} dto.ErrorResponse
// @Router       /students/search [get]
func (h *StudentHandler) SearchStudents(c *fiber.Ctx) error {
	students, err := h.students.Search(c.Context(), c.Query("keyword"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(students)
}

// UpdateProfile is the student's own edit; the id comes from the token,
// never from the path.
func (h *StudentHandler) UpdateProfile(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateProfileRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	student, err := h.students.UpdateProfile(c.Context(), uid, req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(student)
}

// AdminUpdateStudent godoc
// @Summary      Reassign homeroom teacher and majors
// @Description  Applies both reassignments in one transaction.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id path string true "Student ID"
// @Param        body body dto.AdminUpdateStudentRequest true "Assignment"
// @Success      200 {object} models.Student
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /students/{id} [put]
func (h *StudentHandler) AdminUpdateStudent(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	var req dto.AdminUpdateStudentRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	student, err := h.enrollment.AdminUpdate(c.Context(), id, req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(student)
}

// DeleteStudent godoc
// @Summary      Soft-delete a student
// @Description  Hides the student and detaches them from classroom and major membership; transcripts are hidden with them.
// @Tags         students
// @Produce      json
// @Param        id path string true "Student ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := utils.Oid(c.Params("id"))
	if err != nil {
		return apperr.Respond(c, apperr.BadRequest("invalid id"))
	}
	if err := h.lifecycle.DeleteStudent(c.Context(), id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Student deleted"})
}

// RestoreStudent godoc
// @Summary      Restore a soft-deleted student by msv
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body body dto.RestoreStudentRequest true "Student number"
// @Success      200 {object} models.Student
// @Failure      400 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /students/restore [post]
func (h *StudentHandler) RestoreStudent(c *fiber.Ctx) error {
	var req dto.RestoreStudentRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	student, err := h.lifecycle.RestoreStudent(c.Context(), req.MSV)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(student)
}

// CreateAdmin provisions an admin account in the users collection.
func (h *StudentHandler) CreateAdmin(c *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	admin, err := h.students.CreateAdmin(c.Context(), req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(admin)
}

// ChangePassword verifies the old password before setting the new one.
func (h *StudentHandler) ChangePassword(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	var req dto.ChangePasswordRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	if err := h.students.ChangePassword(c.Context(), uid, req.OldPassword, req.NewPassword); err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Password changed"})
}
