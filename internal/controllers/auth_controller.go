package controllers

import (
	"github.com/gofiber/fiber/v2"

	"uniadmin_backend/dto"
	"uniadmin_backend/internal/apperr"
	"uniadmin_backend/internal/middleware"
	"uniadmin_backend/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary      Log in with msv or mgv
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.LoginResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := dto.ParseStrict(c, &req); err != nil {
		return apperr.Respond(c, err)
	}
	token, err := h.auth.Login(c.Context(), req.Code, req.Password)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(dto.LoginResponse{AccessToken: token})
}

// Me returns the account behind the bearer token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid, err := middleware.UIDObjectID(c)
	if err != nil {
		return err
	}
	account, err := h.auth.Me(c.Context(), uid)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(account)
}
