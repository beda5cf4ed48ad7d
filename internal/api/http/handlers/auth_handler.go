package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/service"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// AuthHandler exposes registration, login, and sign-out endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FullName == "" || req.Email == "" || req.EmployeeCode == "" || req.Password == "" {
		return apperrors.NewValidationError("full_name, email, employee_code, password required", nil)
	}

	profile, token, exp, err := h.auth.Register(c.Context(), service.RegisterInput{
		FullName:     req.FullName,
		Email:        req.Email,
		EmployeeCode: req.EmployeeCode,
		Password:     req.Password,
		Department:   req.Department,
		Position:     req.Position,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"profile": profileResponse(profile),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	profile, token, exp, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"profile": profileResponse(profile),
			"auth":    dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.auth.SignOut(c.Context(), principal.TokenID, principal.TokenExpiresAt); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"signed_out": true}})
}
