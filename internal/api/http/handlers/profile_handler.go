package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-portal/internal/api/dto"
	"github.com/spec-kit/employee-portal/internal/auth"
	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/service"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// ProfileHandler exposes the caller's own directory record.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profileService}
}

// Me handles GET /me.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	profile, err := h.profiles.GetProfile(c.Context(), principal.Profile.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

// UpdateMe handles PATCH /me.
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.profiles.UpdateProfile(c.Context(), principal.Profile.ID, principal.Profile.ID, domain.ProfilePatch{
		FullName:   req.FullName,
		Department: req.Department,
		Position:   req.Position,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": profileResponse(profile)})
}

func profileResponse(profile *domain.Profile) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:           profile.ID,
		EmployeeCode: profile.EmployeeCode,
		FullName:     profile.FullName,
		Email:        profile.Email,
		Department:   profile.Department,
		Position:     profile.Position,
		CreatedAt:    profile.CreatedAt,
	}
}
