package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// ProfileService reads and mutates employee directory records. Profiles are
// created by registration and never deleted; mutation is limited to the
// employee themselves or an admin.
type ProfileService struct {
	profiles repository.ProfileRepository
	authz    *AuthorizationService
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.ProfileRepository, authz *AuthorizationService) *ProfileService {
	return &ProfileService{profiles: profiles, authz: authz}
}

// GetProfile fetches a profile by user identifier.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("profile", map[string]any{"id": userID})
		}
		return nil, apperrors.NewStoreError(err)
	}
	return profile, nil
}

// UpdateProfile applies a patch to targetID. Callers other than the target
// must hold the admin role.
func (s *ProfileService) UpdateProfile(ctx context.Context, callerID, targetID string, patch domain.ProfilePatch) (*domain.Profile, error) {
	if callerID != targetID {
		isAdmin, err := s.authz.IsAdmin(ctx, callerID)
		if err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		if !isAdmin {
			return nil, apperrors.NewAuthorizationError("admin role required")
		}
	}

	profile, err := s.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		if name == "" {
			return nil, apperrors.NewValidationError("full name must not be empty", nil)
		}
		profile.FullName = name
	}
	if patch.Department != nil {
		profile.Department = patch.Department
	}
	if patch.Position != nil {
		profile.Position = patch.Position
	}

	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return profile, nil
}
