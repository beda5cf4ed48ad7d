package service

import (
	"context"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/repository"
)

// AuthorizationService answers privilege questions ahead of cross-employee
// operations.
type AuthorizationService struct {
	roles repository.RoleRepository
}

// NewAuthorizationService builds the service.
func NewAuthorizationService(roles repository.RoleRepository) *AuthorizationService {
	return &AuthorizationService{roles: roles}
}

// IsAdmin reports whether userID holds the admin role. A missing role row
// yields (false, nil); an error is returned only when the store could not
// answer, so callers can tell "denied" from "unknown".
func (s *AuthorizationService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.roles.HasRole(ctx, userID, domain.RoleAdmin)
}
