package service

import (
	"context"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// AdminService is the read-only cross-employee projection for
// administrators. It holds the single admin gate per call; the underlying
// listings carry no rules of their own.
type AdminService struct {
	authz      *AuthorizationService
	profiles   repository.ProfileRepository
	leaves     repository.LeaveRepository
	timesheets repository.TimesheetRepository
}

// AdminDependencies bundles requirements for the admin service.
type AdminDependencies struct {
	Authorizer    *AuthorizationService
	ProfileRepo   repository.ProfileRepository
	LeaveRepo     repository.LeaveRepository
	TimesheetRepo repository.TimesheetRepository
}

// AdminOverview combines the employee directory with all leave requests
// and recent timesheet entries.
type AdminOverview struct {
	Employees  []domain.Profile
	Leaves     []domain.LeaveRequestWithEmployee
	Timesheets []domain.TimesheetEntryWithEmployee
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		authz:      deps.Authorizer,
		profiles:   deps.ProfileRepo,
		leaves:     deps.LeaveRepo,
		timesheets: deps.TimesheetRepo,
	}
}

// Overview assembles the admin surface. The gate runs once; the combined
// reads share that single grant. Fails closed on a non-admin caller or a
// gate error.
func (s *AdminService) Overview(ctx context.Context, callerID string) (*AdminOverview, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	employees, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	leaves, err := s.leaves.ListAllWithEmployee(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	timesheets, err := s.timesheets.ListAllWithEmployee(ctx, defaultAllEntriesLimit)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	return &AdminOverview{
		Employees:  employees,
		Leaves:     leaves,
		Timesheets: timesheets,
	}, nil
}

// ListEmployees returns the directory ordered by creation time, newest
// first. Admin only.
func (s *AdminService) ListEmployees(ctx context.Context, callerID string) ([]domain.Profile, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	employees, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return employees, nil
}

func (s *AdminService) requireAdmin(ctx context.Context, callerID string) error {
	isAdmin, err := s.authz.IsAdmin(ctx, callerID)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if !isAdmin {
		return apperrors.NewAuthorizationError("admin role required")
	}
	return nil
}
