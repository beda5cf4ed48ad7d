package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/events"
	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

// LeaveService coordinates the leave request workflow: submission by
// employees, listing, and one-shot decisions by admins.
type LeaveService struct {
	leaves     repository.LeaveRepository
	authz      *AuthorizationService
	dispatcher events.Dispatcher
}

// LeaveDependencies bundles requirements for the leave service.
type LeaveDependencies struct {
	LeaveRepo  repository.LeaveRepository
	Authorizer *AuthorizationService
	Dispatcher events.Dispatcher
}

// LeaveSubmission describes a new leave request payload.
type LeaveSubmission struct {
	LeaveType domain.LeaveType
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// NewLeaveService constructs the service.
func NewLeaveService(deps LeaveDependencies) *LeaveService {
	return &LeaveService{
		leaves:     deps.LeaveRepo,
		authz:      deps.Authorizer,
		dispatcher: deps.Dispatcher,
	}
}

// SubmitLeaveRequest validates and persists a new request with status
// pending. Admin notes are never set at creation.
func (s *LeaveService) SubmitLeaveRequest(ctx context.Context, employeeID string, input LeaveSubmission) (*domain.LeaveRequest, error) {
	if !domain.ValidLeaveType(input.LeaveType) {
		return nil, apperrors.NewValidationError("unknown leave type", map[string]any{"leave_type": input.LeaveType})
	}
	if input.StartDate.After(input.EndDate) {
		return nil, apperrors.NewValidationError("start date must not be after end date", nil)
	}
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("reason required", nil)
	}

	request := &domain.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  input.LeaveType,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Reason:     reason,
		Status:     domain.LeaveStatusPending,
	}
	if err := s.leaves.Create(ctx, request); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventLeaveSubmitted,
		EmployeeID: employeeID,
		ActorID:    employeeID,
		Payload: events.LeaveSubmittedPayload{
			LeaveID:   request.ID,
			LeaveType: request.LeaveType,
			StartDate: request.StartDate,
			EndDate:   request.EndDate,
		},
	})
	return request, nil
}

// ListOwnLeaveRequests returns the employee's requests, newest first.
func (s *LeaveService) ListOwnLeaveRequests(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	requests, err := s.leaves.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return requests, nil
}

// ListAllLeaveRequests returns every request across employees joined with
// requester directory fields. Admin only.
func (s *LeaveService) ListAllLeaveRequests(ctx context.Context, callerID string) ([]domain.LeaveRequestWithEmployee, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	requests, err := s.leaves.ListAllWithEmployee(ctx)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return requests, nil
}

// DecideLeaveRequest transitions a pending request to approved or rejected
// exactly once. The decision and notes land in a single conditional write;
// a request no longer pending yields a state conflict, never a partial
// update.
func (s *LeaveService) DecideLeaveRequest(ctx context.Context, adminID, leaveID string, decision domain.LeaveStatus, notes *string) (*domain.LeaveRequest, error) {
	if err := s.requireAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	if decision != domain.LeaveStatusApproved && decision != domain.LeaveStatusRejected {
		return nil, apperrors.NewValidationError("decision must be approved or rejected", map[string]any{"decision": decision})
	}

	updated, err := s.leaves.UpdateDecision(ctx, leaveID, decision, notes)
	if err != nil {
		if err != pgx.ErrNoRows {
			return nil, apperrors.NewStoreError(err)
		}
		// The guard did not match: either the request does not exist or it
		// was already decided. Disambiguate with a plain read.
		current, getErr := s.leaves.GetByID(ctx, leaveID)
		if getErr != nil {
			if getErr == pgx.ErrNoRows {
				return nil, apperrors.NewNotFound("leave request", map[string]any{"id": leaveID})
			}
			return nil, apperrors.NewStoreError(getErr)
		}
		return nil, apperrors.NewStateError("leave request already decided", map[string]any{"status": current.Status})
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventLeaveDecided,
		EmployeeID: updated.EmployeeID,
		ActorID:    adminID,
		Payload: events.LeaveDecidedPayload{
			LeaveID:   updated.ID,
			OldStatus: domain.LeaveStatusPending,
			NewStatus: updated.Status,
			Notes:     updated.AdminNotes,
		},
	})
	return updated, nil
}

// ComputeLeaveStats counts the employee's requests by status. Counts cover
// the full history, not the current year.
func (s *LeaveService) ComputeLeaveStats(ctx context.Context, employeeID string) (*domain.LeaveStats, error) {
	requests, err := s.ListOwnLeaveRequests(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	stats := &domain.LeaveStats{}
	for _, request := range requests {
		switch request.Status {
		case domain.LeaveStatusPending:
			stats.PendingCount++
		case domain.LeaveStatusApproved:
			stats.ApprovedCount++
		}
	}
	return stats, nil
}

func (s *LeaveService) requireAdmin(ctx context.Context, callerID string) error {
	isAdmin, err := s.authz.IsAdmin(ctx, callerID)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if !isAdmin {
		return apperrors.NewAuthorizationError("admin role required")
	}
	return nil
}

func (s *LeaveService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
