package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spec-kit/employee-portal/internal/domain"
	"github.com/spec-kit/employee-portal/internal/events"
	"github.com/spec-kit/employee-portal/internal/repository"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

const (
	defaultOwnEntriesLimit = 30
	defaultAllEntriesLimit = 50
)

var maxDailyHours = decimal.NewFromInt(24)

// TimesheetService coordinates timesheet recording and aggregation.
type TimesheetService struct {
	timesheets repository.TimesheetRepository
	authz      *AuthorizationService
	dispatcher events.Dispatcher
}

// TimesheetDependencies bundles requirements for the timesheet service.
type TimesheetDependencies struct {
	TimesheetRepo repository.TimesheetRepository
	Authorizer    *AuthorizationService
	Dispatcher    events.Dispatcher
}

// TimesheetInput describes an entry submission.
type TimesheetInput struct {
	WorkDate    time.Time
	HoursWorked decimal.Decimal
	ProjectName *string
	Description *string
}

// NewTimesheetService constructs the service.
func NewTimesheetService(deps TimesheetDependencies) *TimesheetService {
	return &TimesheetService{
		timesheets: deps.TimesheetRepo,
		authz:      deps.Authorizer,
		dispatcher: deps.Dispatcher,
	}
}

// RecordEntry creates or replaces the entry for (employee, work date).
// Hours must satisfy 0 < h <= 24, both boundaries checked exactly.
func (s *TimesheetService) RecordEntry(ctx context.Context, employeeID string, input TimesheetInput) (*domain.TimesheetEntry, error) {
	if !input.HoursWorked.IsPositive() || input.HoursWorked.GreaterThan(maxDailyHours) {
		return nil, apperrors.NewValidationError("hours must be greater than 0 and at most 24", map[string]any{"hours_worked": input.HoursWorked})
	}
	if input.WorkDate.IsZero() {
		return nil, apperrors.NewValidationError("work date required", nil)
	}

	entry := &domain.TimesheetEntry{
		EmployeeID:  employeeID,
		WorkDate:    input.WorkDate,
		HoursWorked: input.HoursWorked,
		ProjectName: input.ProjectName,
		Description: input.Description,
		Submitted:   true,
	}
	if err := s.timesheets.Upsert(ctx, entry); err != nil {
		return nil, apperrors.NewStoreError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventTimesheetRecorded,
		EmployeeID: employeeID,
		ActorID:    employeeID,
		Payload: events.TimesheetRecordedPayload{
			EntryID:  entry.ID,
			WorkDate: entry.WorkDate,
			Hours:    entry.HoursWorked,
		},
	})
	return entry, nil
}

// ListOwnEntries returns the employee's most recent entries by work date,
// capped at limit (default 30).
func (s *TimesheetService) ListOwnEntries(ctx context.Context, employeeID string, limit int) ([]domain.TimesheetEntry, error) {
	if limit <= 0 {
		limit = defaultOwnEntriesLimit
	}
	entries, err := s.timesheets.ListByEmployee(ctx, employeeID, limit)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return entries, nil
}

// ListAllEntries returns recent entries across employees joined with owner
// directory fields, capped at limit (default 50). Admin only.
func (s *TimesheetService) ListAllEntries(ctx context.Context, callerID string, limit int) ([]domain.TimesheetEntryWithEmployee, error) {
	isAdmin, err := s.authz.IsAdmin(ctx, callerID)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	if !isAdmin {
		return nil, apperrors.NewAuthorizationError("admin role required")
	}
	if limit <= 0 {
		limit = defaultAllEntriesLimit
	}
	entries, err := s.timesheets.ListAllWithEmployee(ctx, limit)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return entries, nil
}

// SumOfRecentEntries totals exactly the entries passed in. This is the
// timesheet page figure: it covers only the fetched page and under-counts
// when more rows exist in the window. Not interchangeable with
// SumHoursInRange.
func (s *TimesheetService) SumOfRecentEntries(entries []domain.TimesheetEntry) decimal.Decimal {
	return domain.SumHours(entries)
}

// SumHoursInRange totals hours store-side over [from, to) regardless of
// how many entries exist.
func (s *TimesheetService) SumHoursInRange(ctx context.Context, employeeID string, from, to time.Time) (decimal.Decimal, error) {
	total, err := s.timesheets.SumHoursInRange(ctx, employeeID, from, to)
	if err != nil {
		return decimal.Zero, apperrors.NewStoreError(err)
	}
	return total, nil
}

// HoursThisMonth is the dashboard figure: a true calendar-month sum from
// the first of the month containing now.
func (s *TimesheetService) HoursThisMonth(ctx context.Context, employeeID string, now time.Time) (decimal.Decimal, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)
	return s.SumHoursInRange(ctx, employeeID, from, to)
}

func (s *TimesheetService) publishEvent(ctx context.Context, event events.Event) {
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
