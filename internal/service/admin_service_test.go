package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/employee-portal/internal/domain"
	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

func TestAdminOverview(t *testing.T) {
	ctx := context.Background()

	profiles := newFakeProfileRepo()
	leaves := newFakeLeaveRepo()
	timesheets := newFakeTimesheetRepo()
	roles := &fakeRoleRepo{admins: map[string]bool{"admin-1": true}}

	for _, name := range []string{"Dana Fox", "Eli Gray"} {
		profile := &domain.Profile{FullName: name, Email: name + "@example.com", EmployeeCode: "E-" + name[:1]}
		if err := profiles.Create(ctx, profile); err != nil {
			t.Fatalf("create profile: %v", err)
		}
		leaves.employees[profile.ID] = fakeEmployee{name: name, code: profile.EmployeeCode}
		timesheets.employees[profile.ID] = fakeEmployee{name: name, code: profile.EmployeeCode}
	}

	request := &domain.LeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  domain.LeaveTypeAnnual,
		StartDate:  date(2024, 8, 1),
		EndDate:    date(2024, 8, 2),
		Reason:     "trip",
		Status:     domain.LeaveStatusPending,
	}
	if err := leaves.Create(ctx, request); err != nil {
		t.Fatalf("create leave: %v", err)
	}
	entry := &domain.TimesheetEntry{
		EmployeeID:  "emp-2",
		WorkDate:    date(2024, 8, 1),
		HoursWorked: decimal.NewFromInt(8),
		Submitted:   true,
	}
	if err := timesheets.Upsert(ctx, entry); err != nil {
		t.Fatalf("create entry: %v", err)
	}

	svc := NewAdminService(AdminDependencies{
		Authorizer:    NewAuthorizationService(roles),
		ProfileRepo:   profiles,
		LeaveRepo:     leaves,
		TimesheetRepo: timesheets,
	})

	t.Run("non-admin is denied with no data", func(t *testing.T) {
		overview, err := svc.Overview(ctx, "emp-1")
		if !apperrors.IsAuthorization(err) {
			t.Fatalf("expected authorization error, got %v", err)
		}
		if overview != nil {
			t.Fatal("expected no overview for denied caller")
		}
	})

	t.Run("gate failure fails closed", func(t *testing.T) {
		broken := NewAdminService(AdminDependencies{
			Authorizer:    NewAuthorizationService(&fakeRoleRepo{err: errors.New("store down")}),
			ProfileRepo:   profiles,
			LeaveRepo:     leaves,
			TimesheetRepo: timesheets,
		})
		overview, err := broken.Overview(ctx, "admin-1")
		if !apperrors.IsStore(err) {
			t.Fatalf("expected store error, got %v", err)
		}
		if overview != nil {
			t.Fatal("expected no overview on gate error")
		}
	})

	t.Run("admin sees combined surface newest first", func(t *testing.T) {
		overview, err := svc.Overview(ctx, "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(overview.Employees) != 2 {
			t.Fatalf("expected 2 employees, got %d", len(overview.Employees))
		}
		if overview.Employees[0].FullName != "Eli Gray" {
			t.Fatalf("expected newest profile first, got %s", overview.Employees[0].FullName)
		}
		if len(overview.Leaves) != 1 || len(overview.Timesheets) != 1 {
			t.Fatalf("expected 1 leave and 1 timesheet, got %d/%d", len(overview.Leaves), len(overview.Timesheets))
		}
	})
}

func TestListEmployeesRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	profiles := newFakeProfileRepo()
	svc := NewAdminService(AdminDependencies{
		Authorizer:    NewAuthorizationService(&fakeRoleRepo{}),
		ProfileRepo:   profiles,
		LeaveRepo:     newFakeLeaveRepo(),
		TimesheetRepo: newFakeTimesheetRepo(),
	})

	if _, err := svc.ListEmployees(ctx, "emp-1"); !apperrors.IsAuthorization(err) {
		t.Fatalf("expected authorization error, got %v", err)
	}
}
