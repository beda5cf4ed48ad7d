package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/spec-kit/employee-portal/pkg/util/errorutil"
)

func newTimesheetServiceForTest(timesheets *fakeTimesheetRepo, roles *fakeRoleRepo) *TimesheetService {
	return NewTimesheetService(TimesheetDependencies{
		TimesheetRepo: timesheets,
		Authorizer:    NewAuthorizationService(roles),
	})
}

func TestRecordEntryHoursBounds(t *testing.T) {
	tests := []struct {
		name      string
		hours     string
		wantError bool
	}{
		{name: "zero", hours: "0", wantError: true},
		{name: "negative", hours: "-1", wantError: true},
		{name: "just above max", hours: "24.01", wantError: true},
		{name: "max inclusive", hours: "24"},
		{name: "min exclusive", hours: "0.01"},
		{name: "typical day", hours: "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timesheets := newFakeTimesheetRepo()
			svc := newTimesheetServiceForTest(timesheets, &fakeRoleRepo{})

			entry, err := svc.RecordEntry(context.Background(), "emp-1", TimesheetInput{
				WorkDate:    date(2024, 4, 1),
				HoursWorked: decimal.RequireFromString(tt.hours),
			})
			if tt.wantError {
				if !apperrors.IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if len(timesheets.entries) != 0 {
					t.Fatalf("expected no entry stored, got %d", len(timesheets.entries))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !entry.Submitted {
				t.Fatal("expected submitted flag set")
			}
			if !entry.HoursWorked.Equal(decimal.RequireFromString(tt.hours)) {
				t.Fatalf("expected hours %s, got %s", tt.hours, entry.HoursWorked)
			}
		})
	}
}

func TestRecordEntryUpsert(t *testing.T) {
	timesheets := newFakeTimesheetRepo()
	svc := newTimesheetServiceForTest(timesheets, &fakeRoleRepo{})
	ctx := context.Background()
	workDate := date(2024, 4, 1)

	first, err := svc.RecordEntry(ctx, "emp-1", TimesheetInput{
		WorkDate:    workDate,
		HoursWorked: decimal.NewFromInt(8),
	})
	if err != nil {
		t.Fatalf("first record: %v", err)
	}

	project := "portal"
	second, err := svc.RecordEntry(ctx, "emp-1", TimesheetInput{
		WorkDate:    workDate,
		HoursWorked: decimal.NewFromInt(6),
		ProjectName: &project,
	})
	if err != nil {
		t.Fatalf("second record: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected replacement to keep id %s, got %s", first.ID, second.ID)
	}

	entries, err := svc.ListOwnEntries(ctx, "emp-1", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	if !entries[0].HoursWorked.Equal(decimal.NewFromInt(6)) {
		t.Fatalf("expected 6 hours after replacement, got %s", entries[0].HoursWorked)
	}
	if entries[0].ProjectName == nil || *entries[0].ProjectName != "portal" {
		t.Fatalf("expected project replaced, got %v", entries[0].ProjectName)
	}
}

func TestListOwnEntriesOrderAndLimit(t *testing.T) {
	timesheets := newFakeTimesheetRepo()
	svc := newTimesheetServiceForTest(timesheets, &fakeRoleRepo{})
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		if _, err := svc.RecordEntry(ctx, "emp-1", TimesheetInput{
			WorkDate:    date(2024, 4, day),
			HoursWorked: decimal.NewFromInt(int64(day)),
		}); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}

	entries, err := svc.ListOwnEntries(ctx, "emp-1", 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if !entries[0].WorkDate.Equal(date(2024, 4, 5)) {
		t.Fatalf("expected newest work date first, got %s", entries[0].WorkDate)
	}
}

func TestSumOfRecentEntriesVersusRange(t *testing.T) {
	timesheets := newFakeTimesheetRepo()
	svc := newTimesheetServiceForTest(timesheets, &fakeRoleRepo{})
	ctx := context.Background()

	// Five 8-hour days in April.
	for day := 1; day <= 5; day++ {
		if _, err := svc.RecordEntry(ctx, "emp-1", TimesheetInput{
			WorkDate:    date(2024, 4, day),
			HoursWorked: decimal.NewFromInt(8),
		}); err != nil {
			t.Fatalf("record day %d: %v", day, err)
		}
	}

	// The page total only covers the fetched rows.
	page, err := svc.ListOwnEntries(ctx, "emp-1", 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	pageTotal := svc.SumOfRecentEntries(page)
	if !pageTotal.Equal(decimal.NewFromInt(24)) {
		t.Fatalf("expected page total 24, got %s", pageTotal)
	}

	// The range total covers every row in the window.
	rangeTotal, err := svc.SumHoursInRange(ctx, "emp-1", date(2024, 4, 1), date(2024, 5, 1))
	if err != nil {
		t.Fatalf("range sum: %v", err)
	}
	if !rangeTotal.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("expected range total 40, got %s", rangeTotal)
	}
}

func TestHoursThisMonth(t *testing.T) {
	timesheets := newFakeTimesheetRepo()
	svc := newTimesheetServiceForTest(timesheets, &fakeRoleRepo{})
	ctx := context.Background()

	entries := []struct {
		workDate time.Time
		hours    int64
	}{
		{date(2024, 3, 29), 8}, // previous month, excluded
		{date(2024, 4, 1), 7},
		{date(2024, 4, 15), 6},
	}
	for _, e := range entries {
		if _, err := svc.RecordEntry(ctx, "emp-1", TimesheetInput{
			WorkDate:    e.workDate,
			HoursWorked: decimal.NewFromInt(e.hours),
		}); err != nil {
			t.Fatalf("record %s: %v", e.workDate, err)
		}
	}

	total, err := svc.HoursThisMonth(ctx, "emp-1", date(2024, 4, 20))
	if err != nil {
		t.Fatalf("month sum: %v", err)
	}
	if !total.Equal(decimal.NewFromInt(13)) {
		t.Fatalf("expected 13 hours this month, got %s", total)
	}
}

func TestListAllEntriesRequiresAdmin(t *testing.T) {
	timesheets := newFakeTimesheetRepo()
	timesheets.employees["emp-1"] = fakeEmployee{name: "Dana Fox", code: "E-100"}
	roles := &fakeRoleRepo{admins: map[string]bool{"admin-1": true}}
	svc := newTimesheetServiceForTest(timesheets, roles)
	ctx := context.Background()

	if _, err := svc.RecordEntry(ctx, "emp-1", TimesheetInput{
		WorkDate:    date(2024, 4, 1),
		HoursWorked: decimal.NewFromInt(8),
	}); err != nil {
		t.Fatalf("record: %v", err)
	}

	if _, err := svc.ListAllEntries(ctx, "emp-1", 0); !apperrors.IsAuthorization(err) {
		t.Fatalf("expected authorization error for non-admin, got %v", err)
	}

	listed, err := svc.ListAllEntries(ctx, "admin-1", 0)
	if err != nil {
		t.Fatalf("unexpected error for admin: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(listed))
	}
	if listed[0].EmployeeName != "Dana Fox" || listed[0].EmployeeCode != "E-100" {
		t.Fatalf("expected joined employee fields, got %+v", listed[0])
	}
}
