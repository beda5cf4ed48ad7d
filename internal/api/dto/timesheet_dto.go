package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordTimesheetRequest payload. WorkDate uses YYYY-MM-DD; a resubmission
// for the same date replaces the prior entry.
type RecordTimesheetRequest struct {
	WorkDate    string          `json:"work_date"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	ProjectName *string         `json:"project_name,omitempty"`
	Description *string         `json:"description,omitempty"`
}

// TimesheetResponse response.
type TimesheetResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	WorkDate    string          `json:"work_date"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	ProjectName *string         `json:"project_name"`
	Description *string         `json:"description"`
	Submitted   bool            `json:"submitted"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TimesheetWithEmployeeResponse adds owner directory fields for admin
// listings.
type TimesheetWithEmployeeResponse struct {
	TimesheetResponse
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
}

// TimesheetListResponse carries a page of entries plus the page total.
// TotalHours sums only the returned page, not the full history.
type TimesheetListResponse struct {
	Entries    []TimesheetResponse `json:"entries"`
	TotalHours decimal.Decimal     `json:"total_hours"`
}

// DashboardStatsResponse mirrors the dashboard counters.
type DashboardStatsResponse struct {
	PendingLeaves  int             `json:"pending_leaves"`
	ApprovedLeaves int             `json:"approved_leaves"`
	ThisMonthHours decimal.Decimal `json:"this_month_hours"`
}
