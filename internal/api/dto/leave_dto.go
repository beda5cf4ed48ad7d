package dto

import (
	"time"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// SubmitLeaveRequest payload. Dates use YYYY-MM-DD.
type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

// DecideLeaveRequest payload for admin decisions.
type DecideLeaveRequest struct {
	Decision string  `json:"decision"`
	Notes    *string `json:"notes,omitempty"`
}

// LeaveResponse response.
type LeaveResponse struct {
	ID         string             `json:"id"`
	EmployeeID string             `json:"employee_id"`
	LeaveType  domain.LeaveType   `json:"leave_type"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	Reason     string             `json:"reason"`
	Status     domain.LeaveStatus `json:"status"`
	AdminNotes *string            `json:"admin_notes"`
	CreatedAt  time.Time          `json:"created_at"`
}

// LeaveWithEmployeeResponse adds requester directory fields for admin
// listings.
type LeaveWithEmployeeResponse struct {
	LeaveResponse
	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
}

// LeaveStatsResponse summarizes an employee's leave counters.
type LeaveStatsResponse struct {
	PendingCount  int `json:"pending_count"`
	ApprovedCount int `json:"approved_count"`
}
