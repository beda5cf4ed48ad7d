package domain

import "time"

// LeaveType enumerates the leave categories employees may request.
type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "annual"
	LeaveTypeSick     LeaveType = "sick"
	LeaveTypePersonal LeaveType = "personal"
	LeaveTypeUnpaid   LeaveType = "unpaid"
)

// ValidLeaveType reports whether t is one of the known categories.
func ValidLeaveType(t LeaveType) bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypePersonal, LeaveTypeUnpaid:
		return true
	}
	return false
}

// LeaveStatus enumerates lifecycle states for leave requests.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Terminal reports whether no further transition is permitted.
func (s LeaveStatus) Terminal() bool {
	return s == LeaveStatusApproved || s == LeaveStatusRejected
}

// LeaveRequest is the aggregate for employee leave.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveStatus
	AdminNotes *string
	CreatedAt  time.Time
}

// LeaveRequestWithEmployee joins a request with its requester's directory fields.
type LeaveRequestWithEmployee struct {
	LeaveRequest
	EmployeeName string
	EmployeeCode string
}

// LeaveStats summarizes an employee's leave history. Counts are lifetime
// totals, not scoped to the current year.
type LeaveStats struct {
	PendingCount  int
	ApprovedCount int
}
