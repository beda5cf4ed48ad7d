package events

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spec-kit/employee-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeaveSubmitted    EventType = "leave_submitted"
	EventLeaveDecided      EventType = "leave_decided"
	EventTimesheetRecorded EventType = "timesheet_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EmployeeID string      `json:"employee_id"`
	ActorID    string      `json:"actor_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// LeaveSubmittedPayload payload.
type LeaveSubmittedPayload struct {
	LeaveID   string           `json:"leave_id"`
	LeaveType domain.LeaveType `json:"leave_type"`
	StartDate time.Time        `json:"start_date"`
	EndDate   time.Time        `json:"end_date"`
}

// LeaveDecidedPayload payload.
type LeaveDecidedPayload struct {
	LeaveID   string             `json:"leave_id"`
	OldStatus domain.LeaveStatus `json:"old_status"`
	NewStatus domain.LeaveStatus `json:"new_status"`
	Notes     *string            `json:"notes,omitempty"`
}

// TimesheetRecordedPayload payload.
type TimesheetRecordedPayload struct {
	EntryID  string          `json:"entry_id"`
	WorkDate time.Time       `json:"work_date"`
	Hours    decimal.Decimal `json:"hours"`
}
