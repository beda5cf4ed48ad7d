package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetEntry records hours worked by an employee on a single date.
// At most one entry exists per (employee, work date); resubmission replaces
// the prior entry.
type TimesheetEntry struct {
	ID          string
	EmployeeID  string
	WorkDate    time.Time
	HoursWorked decimal.Decimal
	ProjectName *string
	Description *string
	Submitted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TimesheetEntryWithEmployee joins an entry with its owner's directory fields.
type TimesheetEntryWithEmployee struct {
	TimesheetEntry
	EmployeeName string
	EmployeeCode string
}

// SumHours is a pure reduction over entries. It sums exactly the entries it
// is given; callers deciding between a page total and a true window total
// choose what to pass in.
func SumHours(entries []TimesheetEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range entries {
		total = total.Add(entry.HoursWorked)
	}
	return total
}
