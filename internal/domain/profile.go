package domain

import "time"

// Profile is the directory record for an employee.
type Profile struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	PasswordHash string
	Department   *string
	Position     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfilePatch carries the fields an employee or admin may change.
type ProfilePatch struct {
	FullName   *string
	Department *string
	Position   *string
}
