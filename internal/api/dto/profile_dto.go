package dto

import "time"

// ProfileResponse is the directory view of an employee.
type ProfileResponse struct {
	ID           string    `json:"id"`
	EmployeeCode string    `json:"employee_code"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Department   *string   `json:"department"`
	Position     *string   `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateProfileRequest carries the mutable profile fields. Absent fields
// are left untouched.
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}
