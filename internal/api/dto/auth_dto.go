package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	EmployeeCode string  `json:"employee_code"`
	Password     string  `json:"password"`
	Department   *string `json:"department,omitempty"`
	Position     *string `json:"position,omitempty"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
