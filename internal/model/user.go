package model

import "time"

// Role is the closed set of user roles.
type Role string

const (
	RoleCustomer      Role = "customer"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdministrator
}

// User represents a user in the database. PasswordHash and AnswerHash are
// never serialized into API responses.
type User struct {
	ID               int64
	Name             string
	Email            string
	PasswordHash     string
	Role             Role
	SecurityQuestion string
	AnswerHash       string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	SecurityQuestion string `json:"securityQuestion"`
	SecurityAnswer   string `json:"securityAnswer"`
}

// RegisterResponse is returned on successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token plus the display data the
// frontend needs without a second round trip.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
}

// UserResponse represents user data safe for admin listing (no hashes).
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// UpdateUserRequest represents an admin update of a user's profile.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// FindQuestionRequest starts the password recovery flow.
type FindQuestionRequest struct {
	Email string `json:"email"`
}

// FindQuestionResponse returns the human-readable security question.
type FindQuestionResponse struct {
	Question string `json:"question"`
}

// VerifyAnswerRequest is the second recovery step.
type VerifyAnswerRequest struct {
	Email  string `json:"email"`
	Answer string `json:"answer"`
}

// VerifyAnswerResponse carries the single-purpose reset token.
type VerifyAnswerResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}

// ResetPasswordRequest is the final recovery step.
type ResetPasswordRequest struct {
	ResetToken  string `json:"resetToken"`
	NewPassword string `json:"newPassword"`
}
