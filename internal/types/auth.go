// Package types provides request and response type definitions for the
// InternMatch HTTP API.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterRequest represents the request to create a new account. Admin
// accounts cannot self-register; company accounts must name an organization
// (enforced in the handler, not by tags, so the error message can be precise).
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,min=1"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role" validate:"required,oneof=student company admin"`
	Organization string `json:"organization,omitempty"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents an account for API responses (avoids import cycle with db package).
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	Organization string    `json:"organization,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and
// authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UpdatePasswordRequest represents a password update request.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdatePasswordRequest using the validator.
func (r *UpdatePasswordRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
