// Package server provides the HTTP REST API for InternMatch.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/internmatch/internal/engine"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrForbidden indicates the authenticated user may not perform the action
type ErrForbidden struct {
	Reason string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Reason)
}

// ErrDuplicateApplication indicates the student already applied to the posting
type ErrDuplicateApplication struct {
	PostingID uuid.UUID
}

func (e *ErrDuplicateApplication) Error() string {
	return fmt.Sprintf("already applied to posting: %s", e.PostingID)
}

// ErrPostingClosed indicates the posting no longer accepts applications
type ErrPostingClosed struct {
	PostingID uuid.UUID
}

func (e *ErrPostingClosed) Error() string {
	return fmt.Sprintf("posting is closed: %s", e.PostingID)
}

// ErrResumeAlreadyUploaded indicates the application already has a resume
type ErrResumeAlreadyUploaded struct {
	ApplicationID uuid.UUID
}

func (e *ErrResumeAlreadyUploaded) Error() string {
	return fmt.Sprintf("resume already uploaded for application: %s", e.ApplicationID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists, *ErrDuplicateApplication, *ErrPostingClosed, *ErrResumeAlreadyUploaded:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrForbidden:
		return http.StatusForbidden
	case *ErrUserNotFound:
		return http.StatusNotFound
	case *engine.ErrApplicationNotFound, *engine.ErrPostingNotFound, *engine.ErrResumeNotFound:
		return http.StatusNotFound
	case *ErrValidation, *engine.ErrPostingMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
