// Package engine orchestrates applicant scoring: it combines the scoring
// functions, persistence, and the rank coordinator into the two public
// operations of the system.
package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// ErrApplicationNotFound indicates the application does not exist
type ErrApplicationNotFound struct {
	ApplicationID uuid.UUID
}

func (e *ErrApplicationNotFound) Error() string {
	return fmt.Sprintf("application not found: %s", e.ApplicationID)
}

// ErrPostingNotFound indicates the posting does not exist
type ErrPostingNotFound struct {
	PostingID uuid.UUID
}

func (e *ErrPostingNotFound) Error() string {
	return fmt.Sprintf("posting not found: %s", e.PostingID)
}

// ErrResumeNotFound indicates no resume text exists for the application
type ErrResumeNotFound struct {
	ApplicationID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("no resume uploaded for application: %s", e.ApplicationID)
}

// ErrPostingMismatch indicates the application does not belong to the posting
// named in the request
type ErrPostingMismatch struct {
	ApplicationID uuid.UUID
	PostingID     uuid.UUID
}

func (e *ErrPostingMismatch) Error() string {
	return fmt.Sprintf("application %s does not belong to posting %s", e.ApplicationID, e.PostingID)
}
