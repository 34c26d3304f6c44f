package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationRequest represents a student's request to apply to a posting.
type ApplicationRequest struct {
	PostingID uuid.UUID `json:"posting_id" validate:"required"`
}

// UpdateApplicationStatusRequest represents a company's review decision.
type UpdateApplicationStatusRequest struct {
	Status          string `json:"status" validate:"required,oneof=pending reviewed accepted rejected"`
	RejectionReason string `json:"rejection_reason,omitempty"`
}

// Validate validates the ApplicationRequest using the validator.
func (r *ApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateApplicationStatusRequest using the validator.
func (r *UpdateApplicationStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
