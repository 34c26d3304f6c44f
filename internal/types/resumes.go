package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ResumeUploadRequest carries the extracted text of a resume for one
// application. Text extraction from the original document happens client
// side; the API stores text only.
type ResumeUploadRequest struct {
	FileName      string `json:"file_name" validate:"required,min=1"`
	FileSize      int64  `json:"file_size,omitempty" validate:"gte=0"`
	ExtractedText string `json:"extracted_text" validate:"required,min=1"`
}

// ResumePreview is the truncated resume view returned to recruiters.
type ResumePreview struct {
	ApplicationID uuid.UUID `json:"application_id"`
	FileName      string    `json:"file_name,omitempty"`
	Preview       string    `json:"preview"`
	Truncated     bool      `json:"truncated"`
	UploadedAt    time.Time `json:"uploaded_at"`
}

// Validate validates the ResumeUploadRequest using the validator.
func (r *ResumeUploadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
