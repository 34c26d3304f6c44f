package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// PostingRequest represents the request to create or update a posting.
type PostingRequest struct {
	Title               string     `json:"title" validate:"required,min=1"`
	Description         string     `json:"description" validate:"required,min=1"`
	Location            string     `json:"location" validate:"required,min=1"`
	JobType             string     `json:"job_type" validate:"required,oneof=full_time part_time remote"`
	DurationMonths      int        `json:"duration_months,omitempty" validate:"gte=0"`
	Stipend             float64    `json:"stipend,omitempty" validate:"gte=0"`
	Skills              string     `json:"skills,omitempty"` // comma-separated
	Responsibilities    string     `json:"responsibilities,omitempty"`
	Qualifications      string     `json:"qualifications,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
}

// ImportPostingRequest represents a request to create a posting from a
// fetched web page. The page text becomes the description.
type ImportPostingRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Title    string `json:"title" validate:"required,min=1"`
	Location string `json:"location" validate:"required,min=1"`
	JobType  string `json:"job_type" validate:"required,oneof=full_time part_time remote"`
	Skills   string `json:"skills,omitempty"`
}

// Validate validates the PostingRequest using the validator.
func (r *PostingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ImportPostingRequest using the validator.
func (r *ImportPostingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
