// Package schemas provides JSON Schema validation for seed fixtures.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed seed_schema.json
var seedSchema string

// SeedFixture is a parsed seed file. Postings and applications reference
// users by email so fixtures stay readable.
type SeedFixture struct {
	Users        []SeedUser        `json:"users"`
	Postings     []SeedPosting     `json:"postings,omitempty"`
	Applications []SeedApplication `json:"applications,omitempty"`
}

// SeedUser is one account in a seed file.
type SeedUser struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone,omitempty"`
	Role         string `json:"role"`
	Organization string `json:"organization,omitempty"`
}

// SeedPosting is one posting in a seed file, keyed to its company by email.
type SeedPosting struct {
	CompanyEmail     string  `json:"company_email"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Location         string  `json:"location"`
	JobType          string  `json:"job_type"`
	DurationMonths   int     `json:"duration_months,omitempty"`
	Stipend          float64 `json:"stipend,omitempty"`
	Skills           string  `json:"skills,omitempty"`
	Responsibilities string  `json:"responsibilities,omitempty"`
	Qualifications   string  `json:"qualifications,omitempty"`
}

// SeedApplication is one application in a seed file, optionally carrying
// resume text so the fixture can be scored right after loading.
type SeedApplication struct {
	StudentEmail string `json:"student_email"`
	PostingTitle string `json:"posting_title"`
	ResumeFile   string `json:"resume_file,omitempty"`
	ResumeText   string `json:"resume_text,omitempty"`
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load seed schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load seed schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateSeed validates seed file content against the embedded schema.
func ValidateSeed(jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(seedSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
