package db

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies the kind of account a user holds.
type Role string

// Supported account roles.
const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

// User represents an account (student applicant or company recruiter).
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	Organization string    `json:"organization,omitempty"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Posting represents an internship posting created by a company.
type Posting struct {
	ID                  uuid.UUID  `json:"id"`
	CompanyID           uuid.UUID  `json:"company_id"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Location            string     `json:"location"`
	JobType             string     `json:"job_type"` // full_time, part_time, remote
	DurationMonths      int        `json:"duration_months,omitempty"`
	Stipend             float64    `json:"stipend,omitempty"`
	Skills              string     `json:"skills"` // comma-separated: "Java,Spring Boot,MySQL"
	Responsibilities    string     `json:"responsibilities,omitempty"`
	Qualifications      string     `json:"qualifications,omitempty"`
	ApplicationDeadline *time.Time `json:"application_deadline,omitempty"`
	Active              bool       `json:"active"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// JobText returns the concatenated posting text fed to the similarity scorer.
func (p *Posting) JobText() string {
	return p.Title + " " + p.Description + " " + p.Skills
}

// ApplicationStatus tracks where an application is in the review flow.
type ApplicationStatus string

// Application statuses.
const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

// Application represents a student's application to a posting.
type Application struct {
	ID              uuid.UUID         `json:"id"`
	StudentID       uuid.UUID         `json:"student_id"`
	PostingID       uuid.UUID         `json:"posting_id"`
	Status          ApplicationStatus `json:"status"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// Resume holds the extracted text of an uploaded resume (one per application).
// The binary document and its text extraction live with an external
// collaborator; this record carries only what scoring needs.
type Resume struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	FileName      string    `json:"file_name,omitempty"`
	FileSize      int64     `json:"file_size,omitempty"`
	ExtractedText string    `json:"extracted_text,omitempty"`
	UploadedAt    time.Time `json:"uploaded_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Score is the persisted fitness record for one application (1:1).
// Rank is a best-effort cache of the application's position among all scores
// for the same posting; read paths re-derive order from SimilarityScore.
type Score struct {
	ID              uuid.UUID `json:"id"`
	ApplicationID   uuid.UUID `json:"application_id"`
	PostingID       uuid.UUID `json:"posting_id"`
	SimilarityScore float64   `json:"similarity_score"`
	KeywordMatches  int       `json:"keyword_matches"`
	TotalKeywords   int       `json:"total_keywords"`
	Explanation     string    `json:"explanation"`
	Rank            *int      `json:"rank,omitempty"`
	ScoredAt        time.Time `json:"scored_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
