package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScoreRequest represents a company's request to score one application
// against one of its postings.
type ScoreRequest struct {
	ApplicationID uuid.UUID `json:"application_id" validate:"required"`
	PostingID     uuid.UUID `json:"posting_id" validate:"required"`
}

// ScoreResponse represents a score record for API responses.
// SimilarityPercentage is the similarity score truncated to a whole percent.
type ScoreResponse struct {
	ID                   uuid.UUID `json:"id"`
	ApplicationID        uuid.UUID `json:"application_id"`
	PostingID            uuid.UUID `json:"posting_id"`
	SimilarityScore      float64   `json:"similarity_score"`
	SimilarityPercentage int       `json:"similarity_percentage"`
	KeywordMatches       int       `json:"keyword_matches"`
	TotalKeywords        int       `json:"total_keywords"`
	Explanation          string    `json:"explanation"`
	Rank                 *int      `json:"rank,omitempty"`
	ScoredAt             time.Time `json:"scored_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
