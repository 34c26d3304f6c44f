package server

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/scoring"
	"github.com/jonathan/internmatch/internal/server/middleware"
	"github.com/jonathan/internmatch/internal/types"
)

// ---------------------------------------------------------------------
// Shared handler helpers
// ---------------------------------------------------------------------

// pathUUID parses the named path segment as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	return id, err == nil
}

// currentUser returns the authenticated user ID, writing a 401 on failure.
func (s *Server) currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// handleError writes the error with the status from HTTPStatus.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.errorResponse(w, status, "Internal error: "+err.Error())
		return
	}
	s.errorResponse(w, status, err.Error())
}

// ownedPosting loads a posting and verifies the caller owns it. Admins may
// act on any posting.
func (s *Server) ownedPosting(w http.ResponseWriter, r *http.Request, postingID uuid.UUID) (*db.Posting, bool) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return nil, false
	}

	posting, err := s.db.GetPosting(r.Context(), postingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if posting == nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return nil, false
	}

	role, _ := middleware.GetRole(r)
	if posting.CompanyID != userID && role != string(db.RoleAdmin) {
		s.errorResponse(w, http.StatusForbidden, "Posting belongs to another company")
		return nil, false
	}
	return posting, true
}

// scoreResponse converts a persisted score to its API representation.
func scoreResponse(score *db.Score) types.ScoreResponse {
	return types.ScoreResponse{
		ID:                   score.ID,
		ApplicationID:        score.ApplicationID,
		PostingID:            score.PostingID,
		SimilarityScore:      score.SimilarityScore,
		SimilarityPercentage: scoring.SimilarityPercentage(score.SimilarityScore),
		KeywordMatches:       score.KeywordMatches,
		TotalKeywords:        score.TotalKeywords,
		Explanation:          score.Explanation,
		Rank:                 score.Rank,
		ScoredAt:             score.ScoredAt,
		UpdatedAt:            score.UpdatedAt,
	}
}

func scoreResponses(scores []db.Score) []types.ScoreResponse {
	out := make([]types.ScoreResponse, len(scores))
	for i := range scores {
		out[i] = scoreResponse(&scores[i])
	}
	return out
}
