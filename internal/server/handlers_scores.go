package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/internmatch/internal/types"
)

// defaultTopLimit bounds the top-applicants endpoint when no limit is given.
const defaultTopLimit = 10

// ---------------------------------------------------------------------
// Scoring Handlers
// ---------------------------------------------------------------------

// handleCalculateScore scores one application against the caller's posting
// and returns the persisted record with its current rank.
func (s *Server) handleCalculateScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	if _, ok := s.ownedPosting(w, r, req.PostingID); !ok {
		return
	}

	score, err := s.engine.ScoreApplication(r.Context(), req.ApplicationID, req.PostingID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponse(score))
}

// handleGetScore returns the stored score for one application.
func (s *Server) handleGetScore(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	if _, ok := s.visibleApplication(w, r, applicationID); !ok {
		return
	}

	score, err := s.db.GetScoreByApplication(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if score == nil {
		s.errorResponse(w, http.StatusNotFound, "Score not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponse(score))
}

// handleRankings returns all scored applicants for a posting in rank order.
func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	postingID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	if _, ok := s.ownedPosting(w, r, postingID); !ok {
		return
	}

	scores, err := s.engine.GetRankedApplicants(r.Context(), postingID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponses(scores))
}

// handleTopApplicants returns the best N scored applicants for a posting.
func (s *Server) handleTopApplicants(w http.ResponseWriter, r *http.Request) {
	postingID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	if _, ok := s.ownedPosting(w, r, postingID); !ok {
		return
	}

	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	scores, err := s.engine.TopApplicants(r.Context(), postingID, limit)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, scoreResponses(scores))
}

// handleRescorePosting rescores every application with a resume and returns
// how many were scored.
func (s *Server) handleRescorePosting(w http.ResponseWriter, r *http.Request) {
	postingID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	if _, ok := s.ownedPosting(w, r, postingID); !ok {
		return
	}

	scored, err := s.engine.RescorePosting(r.Context(), postingID)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]int{"scored": scored})
}
