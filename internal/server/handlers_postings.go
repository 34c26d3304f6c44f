package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/fetch"
	"github.com/jonathan/internmatch/internal/types"
)

// ---------------------------------------------------------------------
// Posting Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreatePosting(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req types.PostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	posting := &db.Posting{
		CompanyID:           userID,
		Title:               req.Title,
		Description:         req.Description,
		Location:            req.Location,
		JobType:             req.JobType,
		DurationMonths:      req.DurationMonths,
		Stipend:             req.Stipend,
		Skills:              req.Skills,
		Responsibilities:    req.Responsibilities,
		Qualifications:      req.Qualifications,
		ApplicationDeadline: req.ApplicationDeadline,
		Active:              true,
	}

	id, err := s.db.CreatePosting(r.Context(), posting)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

// handleImportPosting creates a posting from a fetched job page. The page
// text becomes the description, so the scorer sees what the page says.
func (s *Server) handleImportPosting(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req types.ImportPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = true
	text, err := fetch.PostingText(r.Context(), req.URL, fetchOpts)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to fetch posting page: "+err.Error())
		return
	}
	if text == "" {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Fetched page contains no text")
		return
	}

	posting := &db.Posting{
		CompanyID:   userID,
		Title:       req.Title,
		Description: text,
		Location:    req.Location,
		JobType:     req.JobType,
		Skills:      req.Skills,
		Active:      true,
	}

	id, err := s.db.CreatePosting(r.Context(), posting)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListPostings(w http.ResponseWriter, r *http.Request) {
	postings, err := s.db.ListActivePostings(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, postings)
}

func (s *Server) handleGetPosting(w http.ResponseWriter, r *http.Request) {
	postingID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	posting, err := s.db.GetPosting(r.Context(), postingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if posting == nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

func (s *Server) handleListMyPostings(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	postings, err := s.db.ListPostingsByCompany(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, postings)
}

func (s *Server) handleUpdatePosting(w http.ResponseWriter, r *http.Request) {
	postingID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	posting, ok := s.ownedPosting(w, r, postingID)
	if !ok {
		return
	}

	var req types.PostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	posting.Title = req.Title
	posting.Description = req.Description
	posting.Location = req.Location
	posting.JobType = req.JobType
	posting.DurationMonths = req.DurationMonths
	posting.Stipend = req.Stipend
	posting.Skills = req.Skills
	posting.Responsibilities = req.Responsibilities
	posting.Qualifications = req.Qualifications
	posting.ApplicationDeadline = req.ApplicationDeadline

	if err := s.db.UpdatePosting(r.Context(), posting); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleDeactivatePosting soft-deletes a posting. Existing applications and
// scores stay readable.
func (s *Server) handleDeactivatePosting(w http.ResponseWriter, r *http.Request) {
	postingID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	if _, ok := s.ownedPosting(w, r, postingID); !ok {
		return
	}

	if err := s.db.DeactivatePosting(r.Context(), postingID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deactivated"})
}
