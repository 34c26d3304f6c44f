package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/server/middleware"
	"github.com/jonathan/internmatch/internal/types"
)

// ---------------------------------------------------------------------
// Application Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var req types.ApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	posting, err := s.db.GetPosting(r.Context(), req.PostingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if posting == nil {
		s.errorResponse(w, http.StatusNotFound, "Posting not found")
		return
	}
	if !posting.Active {
		s.handleError(w, &ErrPostingClosed{PostingID: posting.ID})
		return
	}

	existing, err := s.db.GetApplicationByStudentAndPosting(r.Context(), userID, req.PostingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing != nil {
		s.handleError(w, &ErrDuplicateApplication{PostingID: req.PostingID})
		return
	}

	id, err := s.db.CreateApplication(r.Context(), userID, req.PostingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	application, ok := s.visibleApplication(w, r, applicationID)
	if !ok {
		return
	}

	s.jsonResponse(w, http.StatusOK, application)
}

func (s *Server) handleListPostingApplications(w http.ResponseWriter, r *http.Request) {
	postingID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid posting ID")
		return
	}

	if _, ok := s.ownedPosting(w, r, postingID); !ok {
		return
	}

	applications, err := s.db.ListApplicationsByPosting(r.Context(), postingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, applications)
}

func (s *Server) handleListCompanyApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	applications, err := s.db.ListApplicationsByCompany(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, applications)
}

func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	var req types.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	application, err := s.db.GetApplication(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if application == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}

	// Only the posting's company (or admin) may change status
	if _, ok := s.ownedPosting(w, r, application.PostingID); !ok {
		return
	}

	status := db.ApplicationStatus(req.Status)
	if status != db.StatusRejected && req.RejectionReason != "" {
		s.errorResponse(w, http.StatusBadRequest, "Rejection reason only allowed when rejecting")
		return
	}

	if err := s.db.UpdateApplicationStatus(r.Context(), applicationID, status, req.RejectionReason); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": req.Status})
}

// visibleApplication loads an application and verifies the caller may see
// it: the applying student, the posting's company, or an admin.
func (s *Server) visibleApplication(w http.ResponseWriter, r *http.Request, applicationID uuid.UUID) (*db.Application, bool) {
	userID, ok := s.currentUser(w, r)
	if !ok {
		return nil, false
	}

	application, err := s.db.GetApplication(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if application == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return nil, false
	}

	if application.StudentID == userID {
		return application, true
	}

	role, _ := middleware.GetRole(r)
	if role == string(db.RoleAdmin) {
		return application, true
	}

	posting, err := s.db.GetPosting(r.Context(), application.PostingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, false
	}
	if posting == nil || posting.CompanyID != userID {
		s.errorResponse(w, http.StatusForbidden, "Application belongs to another user")
		return nil, false
	}
	return application, true
}
