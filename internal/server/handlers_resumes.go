package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/types"
)

// maxResumeTextBytes caps the stored extracted text.
const maxResumeTextBytes = 200_000

// resumePreviewChars is how much of the text the preview endpoint returns.
const resumePreviewChars = 500

// ---------------------------------------------------------------------
// Resume Handlers
// ---------------------------------------------------------------------

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	userID, ok := s.currentUser(w, r)
	if !ok {
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
	if application.StudentID != userID {
		s.errorResponse(w, http.StatusForbidden, "Application belongs to another student")
		return
	}

	var req types.ResumeUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}
	if len(req.ExtractedText) > maxResumeTextBytes {
		s.errorResponse(w, http.StatusRequestEntityTooLarge, "Resume text too large")
		return
	}

	exists, err := s.db.ResumeExists(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if exists {
		s.handleError(w, &ErrResumeAlreadyUploaded{ApplicationID: applicationID})
		return
	}

	resume := &db.Resume{
		ApplicationID: applicationID,
		FileName:      req.FileName,
		FileSize:      req.FileSize,
		ExtractedText: req.ExtractedText,
	}
	id, err := s.db.CreateResume(r.Context(), resume)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	if _, ok := s.visibleApplication(w, r, applicationID); !ok {
		return
	}

	resume, err := s.db.GetResumeByApplication(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleResumePreview returns a truncated view for recruiter list screens.
func (s *Server) handleResumePreview(w http.ResponseWriter, r *http.Request) {
	applicationID, ok := pathUUID(r, "id")
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID")
		return
	}

	if _, ok := s.visibleApplication(w, r, applicationID); !ok {
		return
	}

	resume, err := s.db.GetResumeByApplication(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	preview := resume.ExtractedText
	truncated := false
	if len(preview) > resumePreviewChars {
		preview = preview[:resumePreviewChars]
		truncated = true
	}

	s.jsonResponse(w, http.StatusOK, types.ResumePreview{
		ApplicationID: applicationID,
		FileName:      resume.FileName,
		Preview:       preview,
		Truncated:     truncated,
		UploadedAt:    resume.UploadedAt,
	})
}
