package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateResume stores the extracted text of a resume for an application.
// The unique constraint on application_id enforces one resume per application.
func (db *DB) CreateResume(ctx context.Context, r *Resume) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (application_id, file_name, file_size, extracted_text)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		r.ApplicationID, r.FileName, r.FileSize, r.ExtractedText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// GetResumeByApplication retrieves the resume for an application, or nil if
// none was uploaded
func (db *DB) GetResumeByApplication(ctx context.Context, applicationID uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, application_id, COALESCE(file_name, ''), COALESCE(file_size, 0),
		        extracted_text, uploaded_at, updated_at
		 FROM resumes WHERE application_id = $1`,
		applicationID,
	).Scan(&r.ID, &r.ApplicationID, &r.FileName, &r.FileSize, &r.ExtractedText, &r.UploadedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}

// ResumeExists reports whether an application already has a resume
func (db *DB) ResumeExists(ctx context.Context, applicationID uuid.UUID) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM resumes WHERE application_id = $1)`,
		applicationID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check resume existence: %w", err)
	}
	return exists, nil
}

// DeleteResume removes the resume for an application
func (db *DB) DeleteResume(ctx context.Context, applicationID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE application_id = $1`, applicationID)
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found for application: %s", applicationID)
	}
	return nil
}
