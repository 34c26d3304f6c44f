package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, student_id, posting_id, status, COALESCE(rejection_reason, ''), created_at, updated_at`

func scanApplication(row pgx.Row) (*Application, error) {
	var a Application
	err := row.Scan(&a.ID, &a.StudentID, &a.PostingID, &a.Status, &a.RejectionReason, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateApplication records a student's application to a posting
func (db *DB) CreateApplication(ctx context.Context, studentID, postingID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (student_id, posting_id, status)
		 VALUES ($1, $2, 'pending')
		 RETURNING id`,
		studentID, postingID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplication retrieves an application by ID, or nil if not found
func (db *DB) GetApplication(ctx context.Context, applicationID uuid.UUID) (*Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, applicationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// GetApplicationByStudentAndPosting finds a student's application to a
// posting, or nil if they have not applied
func (db *DB) GetApplicationByStudentAndPosting(ctx context.Context, studentID, postingID uuid.UUID) (*Application, error) {
	a, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE student_id = $1 AND posting_id = $2`,
		studentID, postingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return a, nil
}

// ListApplicationsByPosting retrieves all applications for a posting
func (db *DB) ListApplicationsByPosting(ctx context.Context, postingID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE posting_id = $1 ORDER BY created_at ASC`,
		postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

// ListApplicationsByCompany retrieves applications across all of a company's postings
func (db *DB) ListApplicationsByCompany(ctx context.Context, companyID uuid.UUID) ([]Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.student_id, a.posting_id, a.status, COALESCE(a.rejection_reason, ''), a.created_at, a.updated_at
		 FROM applications a
		 JOIN postings p ON p.id = a.posting_id
		 WHERE p.company_id = $1
		 ORDER BY a.created_at ASC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]Application, error) {
	var applications []Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		applications = append(applications, *a)
	}
	return applications, rows.Err()
}

// UpdateApplicationStatus sets an application's review status and optional
// rejection reason
func (db *DB) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status ApplicationStatus, rejectionReason string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, rejection_reason = NULLIF($2, ''), updated_at = NOW() WHERE id = $3`,
		status, rejectionReason, applicationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("application not found: %s", applicationID)
	}
	return nil
}
