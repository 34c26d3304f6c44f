package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const postingColumns = `id, company_id, title, description, location, job_type,
	COALESCE(duration_months, 0), COALESCE(stipend, 0), skills,
	COALESCE(responsibilities, ''), COALESCE(qualifications, ''),
	application_deadline, active, created_at, updated_at`

func scanPosting(row pgx.Row) (*Posting, error) {
	var p Posting
	err := row.Scan(&p.ID, &p.CompanyID, &p.Title, &p.Description, &p.Location, &p.JobType,
		&p.DurationMonths, &p.Stipend, &p.Skills,
		&p.Responsibilities, &p.Qualifications,
		&p.ApplicationDeadline, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePosting inserts a new posting and returns its ID
func (db *DB) CreatePosting(ctx context.Context, p *Posting) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO postings (company_id, title, description, location, job_type,
		   duration_months, stipend, skills, responsibilities, qualifications,
		   application_deadline, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, TRUE)
		 RETURNING id`,
		p.CompanyID, p.Title, p.Description, p.Location, p.JobType,
		p.DurationMonths, p.Stipend, p.Skills, p.Responsibilities, p.Qualifications,
		p.ApplicationDeadline,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create posting: %w", err)
	}
	return id, nil
}

// GetPosting retrieves a posting by ID, or nil if not found
func (db *DB) GetPosting(ctx context.Context, postingID uuid.UUID) (*Posting, error) {
	p, err := scanPosting(db.pool.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE id = $1`, postingID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get posting: %w", err)
	}
	return p, nil
}

// ListActivePostings retrieves all active postings, newest first
func (db *DB) ListActivePostings(ctx context.Context) ([]Posting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE active ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}
	defer rows.Close()
	return collectPostings(rows)
}

// ListPostingsByCompany retrieves all postings owned by a company, newest first
func (db *DB) ListPostingsByCompany(ctx context.Context, companyID uuid.UUID) ([]Posting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+postingColumns+` FROM postings WHERE company_id = $1 ORDER BY created_at DESC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company postings: %w", err)
	}
	defer rows.Close()
	return collectPostings(rows)
}

func collectPostings(rows pgx.Rows) ([]Posting, error) {
	var postings []Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}
		postings = append(postings, *p)
	}
	return postings, rows.Err()
}

// UpdatePosting updates the mutable fields of a posting
func (db *DB) UpdatePosting(ctx context.Context, p *Posting) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE postings SET title = $1, description = $2, location = $3, job_type = $4,
		   duration_months = $5, stipend = $6, skills = $7, responsibilities = $8,
		   qualifications = $9, application_deadline = $10, updated_at = NOW()
		 WHERE id = $11`,
		p.Title, p.Description, p.Location, p.JobType,
		p.DurationMonths, p.Stipend, p.Skills, p.Responsibilities,
		p.Qualifications, p.ApplicationDeadline, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("posting not found: %s", p.ID)
	}
	return nil
}

// DeactivatePosting soft-deletes a posting so it stops accepting applications
func (db *DB) DeactivatePosting(ctx context.Context, postingID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE postings SET active = FALSE, updated_at = NOW() WHERE id = $1`,
		postingID,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("posting not found: %s", postingID)
	}
	return nil
}
