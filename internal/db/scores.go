package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const scoreColumns = `id, application_id, posting_id, similarity_score,
	keyword_matches, total_keywords, explanation, rank, scored_at, updated_at`

func scanScore(row pgx.Row) (*Score, error) {
	var s Score
	err := row.Scan(&s.ID, &s.ApplicationID, &s.PostingID, &s.SimilarityScore,
		&s.KeywordMatches, &s.TotalKeywords, &s.Explanation, &s.Rank, &s.ScoredAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetScoreByApplication retrieves the score record for an application, or nil
// if it has never been scored
func (db *DB) GetScoreByApplication(ctx context.Context, applicationID uuid.UUID) (*Score, error) {
	s, err := scanScore(db.pool.QueryRow(ctx,
		`SELECT `+scoreColumns+` FROM scores WHERE application_id = $1`, applicationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return s, nil
}

// UpsertScore creates or updates the score record for an application and
// returns the stored row. On update the original scored_at is kept and
// updated_at advances; at most one record per application_id can exist.
func (db *DB) UpsertScore(ctx context.Context, s *Score) (*Score, error) {
	stored, err := scanScore(db.pool.QueryRow(ctx,
		`INSERT INTO scores (application_id, posting_id, similarity_score,
		   keyword_matches, total_keywords, explanation, scored_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		 ON CONFLICT (application_id) DO UPDATE SET
		   similarity_score = $3, keyword_matches = $4, total_keywords = $5,
		   explanation = $6, updated_at = NOW()
		 RETURNING `+scoreColumns,
		s.ApplicationID, s.PostingID, s.SimilarityScore,
		s.KeywordMatches, s.TotalKeywords, s.Explanation,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert score: %w", err)
	}
	return stored, nil
}

// ListScoresByPosting retrieves all score records for a posting ordered by
// similarity score descending
func (db *DB) ListScoresByPosting(ctx context.Context, postingID uuid.UUID) ([]Score, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+scoreColumns+` FROM scores WHERE posting_id = $1
		 ORDER BY similarity_score DESC, scored_at ASC`,
		postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var scores []Score
	for rows.Next() {
		s, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, *s)
	}
	return scores, rows.Err()
}

// RankAssignment pairs an application with its recomputed rank.
type RankAssignment struct {
	ApplicationID uuid.UUID
	Rank          int
}

// UpdateRanks persists the recomputed rank of every score for a posting in a
// single transaction, so a failed recompute never leaves a partial ordering.
func (db *DB) UpdateRanks(ctx context.Context, postingID uuid.UUID, assignments []RankAssignment) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin rank update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, a := range assignments {
		_, err := tx.Exec(ctx,
			`UPDATE scores SET rank = $1 WHERE application_id = $2 AND posting_id = $3`,
			a.Rank, a.ApplicationID, postingID,
		)
		if err != nil {
			return fmt.Errorf("failed to update rank for application %s: %w", a.ApplicationID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit rank update: %w", err)
	}
	return nil
}
