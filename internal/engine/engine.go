package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/ranking"
	"github.com/jonathan/internmatch/internal/scoring"
)

// Store is the persistence surface the engine needs. *db.DB satisfies it.
type Store interface {
	GetApplication(ctx context.Context, applicationID uuid.UUID) (*db.Application, error)
	GetPosting(ctx context.Context, postingID uuid.UUID) (*db.Posting, error)
	GetResumeByApplication(ctx context.Context, applicationID uuid.UUID) (*db.Resume, error)
	UpsertScore(ctx context.Context, s *db.Score) (*db.Score, error)
	ListApplicationsByPosting(ctx context.Context, postingID uuid.UUID) ([]db.Application, error)
}

// Engine scores applications against postings and serves rank-ordered views.
// Authorization (posting ownership) is the caller's responsibility; the
// engine still enforces the application/posting relationship as a
// data-integrity guard.
type Engine struct {
	store       Store
	coordinator *ranking.Coordinator
}

// New creates a scoring engine over the given store and rank coordinator.
func New(store Store, coordinator *ranking.Coordinator) *Engine {
	return &Engine{
		store:       store,
		coordinator: coordinator,
	}
}

// ScoreApplication computes and persists the fitness score of one application
// for a posting, recomputes the posting's ranks, and returns the stored
// record with a rank derived from current scores. Rescoring an application
// updates the existing record in place and keeps its original scoredAt.
func (e *Engine) ScoreApplication(ctx context.Context, applicationID, postingID uuid.UUID) (*db.Score, error) {
	application, posting, err := e.lookupPair(ctx, applicationID, postingID)
	if err != nil {
		return nil, err
	}

	resume, err := e.store.GetResumeByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if resume == nil || resume.ExtractedText == "" {
		return nil, &ErrResumeNotFound{ApplicationID: applicationID}
	}

	stored, err := e.scoreOne(ctx, application, posting, resume)
	if err != nil {
		return nil, err
	}

	if err := e.coordinator.Recompute(ctx, postingID); err != nil {
		return nil, fmt.Errorf("failed to recompute ranks: %w", err)
	}

	// Return the rank from a fresh uncoalesced derivation. The just-written
	// cache may already be invalidated by a concurrent recompute, and the
	// coalesced read path could hand back a snapshot taken before this
	// call's upsert.
	ranked, err := e.coordinator.RankedNow(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive rank: %w", err)
	}
	for i := range ranked {
		if ranked[i].ApplicationID == applicationID {
			return &ranked[i], nil
		}
	}
	return stored, nil
}

// GetRankedApplicants returns every score record for a posting ordered by
// descending similarity (ties broken by scoredAt, then application ID), with
// rank populated 1..N.
func (e *Engine) GetRankedApplicants(ctx context.Context, postingID uuid.UUID) ([]db.Score, error) {
	posting, err := e.store.GetPosting(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load posting: %w", err)
	}
	if posting == nil {
		return nil, &ErrPostingNotFound{PostingID: postingID}
	}

	return e.coordinator.Ranked(ctx, postingID)
}

// TopApplicants returns the best-ranked limit applicants for a posting.
func (e *Engine) TopApplicants(ctx context.Context, postingID uuid.UUID, limit int) ([]db.Score, error) {
	ranked, err := e.GetRankedApplicants(ctx, postingID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// lookupPair loads the application and posting, enforcing existence and the
// application/posting relationship.
func (e *Engine) lookupPair(ctx context.Context, applicationID, postingID uuid.UUID) (*db.Application, *db.Posting, error) {
	application, err := e.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load application: %w", err)
	}
	if application == nil {
		return nil, nil, &ErrApplicationNotFound{ApplicationID: applicationID}
	}

	posting, err := e.store.GetPosting(ctx, postingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load posting: %w", err)
	}
	if posting == nil {
		return nil, nil, &ErrPostingNotFound{PostingID: postingID}
	}

	if application.PostingID != postingID {
		return nil, nil, &ErrPostingMismatch{ApplicationID: applicationID, PostingID: postingID}
	}

	return application, posting, nil
}

// scoreOne computes and upserts a score record without touching ranks.
func (e *Engine) scoreOne(ctx context.Context, application *db.Application, posting *db.Posting, resume *db.Resume) (*db.Score, error) {
	similarity := scoring.Score(resume.ExtractedText, posting.JobText())
	matched, total := scoring.MatchKeywords(resume.ExtractedText, posting.Skills)
	explanation := scoring.Explain(similarity, matched, total)

	stored, err := e.store.UpsertScore(ctx, &db.Score{
		ApplicationID:   application.ID,
		PostingID:       posting.ID,
		SimilarityScore: similarity,
		KeywordMatches:  matched,
		TotalKeywords:   total,
		Explanation:     explanation,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist score: %w", err)
	}

	log.Printf("[engine] scored application %s for posting %s: %.3f (%d/%d skills)",
		application.ID, posting.ID, similarity, matched, total)
	return stored, nil
}
