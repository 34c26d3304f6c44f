package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// rescoreConcurrency bounds concurrent score computations during a batch
// rescore. Score computation is pure and runs unsynchronized; only the final
// rank recompute is serialized.
const rescoreConcurrency = 4

// RescorePosting rescores every application of a posting that has a resume,
// then recomputes ranks once. Applications without a resume are skipped.
// Returns the number of applications scored.
func (e *Engine) RescorePosting(ctx context.Context, postingID uuid.UUID) (int, error) {
	posting, err := e.store.GetPosting(ctx, postingID)
	if err != nil {
		return 0, fmt.Errorf("failed to load posting: %w", err)
	}
	if posting == nil {
		return 0, &ErrPostingNotFound{PostingID: postingID}
	}

	applications, err := e.store.ListApplicationsByPosting(ctx, postingID)
	if err != nil {
		return 0, fmt.Errorf("failed to list applications: %w", err)
	}

	var scored atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rescoreConcurrency)

	for i := range applications {
		application := &applications[i]
		g.Go(func() error {
			resume, err := e.store.GetResumeByApplication(gctx, application.ID)
			if err != nil {
				return fmt.Errorf("failed to load resume for %s: %w", application.ID, err)
			}
			if resume == nil || resume.ExtractedText == "" {
				return nil
			}
			if _, err := e.scoreOne(gctx, application, posting, resume); err != nil {
				return err
			}
			scored.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return int(scored.Load()), err
	}

	if scored.Load() > 0 {
		if err := e.coordinator.Recompute(ctx, postingID); err != nil {
			return int(scored.Load()), fmt.Errorf("failed to recompute ranks: %w", err)
		}
	}

	return int(scored.Load()), nil
}
