// Package ranking maintains a consistent rank ordering of applicant scores
// within each posting.
package ranking

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/internmatch/internal/db"
)

// maxPersistAttempts bounds transient persistence retries during a rank
// recompute. Failures here are never surfaced to the scoring caller.
const maxPersistAttempts = 3

// ScoreStore is the persistence surface the coordinator needs.
type ScoreStore interface {
	ListScoresByPosting(ctx context.Context, postingID uuid.UUID) ([]db.Score, error)
	UpdateRanks(ctx context.Context, postingID uuid.UUID, assignments []db.RankAssignment) error
}

// Coordinator recomputes and serves applicant rank orderings. Write-path
// recomputations are serialized per posting so concurrent scoring of the same
// posting cannot interleave and corrupt the 1..N rank permutation; different
// postings proceed independently.
type Coordinator struct {
	store ScoreStore

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex

	readGroup singleflight.Group
}

// NewCoordinator creates a coordinator over the given score store.
func NewCoordinator(store ScoreStore) *Coordinator {
	return &Coordinator{
		store: store,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// postingLock returns the mutex guarding rank recomputation for one posting,
// creating it on first use.
func (c *Coordinator) postingLock(postingID uuid.UUID) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[postingID]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[postingID] = lock
	}
	return lock
}

// Recompute is the write path: it fetches every score for the posting, sorts
// them by the ordering key, and persists rank = position + 1 for each. The
// whole fetch-sort-persist sequence holds the posting's lock.
func (c *Coordinator) Recompute(ctx context.Context, postingID uuid.UUID) error {
	lock := c.postingLock(postingID)
	lock.Lock()
	defer lock.Unlock()

	scores, err := c.store.ListScoresByPosting(ctx, postingID)
	if err != nil {
		return fmt.Errorf("failed to load scores for rank recompute: %w", err)
	}
	if len(scores) == 0 {
		return nil
	}

	sortScores(scores)

	assignments := make([]db.RankAssignment, len(scores))
	for i := range scores {
		assignments[i] = db.RankAssignment{ApplicationID: scores[i].ApplicationID, Rank: i + 1}
	}

	var persistErr error
	for attempt := 1; attempt <= maxPersistAttempts; attempt++ {
		persistErr = c.store.UpdateRanks(ctx, postingID, assignments)
		if persistErr == nil {
			return nil
		}
		log.Printf("[ranking] rank persist attempt %d/%d failed for posting %s: %v",
			attempt, maxPersistAttempts, postingID, persistErr)
		time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
	}
	return fmt.Errorf("failed to persist ranks for posting %s: %w", postingID, persistErr)
}

// Ranked is the read path: it derives the order from current similarity
// scores at read time instead of trusting the persisted rank cache, and fills
// in rank 1..N on the returned records. Concurrent reads for the same posting
// are coalesced into a single recomputation, so a caller may receive a
// snapshot taken just before its own call; use RankedNow where the result
// must reflect a write the caller has already made.
func (c *Coordinator) Ranked(ctx context.Context, postingID uuid.UUID) ([]db.Score, error) {
	result, err, _ := c.readGroup.Do(postingID.String(), func() (any, error) {
		return c.derive(ctx, postingID)
	})
	if err != nil {
		return nil, err
	}
	return result.([]db.Score), nil
}

// RankedNow derives the current ordering without coalescing. Read-after-write
// paths need this: a coalesced read could have been in flight before the
// caller's write and would hand back a snapshot missing it.
func (c *Coordinator) RankedNow(ctx context.Context, postingID uuid.UUID) ([]db.Score, error) {
	return c.derive(ctx, postingID)
}

func (c *Coordinator) derive(ctx context.Context, postingID uuid.UUID) ([]db.Score, error) {
	scores, err := c.store.ListScoresByPosting(ctx, postingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	sortScores(scores)
	for i := range scores {
		rank := i + 1
		scores[i].Rank = &rank
	}
	return scores, nil
}

// sortScores orders scores by similarity descending, breaking ties by
// scoredAt ascending and then application ID ascending. The tie-break makes
// the ordering a deterministic total order.
func sortScores(scores []db.Score) {
	sort.SliceStable(scores, func(i, j int) bool {
		a, b := &scores[i], &scores[j]
		if a.SimilarityScore != b.SimilarityScore {
			return a.SimilarityScore > b.SimilarityScore
		}
		if !a.ScoredAt.Equal(b.ScoredAt) {
			return a.ScoredAt.Before(b.ScoredAt)
		}
		return a.ApplicationID.String() < b.ApplicationID.String()
	})
}
