package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/ranking"
)

// fakeStore is an in-memory Store and ranking.ScoreStore. Its clock advances
// on every upsert so updated_at is strictly increasing, mirroring NOW() in
// the real store.
type fakeStore struct {
	mu           sync.Mutex
	applications map[uuid.UUID]db.Application
	postings     map[uuid.UUID]db.Posting
	resumes      map[uuid.UUID]db.Resume // keyed by application ID
	scores       map[uuid.UUID]db.Score  // keyed by application ID
	clock        time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		applications: make(map[uuid.UUID]db.Application),
		postings:     make(map[uuid.UUID]db.Posting),
		resumes:      make(map[uuid.UUID]db.Resume),
		scores:       make(map[uuid.UUID]db.Score),
		clock:        time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Millisecond)
	return f.clock
}

func (f *fakeStore) GetApplication(_ context.Context, id uuid.UUID) (*db.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.applications[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func (f *fakeStore) GetPosting(_ context.Context, id uuid.UUID) (*db.Posting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.postings[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (f *fakeStore) GetResumeByApplication(_ context.Context, applicationID uuid.UUID) (*db.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.resumes[applicationID]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeStore) UpsertScore(_ context.Context, s *db.Score) (*db.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()

	stored, exists := f.scores[s.ApplicationID]
	if !exists {
		stored = db.Score{
			ID:            uuid.New(),
			ApplicationID: s.ApplicationID,
			PostingID:     s.PostingID,
			ScoredAt:      now,
		}
	}
	stored.SimilarityScore = s.SimilarityScore
	stored.KeywordMatches = s.KeywordMatches
	stored.TotalKeywords = s.TotalKeywords
	stored.Explanation = s.Explanation
	stored.UpdatedAt = now
	f.scores[s.ApplicationID] = stored
	return &stored, nil
}

func (f *fakeStore) ListApplicationsByPosting(_ context.Context, postingID uuid.UUID) ([]db.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Application
	for _, a := range f.applications {
		if a.PostingID == postingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) ListScoresByPosting(_ context.Context, postingID uuid.UUID) ([]db.Score, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []db.Score
	for _, s := range f.scores {
		if s.PostingID == postingID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateRanks(_ context.Context, postingID uuid.UUID, assignments []db.RankAssignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range assignments {
		s, ok := f.scores[a.ApplicationID]
		if !ok || s.PostingID != postingID {
			continue
		}
		rank := a.Rank
		s.Rank = &rank
		f.scores[a.ApplicationID] = s
	}
	return nil
}

// addApplicant seeds a posting application with the given resume text and
// returns the application ID.
func (f *fakeStore) addApplicant(postingID uuid.UUID, resumeText string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	appID := uuid.New()
	f.applications[appID] = db.Application{
		ID:        appID,
		StudentID: uuid.New(),
		PostingID: postingID,
		Status:    db.StatusPending,
	}
	if resumeText != "" {
		f.resumes[appID] = db.Resume{
			ID:            uuid.New(),
			ApplicationID: appID,
			ExtractedText: resumeText,
		}
	}
	return appID
}

func (f *fakeStore) addPosting(title, description, skills string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	f.postings[id] = db.Posting{
		ID:          id,
		CompanyID:   uuid.New(),
		Title:       title,
		Description: description,
		Skills:      skills,
		Active:      true,
	}
	return id
}

func newTestEngine(store *fakeStore) *Engine {
	return New(store, ranking.NewCoordinator(store))
}

func TestScoreApplication_ApplicationNotFound(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern", "Go services", "Go")

	eng := newTestEngine(store)
	_, err := eng.ScoreApplication(context.Background(), uuid.New(), postingID)

	var notFound *ErrApplicationNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestScoreApplication_PostingNotFound(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern", "Go services", "Go")
	appID := store.addApplicant(postingID, "Go developer")

	eng := newTestEngine(store)
	_, err := eng.ScoreApplication(context.Background(), appID, uuid.New())

	var notFound *ErrPostingNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestScoreApplication_PostingMismatch(t *testing.T) {
	store := newFakeStore()
	postingA := store.addPosting("Backend Intern", "Go services", "Go")
	postingB := store.addPosting("Data Intern", "Python pipelines", "Python")
	appID := store.addApplicant(postingA, "Go developer")

	eng := newTestEngine(store)
	_, err := eng.ScoreApplication(context.Background(), appID, postingB)

	var mismatch *ErrPostingMismatch
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, appID, mismatch.ApplicationID)
	assert.Equal(t, postingB, mismatch.PostingID)
}

func TestScoreApplication_NoResume(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern", "Go services", "Go")
	appID := store.addApplicant(postingID, "")

	eng := newTestEngine(store)
	_, err := eng.ScoreApplication(context.Background(), appID, postingID)

	var noResume *ErrResumeNotFound
	require.ErrorAs(t, err, &noResume)
}

func TestScoreApplication_Success(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern",
		"Build Go microservices with Postgres", "Go,Postgres,Docker")
	appID := store.addApplicant(postingID,
		"Experienced Go developer who has shipped microservices on Postgres")

	eng := newTestEngine(store)
	score, err := eng.ScoreApplication(context.Background(), appID, postingID)
	require.NoError(t, err)

	assert.Equal(t, appID, score.ApplicationID)
	assert.Equal(t, postingID, score.PostingID)
	assert.GreaterOrEqual(t, score.SimilarityScore, 0.0)
	assert.LessOrEqual(t, score.SimilarityScore, 1.0)
	assert.Equal(t, 2, score.KeywordMatches) // go, postgres; docker absent
	assert.Equal(t, 3, score.TotalKeywords)
	assert.NotEmpty(t, score.Explanation)
	require.NotNil(t, score.Rank)
	assert.Equal(t, 1, *score.Rank)
	assert.False(t, score.ScoredAt.IsZero())
}

func TestScoreApplication_EmptyPostingText(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("", "", "")
	appID := store.addApplicant(postingID, "Any resume text at all")

	eng := newTestEngine(store)
	score, err := eng.ScoreApplication(context.Background(), appID, postingID)
	require.NoError(t, err)

	assert.Equal(t, 0.0, score.SimilarityScore)
	assert.Zero(t, score.KeywordMatches)
	assert.Zero(t, score.TotalKeywords)
	assert.Contains(t, score.Explanation, "Limited match.")
	assert.Contains(t, score.Explanation, "May require additional screening.")
}

func TestScoreApplication_RescoreKeepsScoredAt(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern", "Go services", "Go")
	appID := store.addApplicant(postingID, "Go developer with Go experience")

	eng := newTestEngine(store)
	first, err := eng.ScoreApplication(context.Background(), appID, postingID)
	require.NoError(t, err)

	second, err := eng.ScoreApplication(context.Background(), appID, postingID)
	require.NoError(t, err)

	assert.Equal(t, first.SimilarityScore, second.SimilarityScore)
	assert.Equal(t, first.KeywordMatches, second.KeywordMatches)
	assert.Equal(t, first.Explanation, second.Explanation)
	assert.True(t, second.ScoredAt.Equal(first.ScoredAt), "scoredAt must not change on rescore")
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt), "updatedAt must advance on rescore")
}

func TestGetRankedApplicants_PostingNotFound(t *testing.T) {
	eng := newTestEngine(newFakeStore())
	_, err := eng.GetRankedApplicants(context.Background(), uuid.New())

	var notFound *ErrPostingNotFound
	require.ErrorAs(t, err, &notFound)
}

func TestGetRankedApplicants_OrderedDenseRanks(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern",
		"Build Go microservices with Postgres and Kafka", "Go,Postgres,Kafka")

	resumes := []string{
		"Go microservices Postgres Kafka expert building distributed systems",
		"Go developer",
		"Graphic designer portfolio photography",
	}
	var appIDs []uuid.UUID
	for _, text := range resumes {
		appIDs = append(appIDs, store.addApplicant(postingID, text))
	}

	eng := newTestEngine(store)
	for _, id := range appIDs {
		_, err := eng.ScoreApplication(context.Background(), id, postingID)
		require.NoError(t, err)
	}

	ranked, err := eng.GetRankedApplicants(context.Background(), postingID)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	for i := range ranked {
		require.NotNil(t, ranked[i].Rank)
		assert.Equal(t, i+1, *ranked[i].Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].SimilarityScore, ranked[i].SimilarityScore)
		}
	}
	assert.Equal(t, appIDs[0], ranked[0].ApplicationID)
}

func TestScoreApplication_ConcurrentSamePosting(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern",
		"Build Go microservices with Postgres and Kafka", "Go,Postgres,Kafka")

	const n = 12
	var appIDs []uuid.UUID
	for i := 0; i < n; i++ {
		appIDs = append(appIDs, store.addApplicant(postingID,
			"Go developer number with microservices and Postgres experience"))
	}

	eng := newTestEngine(store)
	var wg sync.WaitGroup
	for _, id := range appIDs {
		wg.Add(1)
		go func(applicationID uuid.UUID) {
			defer wg.Done()
			_, err := eng.ScoreApplication(context.Background(), applicationID, postingID)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	ranked, err := eng.GetRankedApplicants(context.Background(), postingID)
	require.NoError(t, err)
	require.Len(t, ranked, n)

	seen := make(map[int]bool)
	for i := range ranked {
		require.NotNil(t, ranked[i].Rank)
		r := *ranked[i].Rank
		assert.False(t, seen[r], "duplicate rank %d", r)
		seen[r] = true
		assert.GreaterOrEqual(t, r, 1)
		assert.LessOrEqual(t, r, n)
	}
}

// gatedScoreStore captures a snapshot for the first list call and then
// blocks it until ranks are next persisted, holding a coalesced read open
// across a concurrent scoring call.
type gatedScoreStore struct {
	*fakeStore
	gateOnce sync.Once
	inFlight chan struct{}
	release  chan struct{}
}

func newGatedScoreStore(inner *fakeStore) *gatedScoreStore {
	return &gatedScoreStore{
		fakeStore: inner,
		inFlight:  make(chan struct{}),
		release:   make(chan struct{}),
	}
}

func (g *gatedScoreStore) ListScoresByPosting(ctx context.Context, postingID uuid.UUID) ([]db.Score, error) {
	gated := false
	g.gateOnce.Do(func() { gated = true })
	if !gated {
		return g.fakeStore.ListScoresByPosting(ctx, postingID)
	}

	// Snapshot first, then park: the held flight keeps serving the state
	// from before any later write.
	snapshot, err := g.fakeStore.ListScoresByPosting(ctx, postingID)
	close(g.inFlight)
	<-g.release
	return snapshot, err
}

func (g *gatedScoreStore) UpdateRanks(ctx context.Context, postingID uuid.UUID, assignments []db.RankAssignment) error {
	select {
	case <-g.release:
	default:
		close(g.release)
	}
	return g.fakeStore.UpdateRanks(ctx, postingID, assignments)
}

func TestScoreApplication_RankCurrentWhileReadHeldOpen(t *testing.T) {
	store := newGatedScoreStore(newFakeStore())
	postingID := store.addPosting("Backend Intern", "Go services with Postgres", "Go,Postgres")
	appID := store.addApplicant(postingID, "Go and Postgres developer")

	coord := ranking.NewCoordinator(store)
	eng := New(store, coord)

	// Hold a coalesced ranking read open before anything is scored.
	var staleScores []db.Score
	var staleErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		staleScores, staleErr = coord.Ranked(context.Background(), postingID)
	}()
	<-store.inFlight

	// Scoring while that read is parked must still return a current rank,
	// not fall back to the pre-score snapshot the open flight will serve.
	score, err := eng.ScoreApplication(context.Background(), appID, postingID)
	require.NoError(t, err)
	require.NotNil(t, score.Rank, "rank must come from a fresh derivation, not the held read")
	assert.Equal(t, 1, *score.Rank)

	<-done
	require.NoError(t, staleErr)
	assert.Empty(t, staleScores, "held read serves its pre-score snapshot")
}

func TestTopApplicants_Limit(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern", "Go services", "Go")
	for i := 0; i < 5; i++ {
		id := store.addApplicant(postingID, "Go developer")
		_, err := newTestEngine(store).ScoreApplication(context.Background(), id, postingID)
		require.NoError(t, err)
	}

	eng := newTestEngine(store)
	top, err := eng.TopApplicants(context.Background(), postingID, 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)

	all, err := eng.TopApplicants(context.Background(), postingID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRescorePosting_SkipsApplicationsWithoutResume(t *testing.T) {
	store := newFakeStore()
	postingID := store.addPosting("Backend Intern", "Go services with Postgres", "Go,Postgres")
	withResume1 := store.addApplicant(postingID, "Go and Postgres developer")
	withResume2 := store.addApplicant(postingID, "Go developer")
	store.addApplicant(postingID, "") // no resume

	eng := newTestEngine(store)
	scored, err := eng.RescorePosting(context.Background(), postingID)
	require.NoError(t, err)
	assert.Equal(t, 2, scored)

	ranked, err := eng.GetRankedApplicants(context.Background(), postingID)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.ElementsMatch(t,
		[]uuid.UUID{withResume1, withResume2},
		[]uuid.UUID{ranked[0].ApplicationID, ranked[1].ApplicationID})
}

func TestRescorePosting_PostingNotFound(t *testing.T) {
	eng := newTestEngine(newFakeStore())
	_, err := eng.RescorePosting(context.Background(), uuid.New())

	var notFound *ErrPostingNotFound
	require.ErrorAs(t, err, &notFound)
}
