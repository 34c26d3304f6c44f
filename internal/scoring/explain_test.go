package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain_Bands(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0.85, "Excellent match."},
		{0.80, "Excellent match."},
		{0.65, "Good match."},
		{0.45, "Fair match."},
		{0.10, "Limited match."},
		{0.0, "Limited match."},
	}

	for _, tc := range cases {
		explanation := Explain(tc.score, 0, 0)
		assert.True(t, strings.HasPrefix(explanation, tc.want),
			"score %.2f: got %q", tc.score, explanation)
	}
}

func TestExplain_BandUsesTruncatedPercent(t *testing.T) {
	// 0.799 truncates to 79%, which falls in the "Good" band even though it
	// rounds to 80.
	explanation := Explain(0.799, 0, 0)
	assert.True(t, strings.HasPrefix(explanation, "Good match."), "got %q", explanation)
}

func TestExplain_SkillClause(t *testing.T) {
	explanation := Explain(0.5, 3, 4)
	assert.Contains(t, explanation, "Matched 3 out of 4 required skills (75%).")
}

func TestExplain_ZeroKeywords(t *testing.T) {
	explanation := Explain(0.5, 0, 0)
	assert.Contains(t, explanation, "Matched 0 out of 0 required skills (0%).")
}

func TestExplain_Recommendations(t *testing.T) {
	assert.True(t, strings.HasSuffix(Explain(0.75, 1, 1), "Highly recommended for interview."))
	assert.True(t, strings.HasSuffix(Explain(0.70, 1, 1), "Highly recommended for interview."))
	assert.True(t, strings.HasSuffix(Explain(0.55, 1, 1), "Recommended for further review."))
	assert.True(t, strings.HasSuffix(Explain(0.20, 1, 1), "May require additional screening."))
}

func TestExplain_ZeroScore(t *testing.T) {
	explanation := Explain(0.0, 0, 0)
	assert.True(t, strings.HasPrefix(explanation, "Limited match."))
	assert.True(t, strings.HasSuffix(explanation, "May require additional screening."))
}

func TestExplain_ClauseOrder(t *testing.T) {
	explanation := Explain(0.82, 2, 3)
	assert.Equal(t,
		"Excellent match. Matched 2 out of 3 required skills (66%). Highly recommended for interview.",
		explanation)
}

func TestSimilarityPercentage(t *testing.T) {
	assert.Equal(t, 79, SimilarityPercentage(0.799))
	assert.Equal(t, 100, SimilarityPercentage(1.0))
	assert.Equal(t, 0, SimilarityPercentage(0.0))
}
