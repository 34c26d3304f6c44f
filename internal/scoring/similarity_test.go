package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_EmptyJobText(t *testing.T) {
	assert.Equal(t, 0.0, Score("Experienced Go developer", ""))
	assert.Equal(t, 0.0, Score("", ""))
}

func TestScore_EmptyResume(t *testing.T) {
	score := Score("", "Backend engineer with Go and Postgres")
	assert.Equal(t, 0.0, score)
}

func TestScore_IdenticalTexts(t *testing.T) {
	text := "Senior backend engineer building distributed systems with Golang"
	score := Score(text, text)

	// Jaccard is 1.0 and every token occurs at least once, so the frequency
	// boost saturates too.
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestScore_WithinUnitInterval(t *testing.T) {
	cases := []struct {
		resume string
		job    string
	}{
		{"Java developer", "Python data engineer"},
		{"Go Go Go Go Go", "golang"},
		{"kubernetes kubernetes kubernetes", "Kubernetes administrator wanted"},
		{"short", "completely unrelated posting text with many words here"},
	}

	for _, tc := range cases {
		score := Score(tc.resume, tc.job)
		assert.GreaterOrEqual(t, score, 0.0, "resume=%q job=%q", tc.resume, tc.job)
		assert.LessOrEqual(t, score, 1.0, "resume=%q job=%q", tc.resume, tc.job)
	}
}

func TestScore_DisjointTexts(t *testing.T) {
	score := Score("pottery sculpture painting", "kernel drivers firmware")
	assert.Equal(t, 0.0, score)
}

func TestScore_KnownValue(t *testing.T) {
	// Resume tokens: {golang, postgres}; job tokens: {golang, redis}.
	// Jaccard = 1/3. Boost: "golang" occurs once, "redis" zero -> 1/2.
	score := Score("golang postgres", "golang redis")
	assert.InDelta(t, (1.0/3.0)*0.6+0.5*0.4, score, 1e-9)
}

func TestFrequencyBoost_SubstringOvercount(t *testing.T) {
	// "java" matches inside "javascript" by design: the boost uses raw
	// substring counting, not word boundaries.
	jobTokens := Normalize("java")
	boost := frequencyBoost("javascript javascript", jobTokens)
	assert.Equal(t, 1.0, boost)
}

func TestFrequencyBoost_CappedAtOne(t *testing.T) {
	jobTokens := Normalize("golang")
	boost := frequencyBoost("golang golang golang golang", jobTokens)
	assert.Equal(t, 1.0, boost)
}
