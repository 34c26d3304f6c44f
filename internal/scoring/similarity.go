package scoring

import "strings"

// Weights for the composite similarity score.
const (
	jaccardWeight        = 0.6
	frequencyBoostWeight = 0.4
)

// Score computes a composite fitness score in [0, 1] for a resume against a
// job text (title + description + skills). The score blends Jaccard token-set
// similarity with a frequency boost that rewards job tokens appearing often
// in the resume. If the job text yields no tokens the score is 0.
func Score(resumeText, jobText string) float64 {
	resumeTokens := Normalize(resumeText)
	jobTokens := Normalize(jobText)

	if len(jobTokens) == 0 {
		return 0.0
	}

	matchCount := 0
	for token := range jobTokens {
		if _, ok := resumeTokens[token]; ok {
			matchCount++
		}
	}

	// Union is at least |jobTokens| >= 1 here, so the division is safe.
	unionSize := len(resumeTokens) + len(jobTokens) - matchCount
	jaccard := float64(matchCount) / float64(unionSize)

	boost := frequencyBoost(resumeText, jobTokens)

	return jaccard*jaccardWeight + boost*frequencyBoostWeight
}

// frequencyBoost counts, for every job token, its non-overlapping substring
// occurrences in the lowercased resume text, normalized by the token count
// and capped at 1.0. Substring counting deliberately over-counts tokens that
// are embedded in longer words (e.g. "java" inside "javascript"); that
// behavior is part of the scoring contract and kept for compatibility.
func frequencyBoost(resumeText string, jobTokens map[string]struct{}) float64 {
	resumeLower := strings.ToLower(resumeText)

	totalMatches := 0
	for token := range jobTokens {
		totalMatches += strings.Count(resumeLower, token)
	}

	boost := float64(totalMatches) / float64(len(jobTokens))
	if boost > 1.0 {
		boost = 1.0
	}
	return boost
}
