package scoring

import (
	"fmt"
	"strings"
)

// Explain renders a similarity score and keyword coverage into a short
// human-readable summary of three clauses: a match band, the skill coverage,
// and an interview recommendation. The match band compares the score
// truncated to a whole percent; the recommendation compares the raw score.
func Explain(similarityScore float64, matchCount, totalKeywords int) string {
	clauses := make([]string, 0, 3)

	similarityPercent := int(similarityScore * 100)
	switch {
	case similarityPercent >= 80:
		clauses = append(clauses, "Excellent match.")
	case similarityPercent >= 60:
		clauses = append(clauses, "Good match.")
	case similarityPercent >= 40:
		clauses = append(clauses, "Fair match.")
	default:
		clauses = append(clauses, "Limited match.")
	}

	skillPercent := 0
	if totalKeywords > 0 {
		skillPercent = matchCount * 100 / totalKeywords
	}
	clauses = append(clauses, fmt.Sprintf("Matched %d out of %d required skills (%d%%).",
		matchCount, totalKeywords, skillPercent))

	switch {
	case similarityScore >= 0.7:
		clauses = append(clauses, "Highly recommended for interview.")
	case similarityScore >= 0.5:
		clauses = append(clauses, "Recommended for further review.")
	default:
		clauses = append(clauses, "May require additional screening.")
	}

	return strings.Join(clauses, " ")
}

// SimilarityPercentage converts a [0,1] similarity score to a whole percent
// for display, truncating toward zero.
func SimilarityPercentage(similarityScore float64) int {
	return int(similarityScore * 100)
}
