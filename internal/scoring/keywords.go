package scoring

import "strings"

// MatchKeywords checks a comma-separated required-skills list against resume
// text and returns how many skills matched along with the total number of
// skills. Skills are trimmed, lowercased, and matched by substring
// containment. Duplicate entries in the CSV are preserved: a repeated skill
// counts toward the total once per occurrence. Empty resume text or an empty
// skills string yields (0, 0).
func MatchKeywords(resumeText, skillsCsv string) (matchCount, totalKeywords int) {
	if resumeText == "" || skillsCsv == "" {
		return 0, 0
	}

	skills := ParseSkills(skillsCsv)
	resumeLower := strings.ToLower(resumeText)

	for _, skill := range skills {
		if strings.Contains(resumeLower, skill) {
			matchCount++
		}
	}

	return matchCount, len(skills)
}

// ParseSkills splits a comma-separated skills string into trimmed, lowercased
// entries, dropping empties but keeping duplicates.
func ParseSkills(skillsCsv string) []string {
	if skillsCsv == "" {
		return nil
	}

	parts := strings.Split(skillsCsv, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
