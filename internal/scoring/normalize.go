// Package scoring computes resume-to-posting fitness scores, keyword
// coverage, and human-readable score explanations.
package scoring

import "strings"

// minTokenLength is the shortest token kept by Normalize. Shorter tokens
// ("a", "of", "to") carry no matching signal.
const minTokenLength = 3

// Normalize tokenizes text into a set of lowercase alphanumeric tokens.
// Input is lowercased and split on runs of non-alphanumeric characters;
// tokens shorter than three characters are dropped and duplicates collapse.
// Empty input yields an empty set.
func Normalize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	if text == "" {
		return tokens
	}

	lower := strings.ToLower(text)
	start := -1
	for i, r := range lower {
		if isAlphanumeric(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			addToken(tokens, lower[start:i])
			start = -1
		}
	}
	if start >= 0 {
		addToken(tokens, lower[start:])
	}

	return tokens
}

func addToken(tokens map[string]struct{}, tok string) {
	if len(tok) >= minTokenLength {
		tokens[tok] = struct{}{}
	}
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
