package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeywords_Example(t *testing.T) {
	resume := "Experienced Java developer with Spring Boot and MySQL"
	matched, total := MatchKeywords(resume, "Java,Spring Boot,MySQL,Docker")

	assert.Equal(t, 3, matched)
	assert.Equal(t, 4, total)
}

func TestMatchKeywords_EmptyInputs(t *testing.T) {
	matched, total := MatchKeywords("", "Java,Go")
	assert.Zero(t, matched)
	assert.Zero(t, total)

	matched, total = MatchKeywords("some resume text", "")
	assert.Zero(t, matched)
	assert.Zero(t, total)
}

func TestMatchKeywords_TrimAndCase(t *testing.T) {
	matched, total := MatchKeywords("Built services in GO and POSTGRES", "  go ,  postgres  ")

	assert.Equal(t, 2, matched)
	assert.Equal(t, 2, total)
}

func TestMatchKeywords_DuplicatesPreserved(t *testing.T) {
	// A skill repeated in the CSV counts twice toward the total and matches
	// once per occurrence.
	matched, total := MatchKeywords("Go developer", "Go,Go,Rust")

	assert.Equal(t, 2, matched)
	assert.Equal(t, 3, total)
}

func TestMatchKeywords_EmptyEntriesDropped(t *testing.T) {
	matched, total := MatchKeywords("Go developer", ",,Go,,")

	assert.Equal(t, 1, matched)
	assert.Equal(t, 1, total)
}

func TestParseSkills(t *testing.T) {
	skills := ParseSkills(" Java , Spring Boot ,, MYSQL ")
	assert.Equal(t, []string{"java", "spring boot", "mysql"}, skills)

	assert.Nil(t, ParseSkills(""))
}
