package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/internmatch/internal/fetch"
	"github.com/jonathan/internmatch/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job posting offline",
	Long:  "Score a resume text file against posting text from a file or a fetched URL, without touching the database. Prints the score, keyword coverage, and explanation as JSON.",
	RunE:  runScore,
}

var (
	resumeFile string
	jobFile    string
	jobURL     string
	skillsCSV  string
)

func init() {
	scoreCmd.Flags().StringVarP(&resumeFile, "resume", "r", "", "Path to resume text file (required)")
	scoreCmd.Flags().StringVarP(&jobFile, "job-file", "j", "", "Path to posting text file")
	scoreCmd.Flags().StringVarP(&jobURL, "job-url", "u", "", "URL to fetch posting text from")
	scoreCmd.Flags().StringVarP(&skillsCSV, "skills", "s", "", "Comma-separated required skills for keyword coverage")

	scoreCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(scoreCmd)
}

// scoreOutput is the JSON printed by the score command.
type scoreOutput struct {
	SimilarityScore      float64 `json:"similarity_score"`
	SimilarityPercentage int     `json:"similarity_percentage"`
	KeywordMatches       int     `json:"keyword_matches"`
	TotalKeywords        int     `json:"total_keywords"`
	Explanation          string  `json:"explanation"`
}

func runScore(cmd *cobra.Command, _ []string) error {
	if jobFile == "" && jobURL == "" {
		return fmt.Errorf("either --job-file or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return fmt.Errorf("--job-file and --job-url are mutually exclusive; provide only one")
	}

	resumeBytes, err := os.ReadFile(resumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	resumeText := string(resumeBytes)

	var jobText string
	if jobFile != "" {
		jobBytes, err := os.ReadFile(jobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobText = string(jobBytes)
	} else {
		opts := fetch.DefaultOptions()
		opts.UseBrowser = true
		jobText, err = fetch.PostingText(cmd.Context(), jobURL, opts)
		if err != nil {
			return fmt.Errorf("failed to fetch posting: %w", err)
		}
	}

	similarity := scoring.Score(resumeText, jobText)
	matched, total := scoring.MatchKeywords(resumeText, skillsCSV)

	out := scoreOutput{
		SimilarityScore:      similarity,
		SimilarityPercentage: scoring.SimilarityPercentage(similarity),
		KeywordMatches:       matched,
		TotalKeywords:        total,
		Explanation:          scoring.Explain(similarity, matched, total),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
