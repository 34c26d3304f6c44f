package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/internmatch/internal/config"
	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/schemas"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a seed fixture into the database",
	Long:  "Validate a JSON seed fixture against the embedded schema, then create its users, postings, and applications. Users with matching emails are reused.",
	RunE:  runSeed,
}

var seedFile string

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to seed fixture JSON (required)")
	seedCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	if err := schemas.ValidateSeed(string(content)); err != nil {
		return fmt.Errorf("seed file rejected: %w", err)
	}

	var fixture schemas.SeedFixture
	if err := json.Unmarshal(content, &fixture); err != nil {
		return fmt.Errorf("failed to parse seed file: %w", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	loader := &seedLoader{db: database, passwords: passwordConfig}
	if err := loader.load(ctx, &fixture); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Seeded %d users, %d postings, %d applications\n",
		len(fixture.Users), len(fixture.Postings), len(fixture.Applications))
	return nil
}

// seedLoader creates fixture rows, tracking what it made by the emails and
// titles the fixture uses as keys.
type seedLoader struct {
	db        *db.DB
	passwords *config.PasswordConfig
}

func (l *seedLoader) load(ctx context.Context, fixture *schemas.SeedFixture) error {
	userIDs, err := l.loadUsers(ctx, fixture.Users)
	if err != nil {
		return err
	}

	postingIDs, err := l.loadPostings(ctx, fixture.Postings, userIDs)
	if err != nil {
		return err
	}

	return l.loadApplications(ctx, fixture.Applications, userIDs, postingIDs)
}

func (l *seedLoader) loadUsers(ctx context.Context, users []schemas.SeedUser) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		existing, err := l.db.GetUserByEmail(ctx, u.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user %s: %w", u.Email, err)
		}
		if existing != nil {
			ids[u.Email] = existing.ID
			continue
		}

		id, err := l.db.CreateUser(ctx, u.Name, u.Email, u.Phone, db.Role(u.Role), u.Organization)
		if err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}

		hash, err := l.passwords.HashPassword(u.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}
		if err := l.db.UpdatePassword(ctx, id, hash); err != nil {
			return nil, fmt.Errorf("failed to set password for %s: %w", u.Email, err)
		}

		ids[u.Email] = id
	}
	return ids, nil
}

func (l *seedLoader) loadPostings(ctx context.Context, postings []schemas.SeedPosting, userIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID, len(postings))
	for _, p := range postings {
		companyID, ok := userIDs[p.CompanyEmail]
		if !ok {
			return nil, fmt.Errorf("posting %q references unknown company %s", p.Title, p.CompanyEmail)
		}

		id, err := l.db.CreatePosting(ctx, &db.Posting{
			CompanyID:        companyID,
			Title:            p.Title,
			Description:      p.Description,
			Location:         p.Location,
			JobType:          p.JobType,
			DurationMonths:   p.DurationMonths,
			Stipend:          p.Stipend,
			Skills:           p.Skills,
			Responsibilities: p.Responsibilities,
			Qualifications:   p.Qualifications,
			Active:           true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create posting %q: %w", p.Title, err)
		}
		ids[p.Title] = id
	}
	return ids, nil
}

func (l *seedLoader) loadApplications(ctx context.Context, applications []schemas.SeedApplication, userIDs, postingIDs map[string]uuid.UUID) error {
	for _, a := range applications {
		studentID, ok := userIDs[a.StudentEmail]
		if !ok {
			return fmt.Errorf("application references unknown student %s", a.StudentEmail)
		}
		postingID, ok := postingIDs[a.PostingTitle]
		if !ok {
			return fmt.Errorf("application references unknown posting %q", a.PostingTitle)
		}

		existing, err := l.db.GetApplicationByStudentAndPosting(ctx, studentID, postingID)
		if err != nil {
			return fmt.Errorf("failed to look up application: %w", err)
		}
		if existing != nil {
			continue
		}

		appID, err := l.db.CreateApplication(ctx, studentID, postingID)
		if err != nil {
			return fmt.Errorf("failed to create application for %s: %w", a.StudentEmail, err)
		}

		if a.ResumeText != "" {
			fileName := a.ResumeFile
			if fileName == "" {
				fileName = "seed-resume.txt"
			}
			_, err := l.db.CreateResume(ctx, &db.Resume{
				ApplicationID: appID,
				FileName:      fileName,
				FileSize:      int64(len(a.ResumeText)),
				ExtractedText: a.ResumeText,
			})
			if err != nil {
				return fmt.Errorf("failed to create resume for %s: %w", a.StudentEmail, err)
			}
		}
	}
	return nil
}
