package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "password123",
		Role:     "student",
	}
	assert.NoError(t, valid.Validate())

	missingEmail := valid
	missingEmail.Email = "not-an-email"
	assert.Error(t, missingEmail.Validate())

	shortPassword := valid
	shortPassword.Password = "short"
	assert.Error(t, shortPassword.Validate())

	badRole := valid
	badRole.Role = "recruiter"
	assert.Error(t, badRole.Validate())
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ada@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&LoginRequest{Email: "ada@example.com"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "password123"}).Validate())
}

func TestUpdatePasswordRequest_Validate(t *testing.T) {
	valid := UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"}
	assert.NoError(t, valid.Validate())

	weak := UpdatePasswordRequest{CurrentPassword: "old-password", NewPassword: "weak"}
	assert.Error(t, weak.Validate())
}

func TestPostingRequest_Validate(t *testing.T) {
	valid := PostingRequest{
		Title:       "Backend Intern",
		Description: "Build Go services",
		Location:    "Remote",
		JobType:     "remote",
		Skills:      "Go,Postgres",
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.JobType = "contract"
	assert.Error(t, badType.Validate())

	negativeStipend := valid
	negativeStipend.Stipend = -100
	assert.Error(t, negativeStipend.Validate())
}

func TestScoreRequest_Validate(t *testing.T) {
	valid := ScoreRequest{ApplicationID: uuid.New(), PostingID: uuid.New()}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&ScoreRequest{PostingID: uuid.New()}).Validate())
	assert.Error(t, (&ScoreRequest{ApplicationID: uuid.New()}).Validate())
}

func TestApplicationRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ApplicationRequest{PostingID: uuid.New()}).Validate())
	assert.Error(t, (&ApplicationRequest{}).Validate())
}
