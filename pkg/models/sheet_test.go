package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleSubmission() Submission {
	return Submission{
		FullName:              "Jordan Avery",
		Email:                 "jordan@avery.com",
		Phone:                 "732-555-0188",
		CompanyName:           "Avery Insurance",
		LinkedInEmail:         "jordan@avery.com",
		LinkedInPassword:      "hunter2!",
		GeographicFocus:       "New Jersey",
		AccountStatus:         "active",
		AccountClassification: "MEDIUM - 80 actions/day - Medium Risk",
	}
}

func TestSubmissionRowMatchesHeaderLayout(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	row := SubmissionRow(sampleSubmission(), "sub-123", now)

	assert.Len(t, row, len(SubmissionHeaders))

	byHeader := make(map[string]interface{}, len(row))
	for i, h := range SubmissionHeaders {
		byHeader[h] = row[i]
	}
	assert.Equal(t, "Jordan Avery", byHeader["Full Name"])
	assert.Equal(t, "New - Pending Review", byHeader["Status"])
	assert.Equal(t, "sub-123", byHeader["Submission ID"])
	assert.Equal(t, "MEDIUM - 80 actions/day - Medium Risk", byHeader["Account Classification"])
	assert.Equal(t, "6/15/2025, 10:30:00 AM", byHeader["Timestamp"])
}

func TestDirectoryRowMatchesHeaderLayout(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	row := DirectoryRow(sampleSubmission(), now)

	assert.Len(t, row, len(DirectoryHeaders))

	byHeader := make(map[string]interface{}, len(row))
	for i, h := range DirectoryHeaders {
		byHeader[h] = row[i]
	}
	assert.Equal(t, "Jordan Avery", byHeader["Agent Name"])
	assert.Equal(t, "New Jersey", byHeader["Location"])
	assert.Equal(t, "MEDIUM - 80 actions/day - Medium Risk", byHeader["Account Type"])
	assert.Equal(t, "New - Onboarded", byHeader["Status"])
	assert.Equal(t, "6/15/2025", byHeader["Date Added"])
	assert.Equal(t, "", byHeader["Gmail Access"])
}

func TestClientRecordFromRowPadsShortRows(t *testing.T) {
	record := ClientRecordFromRow([]string{"Jordan Avery", "732-555-0188"})
	assert.Equal(t, "Jordan Avery", record.Name)
	assert.Equal(t, "732-555-0188", record.Phone)
	assert.Equal(t, "", record.Email)
	assert.Equal(t, "", record.DateAdded)
}

func TestGoalDisplay(t *testing.T) {
	assert.Equal(t, "Grow Network (Affinity 500+)", Submission{PrimaryGoal: GoalGrowNetwork}.GoalDisplay())
	assert.Equal(t, "Get New Business (Affinity 3000)", Submission{PrimaryGoal: GoalGetBusiness}.GoalDisplay())
}
