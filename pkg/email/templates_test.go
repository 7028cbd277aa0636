package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-backend/pkg/models"
)

func templateSubmission() models.Submission {
	return models.Submission{
		FullName:              "Jordan Avery",
		Email:                 "jordan@avery.com",
		Phone:                 "732-555-0188",
		CompanyName:           "Avery Insurance",
		JobTitle:              "Principal",
		ConnectionCount:       models.Connections5000Plus,
		AccountAge:            models.Age3PlusYears,
		AccountClassification: "OLD/MATURE - 150 actions/day - Low Risk",
		PrimaryGoal:           models.GoalGrowNetwork,
		NicheSpecialization:   "Commercial lines",
		GeographicFocus:       "New Jersey",
		TargetJobTitles:       "CFO\nRisk Manager",
		SignatureName:         "Jordan Avery",
		SignatureDate:         "2025-06-15",
		AgreeTerms:            "Yes",
		AgreeContract:         "No",
	}
}

func TestClientWelcome(t *testing.T) {
	html, err := ClientWelcome(templateSubmission(), "https://example.com/schedule")
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome, Jordan Avery!")
	assert.Contains(t, html, "OLD/MATURE - 150 actions/day - Low Risk")
	assert.Contains(t, html, "Grow Network (Affinity 500+)")
	assert.Contains(t, html, `href="https://example.com/schedule"`)
}

func TestOperatorNotification(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)
	html, err := OperatorNotification(templateSubmission(), now)
	require.NoError(t, err)

	assert.Contains(t, html, "New Client Onboarding Submission")
	assert.Contains(t, html, "Jordan Avery")
	assert.Contains(t, html, "Avery Insurance")
	assert.Contains(t, html, "CFO<br>Risk Manager", "textarea newlines render as line breaks")
	assert.Contains(t, html, "150 actions/day")
	assert.Contains(t, html, "6/15/2025, 10:30:00 AM")
}

func TestOperatorNotificationEscapesInput(t *testing.T) {
	sub := templateSubmission()
	sub.FullName = `<script>alert("x")</script>`

	html, err := OperatorNotification(sub, time.Now())
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestOperatorNotificationOmitsEmptyConditionalRows(t *testing.T) {
	html, err := OperatorNotification(templateSubmission(), time.Now())
	require.NoError(t, err)
	assert.NotContains(t, html, "Ethnic Community")
	assert.NotContains(t, html, "Client Notes")

	sub := templateSubmission()
	sub.EthnicCommunity = "Example community"
	sub.CampaignNotes = "Call after 5pm"
	html, err = OperatorNotification(sub, time.Now())
	require.NoError(t, err)
	assert.Contains(t, html, "Ethnic Community")
	assert.Contains(t, html, "Call after 5pm")
}
