package config

import (
	"os"
	"time"
)

// Config holds all application configuration values
type Config struct {
	Env                string
	Port               string
	ServiceAccountFile string
	SpreadsheetID      string
	SubmissionsTab     string
	DirectoryTab       string
	CampaignTab        string
	BrevoAPIKey        string
	SenderEmail        string
	SenderName         string
	OperatorEmail      string
	OperatorName       string
	MeetingLink        string
	DashboardPassword  string
	SessionTTL         time.Duration
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Env:                getEnv("ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		ServiceAccountFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", "service-account.json"),
		SpreadsheetID:      os.Getenv("MAIN_SHEET_ID"),
		SubmissionsTab:     getEnv("SUBMISSIONS_TAB", "Onboarding Submissions"),
		DirectoryTab:       getEnv("DIRECTORY_TAB", "Client Accounts"),
		CampaignTab:        getEnv("CAMPAIGN_TAB", "Campaign Tracker"),
		BrevoAPIKey:        os.Getenv("BREVO_API_KEY"),
		SenderEmail:        os.Getenv("SENDER_EMAIL"),
		SenderName:         os.Getenv("SENDER_NAME"),
		OperatorEmail:      os.Getenv("OPERATOR_EMAIL"),
		OperatorName:       getEnv("OPERATOR_NAME", "Onboarding Team"),
		MeetingLink:        getEnv("MEETING_LINK", "#"),
		DashboardPassword:  os.Getenv("DASHBOARD_PASSWORD"),
		SessionTTL:         24 * time.Hour,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
