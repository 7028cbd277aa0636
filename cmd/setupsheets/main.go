// Command setupsheets prepares the backing spreadsheet: renames it,
// ensures the three tabs exist, writes the versioned header rows and
// formats/freezes them. Safe to re-run; existing tabs are kept.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"onboarding-backend/pkg/clients/sheets"
	"onboarding-backend/pkg/config"
	"onboarding-backend/pkg/logger"
	"onboarding-backend/pkg/models"
)

const spreadsheetTitle = "BBM Group - Onboarding System"

// CampaignHeaders is the header row of the campaign tracker tab,
// populated by operators rather than this service.
var campaignHeaders = []string{
	"Agent Name", "Campaign Start Date", "Account Type",
	"Daily Action Limit", "Connection Requests Sent", "Connections Accepted",
	"Acceptance Rate", "Messages Sent", "Response Rate",
	"Posts This Week", "Profile Views (90d)", "SSI Score",
	"Referrals Sent", "Leads Generated", "Status", "Notes",
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}
	cfg := config.LoadConfig()
	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	key, err := os.ReadFile(cfg.ServiceAccountFile)
	if err != nil {
		zlog.Fatal("error reading service account key", zap.Error(err))
	}
	client, err := sheets.NewClient(key, cfg.SpreadsheetID)
	if err != nil {
		zlog.Fatal("error creating sheets client", zap.Error(err))
	}

	zlog.Info("renaming spreadsheet", zap.String("title", spreadsheetTitle))
	err = client.BatchUpdate([]map[string]interface{}{
		{
			"updateSpreadsheetProperties": map[string]interface{}{
				"properties": map[string]interface{}{"title": spreadsheetTitle},
				"fields":     "title",
			},
		},
	})
	if err != nil {
		zlog.Fatal("error renaming spreadsheet", zap.Error(err))
	}

	if err := ensureTabs(client, cfg, zlog); err != nil {
		zlog.Fatal("error creating tabs", zap.Error(err))
	}

	headerRows := map[string][]string{
		cfg.DirectoryTab:   models.DirectoryHeaders,
		cfg.SubmissionsTab: models.SubmissionHeaders,
		cfg.CampaignTab:    campaignHeaders,
	}
	for tab, headers := range headerRows {
		row := make([]interface{}, len(headers))
		for i, h := range headers {
			row[i] = h
		}
		if err := client.UpdateRows(tab, [][]interface{}{row}); err != nil {
			zlog.Fatal("error writing headers", zap.String("tab", tab), zap.Error(err))
		}
		zlog.Info("headers written", zap.String("tab", tab))
	}

	if err := formatHeaders(client, zlog); err != nil {
		zlog.Fatal("error formatting headers", zap.Error(err))
	}

	zlog.Info("spreadsheet ready",
		zap.String("url", "https://docs.google.com/spreadsheets/d/"+cfg.SpreadsheetID+"/edit"))
}

// ensureTabs renames the first sheet to the directory tab when missing
// and adds the other tabs that do not exist yet.
func ensureTabs(client sheets.Client, cfg *config.Config, zlog *zap.Logger) error {
	tabs, err := client.ListTabs()
	if err != nil {
		return err
	}
	existing := make(map[string]bool, len(tabs))
	for _, t := range tabs {
		existing[t.Title] = true
	}

	var requests []map[string]interface{}
	if !existing[cfg.DirectoryTab] && len(tabs) > 0 {
		requests = append(requests, map[string]interface{}{
			"updateSheetProperties": map[string]interface{}{
				"properties": map[string]interface{}{
					"sheetId": tabs[0].ID,
					"title":   cfg.DirectoryTab,
				},
				"fields": "title",
			},
		})
		zlog.Info("renaming first tab", zap.String("to", cfg.DirectoryTab))
	}
	for _, title := range []string{cfg.SubmissionsTab, cfg.CampaignTab} {
		if existing[title] {
			continue
		}
		requests = append(requests, map[string]interface{}{
			"addSheet": map[string]interface{}{
				"properties": map[string]interface{}{"title": title},
			},
		})
		zlog.Info("adding tab", zap.String("title", title))
	}

	if len(requests) == 0 {
		return nil
	}
	return client.BatchUpdate(requests)
}

// formatHeaders bolds the header row white-on-navy and freezes it on
// every tab.
func formatHeaders(client sheets.Client, zlog *zap.Logger) error {
	tabs, err := client.ListTabs()
	if err != nil {
		return err
	}

	var requests []map[string]interface{}
	for _, tab := range tabs {
		requests = append(requests,
			map[string]interface{}{
				"repeatCell": map[string]interface{}{
					"range": map[string]interface{}{
						"sheetId":       tab.ID,
						"startRowIndex": 0,
						"endRowIndex":   1,
					},
					"cell": map[string]interface{}{
						"userEnteredFormat": map[string]interface{}{
							"backgroundColor": map[string]float64{"red": 0.102, "green": 0.227, "blue": 0.361},
							"textFormat": map[string]interface{}{
								"foregroundColor": map[string]float64{"red": 1, "green": 1, "blue": 1},
								"bold":            true,
								"fontSize":        10,
							},
						},
					},
					"fields": "userEnteredFormat(backgroundColor,textFormat)",
				},
			},
			map[string]interface{}{
				"updateSheetProperties": map[string]interface{}{
					"properties": map[string]interface{}{
						"sheetId":        tab.ID,
						"gridProperties": map[string]interface{}{"frozenRowCount": 1},
					},
					"fields": "gridProperties.frozenRowCount",
				},
			},
		)
	}

	zlog.Info("formatting header rows", zap.Int("tabs", len(tabs)))
	return client.BatchUpdate(requests)
}
