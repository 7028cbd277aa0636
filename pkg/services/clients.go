package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"onboarding-backend/pkg/clients/sheets"
	"onboarding-backend/pkg/config"
	"onboarding-backend/pkg/models"
)

// DashboardService defines the read side of the dashboard: the client
// list and per-client details, both rebuilt from the sheet on every
// call.
type DashboardService interface {
	ListClients() ([]models.ClientRecord, error)
	ClientDetails(name string) (map[string]string, error)
}

type dashboardServiceImpl struct {
	sheetsClient sheets.Client
	config       *config.Config
	logger       *zap.Logger
}

// NewDashboardService creates a new dashboard read service
func NewDashboardService(sheetsClient sheets.Client, cfg *config.Config, logger *zap.Logger) DashboardService {
	return &dashboardServiceImpl{
		sheetsClient: sheetsClient,
		config:       cfg,
		logger:       logger,
	}
}

// ListClients reads the client directory, skipping the header row and
// dropping rows without a name. The header row is checked against the
// expected layout so schema drift fails loudly instead of silently
// misaligning columns.
func (s *dashboardServiceImpl) ListClients() ([]models.ClientRecord, error) {
	rows, err := s.sheetsClient.ReadRows(s.config.DirectoryTab)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []models.ClientRecord{}, nil
	}

	if err := checkHeader(rows[0], models.DirectoryHeaders); err != nil {
		return nil, fmt.Errorf("client directory: %w", err)
	}

	clients := make([]models.ClientRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := models.ClientRecordFromRow(row)
		if record.Name == "" {
			continue
		}
		clients = append(clients, record)
	}
	return clients, nil
}

// ClientDetails finds the first submissions-log row whose name column
// equals the request, ignoring case, and zips header labels to its
// non-blank cells. Returns nil when no row matches.
func (s *dashboardServiceImpl) ClientDetails(name string) (map[string]string, error) {
	rows, err := s.sheetsClient.ReadRows(s.config.SubmissionsTab)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	headers := rows[0]
	// Column B holds the full name.
	const nameCol = 1
	for _, row := range rows[1:] {
		if nameCol >= len(row) || !strings.EqualFold(row[nameCol], name) {
			continue
		}
		details := make(map[string]string)
		for i, header := range headers {
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				details[header] = row[i]
			}
		}
		return details, nil
	}
	return nil, nil
}

func checkHeader(got, want []string) error {
	if len(got) < len(want) {
		return fmt.Errorf("header row has %d columns, want %d", len(got), len(want))
	}
	for i, label := range want {
		if got[i] != label {
			return fmt.Errorf("header column %d is %q, want %q", i+1, got[i], label)
		}
	}
	return nil
}
