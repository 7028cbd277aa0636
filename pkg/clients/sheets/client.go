package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/google"
)

// Client defines the interface for interacting with the Google Sheets
// values API on one spreadsheet.
type Client interface {
	AppendRow(tab string, row []interface{}) error
	ReadRows(tab string) ([][]string, error)
	UpdateRows(tab string, rows [][]interface{}) error
	ListTabs() ([]Tab, error)
	BatchUpdate(requests []map[string]interface{}) error
}

// Tab identifies one sheet inside the spreadsheet.
type Tab struct {
	ID    int64
	Title string
}

type clientImpl struct {
	spreadsheetID string
	baseURL       string
	httpClient    *http.Client
}

const sheetsScope = "https://www.googleapis.com/auth/spreadsheets"

// NewClient creates a Sheets client authenticating with a service
// account key (JSON) against the given spreadsheet.
func NewClient(serviceAccountJSON []byte, spreadsheetID string) (Client, error) {
	conf, err := google.JWTConfigFromJSON(serviceAccountJSON, sheetsScope)
	if err != nil {
		return nil, fmt.Errorf("error parsing service account key: %w", err)
	}
	httpClient := conf.Client(context.Background())
	httpClient.Timeout = 30 * time.Second
	return &clientImpl{
		spreadsheetID: spreadsheetID,
		baseURL:       "https://sheets.googleapis.com/v4/spreadsheets",
		httpClient:    httpClient,
	}, nil
}

func newWithBaseURL(baseURL, spreadsheetID string, httpClient *http.Client) *clientImpl {
	return &clientImpl{
		spreadsheetID: spreadsheetID,
		baseURL:       baseURL,
		httpClient:    httpClient,
	}
}

// AppendRow appends one row after the last data row of the tab.
func (c *clientImpl) AppendRow(tab string, row []interface{}) error {
	rng := url.PathEscape(fmt.Sprintf("'%s'!A:AZ", tab))
	endpoint := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=RAW&insertDataOption=INSERT_ROWS",
		c.baseURL, c.spreadsheetID, rng)

	payload := map[string]interface{}{
		"values": [][]interface{}{row},
	}
	if _, err := c.post(endpoint, payload); err != nil {
		return fmt.Errorf("error appending to tab %q: %w", tab, err)
	}
	return nil
}

// ReadRows reads every populated row of the tab, header row included.
func (c *clientImpl) ReadRows(tab string) ([][]string, error) {
	rng := url.PathEscape(fmt.Sprintf("'%s'!A:AZ", tab))
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.baseURL, c.spreadsheetID, rng)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("error reading tab %q: %w", tab, err)
	}

	var response struct {
		Values [][]string `json:"values"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}
	return response.Values, nil
}

// UpdateRows overwrites cells starting at A1 of the tab.
func (c *clientImpl) UpdateRows(tab string, rows [][]interface{}) error {
	rng := url.PathEscape(fmt.Sprintf("'%s'!A1", tab))
	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=RAW", c.baseURL, c.spreadsheetID, rng)

	payload := map[string]interface{}{
		"values": rows,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPut, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("error updating tab %q: %w", tab, err)
	}
	return nil
}

// ListTabs returns the id and title of every sheet in the spreadsheet.
func (c *clientImpl) ListTabs() ([]Tab, error) {
	endpoint := fmt.Sprintf("%s/%s?fields=sheets.properties", c.baseURL, c.spreadsheetID)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("error listing tabs: %w", err)
	}

	var response struct {
		Sheets []struct {
			Properties struct {
				SheetID int64  `json:"sheetId"`
				Title   string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	tabs := make([]Tab, 0, len(response.Sheets))
	for _, s := range response.Sheets {
		tabs = append(tabs, Tab{ID: s.Properties.SheetID, Title: s.Properties.Title})
	}
	return tabs, nil
}

// BatchUpdate submits structural requests (add sheet, rename, format,
// freeze) against the spreadsheet.
func (c *clientImpl) BatchUpdate(requests []map[string]interface{}) error {
	endpoint := fmt.Sprintf("%s/%s:batchUpdate", c.baseURL, c.spreadsheetID)

	payload := map[string]interface{}{
		"requests": requests,
	}
	if _, err := c.post(endpoint, payload); err != nil {
		return fmt.Errorf("error applying batch update: %w", err)
	}
	return nil
}

func (c *clientImpl) post(endpoint string, payload interface{}) ([]byte, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	return c.do(req)
}

func (c *clientImpl) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling Sheets API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error from Sheets API: %s", string(body))
	}
	return body, nil
}
