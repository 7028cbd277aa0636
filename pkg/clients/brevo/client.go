package brevo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client defines the interface for sending transactional email through
// the Brevo API.
type Client interface {
	SendEmail(toEmail, toName, subject, htmlContent string) error
}

type clientImpl struct {
	apiKey      string
	senderEmail string
	senderName  string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new Brevo client sending from the given verified
// sender.
func NewClient(apiKey, senderEmail, senderName string) Client {
	return &clientImpl{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		baseURL:     "https://api.brevo.com/v3",
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *clientImpl) SendEmail(toEmail, toName, subject, htmlContent string) error {
	endpoint := c.baseURL + "/smtp/email"

	payload := map[string]interface{}{
		"sender": map[string]string{
			"name":  c.senderName,
			"email": c.senderEmail,
		},
		"to": []map[string]string{
			{"email": toEmail, "name": toName},
		},
		"subject":     subject,
		"htmlContent": htmlContent,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("api-key", c.apiKey)
	req.Header.Add("accept", "application/json")
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("error from Brevo API: %s", string(body))
	}
	return nil
}
