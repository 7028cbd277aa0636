package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"onboarding-backend/pkg/models"
	"onboarding-backend/pkg/services"
)

type mockSubmissionService struct {
	processed []models.Submission
}

func (m *mockSubmissionService) ProcessSubmission(sub models.Submission) {
	m.processed = append(m.processed, sub)
}

type mockDashboardService struct {
	clients []models.ClientRecord
	details map[string]string
	err     error
}

func (m *mockDashboardService) ListClients() ([]models.ClientRecord, error) {
	return m.clients, m.err
}

func (m *mockDashboardService) ClientDetails(name string) (map[string]string, error) {
	return m.details, m.err
}

func newTestRouter(subs *mockSubmissionService, dash *mockDashboardService, sessions services.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandlers(subs, dash, sessions, zap.NewNop())
	RegisterRoutes(router, h, sessions)
	return router
}

func validSubmissionJSON() string {
	sub := models.Submission{
		FullName:            "Jordan Avery",
		Email:               "jordan@avery.com",
		Phone:               "732-555-0188",
		CompanyName:         "Avery Insurance",
		JobTitle:            "Principal",
		LinkedInURL:         "https://linkedin.com/in/jordanavery",
		LinkedInEmail:       "jordan@avery.com",
		LinkedInPassword:    "hunter2!",
		AccountAge:          models.Age3PlusYears,
		ConnectionCount:     models.Connections5000Plus,
		TwoFactorMethod:     models.TwoFactorNone,
		PrimaryGoal:         models.GoalGrowNetwork,
		AudienceCategory:    "industry",
		NicheSpecialization: "Commercial lines",
		GeographicFocus:     "New Jersey",
		AgreeTerms:          "Yes",
		SignatureName:       "Jordan Avery",
	}
	raw, _ := json.Marshal(sub)
	return string(raw)
}

func doRequest(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("x-dashboard-token", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(&mockSubmissionService{}, &mockDashboardService{}, services.NewMemorySessionStore("pw", time.Hour))

	rec := doRequest(router, http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestSubmitSuccess(t *testing.T) {
	subs := &mockSubmissionService{}
	router := newTestRouter(subs, &mockDashboardService{}, services.NewMemorySessionStore("pw", time.Hour))

	rec := doRequest(router, http.MethodPost, "/api/submit", validSubmissionJSON(), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
	require.Len(t, subs.processed, 1)
	assert.Equal(t, "Jordan Avery", subs.processed[0].FullName)
}

func TestSubmitMalformedJSON(t *testing.T) {
	subs := &mockSubmissionService{}
	router := newTestRouter(subs, &mockDashboardService{}, services.NewMemorySessionStore("pw", time.Hour))

	rec := doRequest(router, http.MethodPost, "/api/submit", "{not json", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
	assert.Empty(t, subs.processed)
}

func TestSubmitFailsValidation(t *testing.T) {
	subs := &mockSubmissionService{}
	router := newTestRouter(subs, &mockDashboardService{}, services.NewMemorySessionStore("pw", time.Hour))

	var sub map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(validSubmissionJSON()), &sub))
	sub["email"] = "bob@"
	raw, _ := json.Marshal(sub)

	rec := doRequest(router, http.MethodPost, "/api/submit", string(raw), "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, subs.processed)
}

func TestLoginIssuesToken(t *testing.T) {
	sessions := services.NewMemorySessionStore("opensesame", time.Hour)
	router := newTestRouter(&mockSubmissionService{}, &mockDashboardService{}, sessions)

	rec := doRequest(router, http.MethodPost, "/api/dashboard/login", `{"password":"opensesame"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Token  string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.True(t, sessions.Validate(resp.Token))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	sessions := services.NewMemorySessionStore("opensesame", time.Hour)
	router := newTestRouter(&mockSubmissionService{}, &mockDashboardService{}, sessions)

	rec := doRequest(router, http.MethodPost, "/api/dashboard/login", `{"password":"guess"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect password.")
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	sessions := services.NewMemorySessionStore("opensesame", time.Hour)
	router := newTestRouter(&mockSubmissionService{}, &mockDashboardService{}, sessions)

	token, err := sessions.Issue("opensesame")
	require.NoError(t, err)

	rec := doRequest(router, http.MethodPost, "/api/dashboard/logout", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, sessions.Validate(token))

	// Logging out without a token still succeeds.
	rec = doRequest(router, http.MethodPost, "/api/dashboard/logout", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientsRequireToken(t *testing.T) {
	sessions := services.NewMemorySessionStore("opensesame", time.Hour)
	dash := &mockDashboardService{clients: []models.ClientRecord{{Name: "Jordan Avery"}}}
	router := newTestRouter(&mockSubmissionService{}, dash, sessions)

	rec := doRequest(router, http.MethodGet, "/api/clients", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/clients", "", "bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := sessions.Issue("opensesame")
	require.NoError(t, err)
	rec = doRequest(router, http.MethodGet, "/api/clients", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jordan Avery")
}

func TestClientDetailsNullWhenMissing(t *testing.T) {
	sessions := services.NewMemorySessionStore("opensesame", time.Hour)
	router := newTestRouter(&mockSubmissionService{}, &mockDashboardService{}, sessions)

	token, err := sessions.Issue("opensesame")
	require.NoError(t, err)
	rec := doRequest(router, http.MethodGet, "/api/clients/Nobody/details", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"details":null`)
}
