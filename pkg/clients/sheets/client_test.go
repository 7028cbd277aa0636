package sheets

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRow(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newWithBaseURL(server.URL, "sheet-1", server.Client())
	err := client.AppendRow("Client Accounts", []interface{}{"Jordan Avery", "732-555-0188"})
	require.NoError(t, err)

	assert.Contains(t, gotPath, "sheet-1/values/")
	values := gotBody["values"].([]interface{})
	require.Len(t, values, 1)
	assert.Equal(t, []interface{}{"Jordan Avery", "732-555-0188"}, values[0])
}

func TestReadRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"values":[["Agent Name","Phone Number"],["Jordan Avery","732-555-0188"]]}`))
	}))
	defer server.Close()

	client := newWithBaseURL(server.URL, "sheet-1", server.Client())
	rows, err := client.ReadRows("Client Accounts")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Jordan Avery", "732-555-0188"}, rows[1])
}

func TestReadRowsEmptyTab(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newWithBaseURL(server.URL, "sheet-1", server.Client())
	rows, err := client.ReadRows("Client Accounts")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAPIErrorSurfacesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"The caller does not have permission"}}`))
	}))
	defer server.Close()

	client := newWithBaseURL(server.URL, "sheet-1", server.Client())
	err := client.AppendRow("Client Accounts", []interface{}{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not have permission")
}

func TestListTabs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sheets":[{"properties":{"sheetId":0,"title":"Client Accounts"}},{"properties":{"sheetId":712,"title":"Onboarding Submissions"}}]}`))
	}))
	defer server.Close()

	client := newWithBaseURL(server.URL, "sheet-1", server.Client())
	tabs, err := client.ListTabs()
	require.NoError(t, err)
	require.Len(t, tabs, 2)
	assert.Equal(t, Tab{ID: 712, Title: "Onboarding Submissions"}, tabs[1])
}
