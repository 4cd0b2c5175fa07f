package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTestServer points the global flags at a stub backend and a throwaway
// session file, and resets them after the test.
func withTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	prevBase, prevSession := flagBaseURL, flagSessionFile
	flagBaseURL = srv.URL
	flagSessionFile = filepath.Join(t.TempDir(), "session.json")
	t.Cleanup(func() {
		flagBaseURL, flagSessionFile = prevBase, prevSession
	})
	return srv
}

func TestRunLogin_PersistsSession(t *testing.T) {
	withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "tok",
			"refresh_token": "ref",
			"expires_at":    "2027-01-01T00:00:00Z",
			"user": map[string]any{
				"id":           "u1",
				"email":        "dana@example.com",
				"account_type": "job_seeker",
				"created_at":   "2026-01-01T00:00:00Z",
			},
		})
	}))

	loginEmail = "dana@example.com"
	loginPassword = "hunter22!"
	require.NoError(t, runLogin(nil, nil))

	data, err := os.ReadFile(flagSessionFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "tok")
}

func TestRunLogin_RejectsBadEmailWithoutNetwork(t *testing.T) {
	calls := 0
	withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	loginEmail = "not-an-email"
	loginPassword = "hunter22!"
	err := runLogin(nil, nil)
	assert.Error(t, err)
	assert.Equal(t, 0, calls)
}

func TestRunListJobs_FiltersActiveByDefault(t *testing.T) {
	var gotQuery string
	withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/jobs", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))

	listJobsAll = false
	listJobsLimit = 20
	require.NoError(t, runListJobs(nil, nil))
	assert.Contains(t, gotQuery, "is_active=true")
	assert.Contains(t, gotQuery, "limit=20")
}

func TestRunWhoami_FailsLoggedOut(t *testing.T) {
	calls := 0
	withTestServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))

	err := runWhoami(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Equal(t, 0, calls)
}

func TestLoadSettings_FlagOverridesConfig(t *testing.T) {
	prevBase, prevEnv := flagBaseURL, flagEnvironment
	flagBaseURL = "https://cli.example.com"
	flagEnvironment = "development"
	t.Cleanup(func() { flagBaseURL, flagEnvironment = prevBase, prevEnv })

	cfg, err := loadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://cli.example.com", cfg.BaseURL)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadSettings_RejectsBadEnvironment(t *testing.T) {
	prevEnv := flagEnvironment
	flagEnvironment = "staging"
	t.Cleanup(func() { flagEnvironment = prevEnv })

	_, err := loadSettings()
	assert.Error(t, err)
}
