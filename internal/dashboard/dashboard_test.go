package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-client/internal/api"
)

func jobJSON(id string) string {
	return fmt.Sprintf(`{
		"id": %q, "title": "Role %s", "company": "Acme", "description": "d",
		"location": "Berlin", "job_type": "full_time", "is_active": true,
		"posted_by": "emp-1",
		"created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z"
	}`, id, id)
}

func appJSON(id, jobID, seekerID string) string {
	return fmt.Sprintf(`{
		"id": %q, "job_id": %q, "job_seeker_id": %q, "status": "unreviewed",
		"created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z"
	}`, id, jobID, seekerID)
}

func seekerJSON(id string) string {
	return fmt.Sprintf(`{
		"id": %q, "user_id": "u-%s", "first_name": "Dana", "last_name": "Kim",
		"email": "dana@example.com",
		"created_at": "2025-01-01T00:00:00Z", "updated_at": "2025-01-01T00:00:00Z"
	}`, id, id)
}

func newFakeBackend(t *testing.T) (*api.Client, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		switch {
		case r.URL.Path == "/api/jobs":
			assert.Equal(t, "emp-1", r.URL.Query().Get("posted_by"))
			_, _ = fmt.Fprintf(w, "[%s, %s]", jobJSON("J1"), jobJSON("J2"))
		case r.URL.Path == "/api/applications":
			switch r.URL.Query().Get("job_id") {
			case "J1":
				_, _ = fmt.Fprintf(w, "[%s, %s]", appJSON("A1", "J1", "S1"), appJSON("A2", "J1", "S2"))
			case "J2":
				_, _ = fmt.Fprint(w, "[]")
			default:
				http.NotFound(w, r)
			}
		case strings.HasPrefix(r.URL.Path, "/api/job-seeker-profiles/"):
			id := strings.TrimPrefix(r.URL.Path, "/api/job-seeker-profiles/")
			if id == "S2" {
				http.NotFound(w, r) // deleted profile
				return
			}
			_, _ = fmt.Fprint(w, seekerJSON(id))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return api.New(&api.Options{BaseURL: srv.URL, Env: api.EnvDevelopment}), &calls
}

func TestBuildEmployer_JoinsJobsApplicationsProfiles(t *testing.T) {
	client, calls := newFakeBackend(t)

	rows, err := BuildEmployer(context.Background(), client, "emp-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "J1", rows[0].Job.ID)
	require.Len(t, rows[0].Applicants, 2)
	assert.Empty(t, rows[1].Applicants)

	withProfile := rows[0].Applicants[0]
	require.NotNil(t, withProfile.Profile)
	assert.Equal(t, "S1", withProfile.Profile.ID)
	assert.GreaterOrEqual(t, withProfile.MatchScore, 70)
	assert.LessOrEqual(t, withProfile.MatchScore, 95)

	// The deleted profile leaves the row without candidate detail, not an error.
	assert.Nil(t, rows[0].Applicants[1].Profile)

	// 1 job list + 2 application lists + 2 profile lookups.
	assert.EqualValues(t, 5, calls.Load())
}

func TestBuildEmployer_ApplicationFetchFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/jobs" {
			_, _ = fmt.Fprintf(w, "[%s]", jobJSON("J1"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	client := api.New(&api.Options{BaseURL: srv.URL, Env: api.EnvDevelopment})

	_, err := BuildEmployer(context.Background(), client, "emp-1")
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, http.StatusInternalServerError))
}

func TestBuildEmployer_HonorsCancelledContext(t *testing.T) {
	client, _ := newFakeBackend(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildEmployer(ctx, client, "emp-1")
	assert.Error(t, err)
}
