package api

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-client/internal/types"
)

const validSeekerProfileJSON = `{
	"id": "S1",
	"user_id": "u1",
	"first_name": "Dana",
	"last_name": "Kim",
	"email": "dana@example.com",
	"skills": ["go", "sql"],
	"years_of_experience": 4,
	"view_count": 7,
	"created_at": "2025-01-01T09:00:00Z",
	"updated_at": "2025-01-01T09:00:00Z"
}`

func TestGetByUserID_404IsAbsentNotError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	profile, err := client.JobSeekers.GetByUserID(context.Background(), "u-new")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestGetByUserID_OtherStatusesPropagate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.JobSeekers.GetByUserID(context.Background(), "u1")
	require.Error(t, err)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
}

func TestSave_CreatesWhenAbsentUpdatesWhenPresent(t *testing.T) {
	var methods []string
	var paths []string
	hasProfile := false
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method)
		paths = append(paths, r.URL.Path)
		if r.Method == http.MethodGet && !hasProfile {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(validSeekerProfileJSON))
	}))

	req := &types.SaveJobSeekerProfileRequest{
		UserID:    "u1",
		FirstName: "Dana",
		LastName:  "Kim",
		Email:     "dana@example.com",
	}

	// First save: lookup 404s, so the client creates.
	profile, err := client.JobSeekers.Save(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "S1", profile.ID)
	require.Len(t, methods, 2)
	assert.Equal(t, http.MethodPost, methods[1])
	assert.Equal(t, "/api/job-seeker-profiles", paths[1])

	// Second save: lookup finds the profile, so the client updates it.
	hasProfile = true
	_, err = client.JobSeekers.Save(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, methods, 4)
	assert.Equal(t, http.MethodPut, methods[3])
	assert.Equal(t, "/api/job-seeker-profiles/S1", paths[3])
}

func TestEmployerGetByUserID_SameAbsentConvention(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	profile, err := client.Employers.GetByUserID(context.Background(), "u-new")
	assert.NoError(t, err)
	assert.Nil(t, profile)
}
