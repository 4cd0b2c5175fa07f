package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-client/internal/api"
)

const createdApplicationJSON = `{
	"id": "A1",
	"job_id": "J1",
	"job_seeker_id": "S1",
	"status": "unreviewed",
	"created_at": "2025-01-01T09:00:00Z",
	"updated_at": "2025-01-01T09:00:00Z"
}`

func readyWizard(t *testing.T) *Wizard {
	t.Helper()
	w := New("J1", Settings{
		ScreeningQuestions: []string{"Why this role?"},
		ShowDemographics:   false,
		Method:             MethodInApp,
	})
	fillContact(w.Answers())
	w.Answers().NoExperience = true
	w.Answers().CoverLetter = "Hello."
	w.Answers().Screening = []ScreeningAnswer{{Question: "Why this role?", Answer: "Systems."}}
	w.Answers().AgreeTerms = true
	for w.Page() != PageReview {
		require.True(t, w.Next())
	}
	return w
}

func submitClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(&api.Options{BaseURL: srv.URL, Env: api.EnvDevelopment})
}

func TestSubmit_WithoutProfileFailsLocally(t *testing.T) {
	calls := 0
	client := submitClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	w := readyWizard(t)

	_, err := w.Submit(context.Background(), client.Applications, "")

	assert.ErrorIs(t, err, ErrNoProfile)
	assert.Equal(t, 0, calls, "no network call is made")
	assert.Equal(t, PageReview, w.Page())
}

func TestSubmit_PostsNotesBlobAndNavigatesAway(t *testing.T) {
	var payload map[string]any
	client := submitClient(t, http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applications", r.URL.Path)
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))
		_, _ = rw.Write([]byte(createdApplicationJSON))
	}))
	w := readyWizard(t)

	app, err := w.Submit(context.Background(), client.Applications, "S1")

	require.NoError(t, err)
	assert.Equal(t, "A1", app.ID)
	assert.Equal(t, "J1", payload["job_id"])
	assert.Equal(t, "S1", payload["job_seeker_id"])
	assert.Equal(t, "Hello.\n\nQ: Why this role?\nA: Systems.", payload["notes"])
}

func TestSubmit_StatusMessageMapping(t *testing.T) {
	cases := []struct {
		status  int
		message string
	}{
		{http.StatusForbidden, "You must log in to apply."},
		{http.StatusNotFound, "The job or your profile could not be found."},
		{http.StatusConflict, "You have already applied to this job."},
		{http.StatusInternalServerError, "Something went wrong submitting your application. Please try again."},
	}

	for _, tc := range cases {
		client := submitClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))
		w := readyWizard(t)

		_, err := w.Submit(context.Background(), client.Applications, "S1")
		require.Error(t, err)

		var subErr *SubmitError
		require.True(t, errors.As(err, &subErr), "status %d", tc.status)
		assert.Equal(t, tc.message, subErr.Message)
		assert.Equal(t, PageReview, w.Page(), "wizard stays on review so the user can retry")
	}
}

func TestSubmit_RevalidatesEarlierPages(t *testing.T) {
	calls := 0
	client := submitClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	w := readyWizard(t)
	w.Answers().FirstName = ""

	_, err := w.Submit(context.Background(), client.Applications, "S1")
	require.Error(t, err)

	var pageErr *PageValidationError
	require.True(t, errors.As(err, &pageErr))
	assert.Equal(t, PageContact, pageErr.Page)
	assert.Equal(t, 0, calls)
}

func TestSubmit_OnlyFromReviewPage(t *testing.T) {
	client := submitClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	w := New("J1", Settings{Method: MethodInApp})

	_, err := w.Submit(context.Background(), client.Applications, "S1")
	assert.Error(t, err)
}
