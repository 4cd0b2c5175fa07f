package wizard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/types"
)

// ErrNoProfile is returned by Submit when no job-seeker profile exists yet.
// It is a terminal local error; no network call is made.
var ErrNoProfile = errors.New("a job-seeker profile is required before applying — save your profile first")

// PageValidationError reports that re-validation before submit found an
// invalid page.
type PageValidationError struct {
	Page   Page
	Fields map[string]string
}

func (e *PageValidationError) Error() string {
	return fmt.Sprintf("page %s has %d invalid field(s)", e.Page, len(e.Fields))
}

// SubmitError wraps a failed create call with the user-facing message the
// review page shows. The wizard stays on the review page so the user can retry.
type SubmitError struct {
	Message string
	Cause   error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("submit failed: %s: %v", e.Message, e.Cause)
}

func (e *SubmitError) Unwrap() error {
	return e.Cause
}

// Submit posts the application. Only reachable from the review page. The
// profile id precondition is checked locally, every page is re-validated, the
// free-text answers are combined into the notes blob, and failures keep the
// wizard on the review page.
func (w *Wizard) Submit(ctx context.Context, applications *api.ApplicationsService, profileID string) (*types.Application, error) {
	if w.page != PageReview {
		return nil, fmt.Errorf("submit is only available from the review page, not %s", w.page)
	}
	if profileID == "" {
		return nil, ErrNoProfile
	}
	if page, fields := w.ValidateAll(); page != 0 {
		return nil, &PageValidationError{Page: page, Fields: fields}
	}

	app, err := applications.Create(ctx, &types.CreateApplicationRequest{
		JobID:       w.jobID,
		JobSeekerID: profileID,
		Notes:       BuildNotes(&w.answers),
	})
	if err != nil {
		return nil, &SubmitError{Message: submitMessage(err), Cause: err}
	}
	return app, nil
}

// BuildNotes combines the cover letter and the screening question/answer
// pairs into the single notes blob the backend stores.
func BuildNotes(a *Answers) string {
	var sb strings.Builder
	if cover := strings.TrimSpace(a.CoverLetter); cover != "" {
		sb.WriteString(cover)
	}
	for _, qa := range a.Screening {
		if strings.TrimSpace(qa.Answer) == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(fmt.Sprintf("Q: %s\nA: %s", qa.Question, qa.Answer))
	}
	return sb.String()
}

func submitMessage(err error) string {
	switch {
	case api.IsStatus(err, http.StatusForbidden):
		return "You must log in to apply."
	case api.IsStatus(err, http.StatusNotFound):
		return "The job or your profile could not be found."
	case api.IsStatus(err, http.StatusConflict):
		return "You have already applied to this job."
	default:
		return "Something went wrong submitting your application. Please try again."
	}
}
