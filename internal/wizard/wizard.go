// Package wizard implements the five-page application submission flow: a
// linear state machine that accumulates answers, validates the active page
// before advancing, skips the demographics page when a job's apply settings
// disable it, and assembles the final application payload on submit.
package wizard

import (
	"fmt"

	"github.com/jonathan/jobboard-client/internal/types"
)

// Page identifies one of the five wizard pages.
type Page int

// Wizard pages in order.
const (
	PageContact Page = iota + 1
	PageExperience
	PageQuestions
	PageDemographics
	PageReview
)

// String returns a short page label for progress output.
func (p Page) String() string {
	switch p {
	case PageContact:
		return "contact"
	case PageExperience:
		return "experience"
	case PageQuestions:
		return "questions"
	case PageDemographics:
		return "demographics"
	case PageReview:
		return "review"
	default:
		return fmt.Sprintf("page(%d)", int(p))
	}
}

// ApplyMethod selects how a job accepts applications. The method is decided
// before the wizard is entered; only MethodInApp runs the wizard at all.
type ApplyMethod string

// Apply methods.
const (
	MethodInApp       ApplyMethod = "in_app"
	MethodExternalURL ApplyMethod = "external_url"
	MethodEmail       ApplyMethod = "email"
)

// Settings is the externally supplied per-job apply configuration.
type Settings struct {
	ScreeningQuestions  []string    `json:"screening_questions,omitempty"`
	CoverLetterRequired bool        `json:"cover_letter_required"`
	ShowDemographics    bool        `json:"show_demographics"`
	Method              ApplyMethod `json:"method"`
	ExternalURL         string      `json:"external_url,omitempty"`
	ContactEmail        string      `json:"contact_email,omitempty"`
}

// ScreeningAnswer pairs a screening question with the candidate's answer.
type ScreeningAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Answers is the single record accumulating everything entered so far.
type Answers struct {
	FirstName    string                  `json:"first_name"`
	LastName     string                  `json:"last_name"`
	Email        string                  `json:"email"`
	Phone        string                  `json:"phone"`
	Location     string                  `json:"location"`
	ZipCode      string                  `json:"zip_code"`
	NoExperience bool                    `json:"no_experience"`
	Experience   []types.ExperienceEntry `json:"experience,omitempty"`
	ResumeFileID string                  `json:"resume_file_id,omitempty"`
	CoverLetter  string                  `json:"cover_letter,omitempty"`
	Screening    []ScreeningAnswer       `json:"screening,omitempty"`
	Demographics map[string]string       `json:"demographics,omitempty"`
	AgreeTerms   bool                    `json:"agree_terms"`
}

// Wizard is the page state machine. Validation errors are retained only for
// the active page; leaving a page discards them. Submit re-validates every
// page, so an invalid earlier page cannot slip through.
type Wizard struct {
	jobID    string
	settings Settings
	page     Page
	answers  Answers
	errors   map[string]string
	toast    string
}

// New starts the wizard on the contact page.
func New(jobID string, settings Settings) *Wizard {
	return &Wizard{
		jobID:    jobID,
		settings: settings,
		page:     PageContact,
		errors:   map[string]string{},
	}
}

// JobID returns the job this wizard applies to.
func (w *Wizard) JobID() string {
	return w.jobID
}

// Settings returns the per-job apply configuration.
func (w *Wizard) Settings() Settings {
	return w.settings
}

// Page returns the active page.
func (w *Wizard) Page() Page {
	return w.page
}

// Answers returns the accumulated answer record for mutation by the form layer.
func (w *Wizard) Answers() *Answers {
	return &w.answers
}

// Errors returns the field errors for the active page.
func (w *Wizard) Errors() map[string]string {
	return w.errors
}

// Toast returns the transient validation summary, or "" when none is active.
func (w *Wizard) Toast() string {
	return w.toast
}

// Next validates the active page. On failure it populates the error map and
// the toast and stays put; on success it advances, clearing both. Advancing
// onto the demographics page when the settings disable it skips straight to
// review without user action.
func (w *Wizard) Next() bool {
	if w.page >= PageReview {
		return false
	}

	errs := validatePage(w.page, &w.answers, w.settings)
	if len(errs) > 0 {
		w.errors = errs
		w.toast = toastFor(len(errs))
		return false
	}

	w.errors = map[string]string{}
	w.toast = ""
	w.page++
	if w.page == PageDemographics && !w.settings.ShowDemographics {
		w.page = PageReview
	}
	return true
}

// Previous moves back one page unconditionally, clearing errors and toast.
// The demographics page is skipped in reverse as well when disabled.
func (w *Wizard) Previous() {
	if w.page <= PageContact {
		return
	}
	w.errors = map[string]string{}
	w.toast = ""
	w.page--
	if w.page == PageDemographics && !w.settings.ShowDemographics {
		w.page = PageQuestions
	}
}

// ValidateAll runs the full rule table and returns the first failing page and
// its field errors, or (0, nil) when every page passes.
func (w *Wizard) ValidateAll() (Page, map[string]string) {
	for page := PageContact; page <= PageReview; page++ {
		if page == PageDemographics && !w.settings.ShowDemographics {
			continue
		}
		if errs := validatePage(page, &w.answers, w.settings); len(errs) > 0 {
			return page, errs
		}
	}
	return 0, nil
}

func toastFor(count int) string {
	if count == 1 {
		return "1 field needs attention"
	}
	return fmt.Sprintf("%d fields need attention", count)
}

// Snapshot is the serializable wizard state used for draft persistence.
type Snapshot struct {
	JobID    string   `json:"job_id"`
	Page     Page     `json:"page"`
	Answers  Answers  `json:"answers"`
	Settings Settings `json:"settings"`
}

// Snapshot captures the current state for draft storage.
func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{
		JobID:    w.jobID,
		Page:     w.page,
		Answers:  w.answers,
		Settings: w.settings,
	}
}

// Restore rebuilds a wizard from a stored draft. The active page is clamped
// into range and the demographics skip is re-applied in case the job's apply
// settings changed since the draft was saved.
func Restore(snap Snapshot) *Wizard {
	w := New(snap.JobID, snap.Settings)
	w.answers = snap.Answers
	if snap.Page >= PageContact && snap.Page <= PageReview {
		w.page = snap.Page
	}
	if w.page == PageDemographics && !w.settings.ShowDemographics {
		w.page = PageReview
	}
	return w
}
