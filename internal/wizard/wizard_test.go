package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobboard-client/internal/types"
)

func inAppSettings() Settings {
	return Settings{
		ScreeningQuestions: []string{"Why this role?"},
		ShowDemographics:   true,
		Method:             MethodInApp,
	}
}

func fillContact(a *Answers) {
	a.FirstName = "Dana"
	a.LastName = "Kim"
	a.Email = "dana@example.com"
	a.Phone = "+49 30 1234567"
	a.Location = "Berlin"
	a.ZipCode = "10115"
}

func TestNext_EmptyContactPageStaysWithSixErrors(t *testing.T) {
	w := New("J1", inAppSettings())

	advanced := w.Next()

	assert.False(t, advanced)
	assert.Equal(t, PageContact, w.Page())
	assert.Len(t, w.Errors(), 6)
	for _, field := range []string{"first_name", "last_name", "email", "phone", "location", "zip_code"} {
		assert.Contains(t, w.Errors(), field)
	}
	assert.Equal(t, "6 fields need attention", w.Toast())
}

func TestNext_ValidContactPageAdvancesAndClears(t *testing.T) {
	w := New("J1", inAppSettings())
	w.Next() // populate errors first
	fillContact(w.Answers())

	advanced := w.Next()

	assert.True(t, advanced)
	assert.Equal(t, PageExperience, w.Page())
	assert.Empty(t, w.Errors())
	assert.Empty(t, w.Toast())
}

func TestNext_BadEmailShapeRejected(t *testing.T) {
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	w.Answers().Email = "not-an-email"

	assert.False(t, w.Next())
	assert.Equal(t, "Email address looks invalid", w.Errors()["email"])
	assert.Equal(t, "1 field needs attention", w.Toast())
}

func TestNext_ExperienceRuleHonorsNoExperienceFlag(t *testing.T) {
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	require.True(t, w.Next())

	// No entries, flag unset: blocked.
	assert.False(t, w.Next())
	assert.Contains(t, w.Errors(), "experience")

	// Entries without a role do not count.
	w.Answers().Experience = []types.ExperienceEntry{{Company: "Acme"}}
	assert.False(t, w.Next())

	// A role unblocks.
	w.Answers().Experience = []types.ExperienceEntry{{Role: "Engineer", Company: "Acme"}}
	assert.True(t, w.Next())
	assert.Equal(t, PageQuestions, w.Page())
}

func TestNext_NoExperienceFlagSkipsEntryRequirement(t *testing.T) {
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	require.True(t, w.Next())

	w.Answers().NoExperience = true
	assert.True(t, w.Next())
	assert.Equal(t, PageQuestions, w.Page())
}

func TestNext_DemographicsAutoSkippedWhenDisabled(t *testing.T) {
	settings := inAppSettings()
	settings.ShowDemographics = false
	w := New("J1", settings)
	fillContact(w.Answers())
	w.Answers().NoExperience = true
	require.True(t, w.Next())
	require.True(t, w.Next())

	// Questions page has no hard validation; advancing lands on review,
	// never on demographics.
	assert.True(t, w.Next())
	assert.Equal(t, PageReview, w.Page())
}

func TestNext_DemographicsShownWhenEnabled(t *testing.T) {
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	w.Answers().NoExperience = true
	require.True(t, w.Next())
	require.True(t, w.Next())

	assert.True(t, w.Next())
	assert.Equal(t, PageDemographics, w.Page())
	assert.True(t, w.Next())
	assert.Equal(t, PageReview, w.Page())
}

func TestPrevious_UnconditionalAndClearsErrors(t *testing.T) {
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	require.True(t, w.Next())

	// Fail on the experience page, then go back: errors must be discarded.
	require.False(t, w.Next())
	require.NotEmpty(t, w.Errors())

	w.Previous()
	assert.Equal(t, PageContact, w.Page())
	assert.Empty(t, w.Errors())
	assert.Empty(t, w.Toast())

	// Previous on the first page is a no-op.
	w.Previous()
	assert.Equal(t, PageContact, w.Page())
}

func TestPrevious_SkipsDisabledDemographicsInReverse(t *testing.T) {
	settings := inAppSettings()
	settings.ShowDemographics = false
	w := New("J1", settings)
	fillContact(w.Answers())
	w.Answers().NoExperience = true
	require.True(t, w.Next())
	require.True(t, w.Next())
	require.True(t, w.Next())
	require.Equal(t, PageReview, w.Page())

	w.Previous()
	assert.Equal(t, PageQuestions, w.Page())
}

func TestNext_ReviewRequiresTermsAgreement(t *testing.T) {
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	w.Answers().NoExperience = true
	for w.Page() != PageReview {
		require.True(t, w.Next())
	}

	_, errs := w.ValidateAll()
	assert.Contains(t, errs, "agree_terms")

	w.Answers().AgreeTerms = true
	page, errs := w.ValidateAll()
	assert.Zero(t, page)
	assert.Empty(t, errs)
}

func TestValidateAll_CatchesStalePriorPage(t *testing.T) {
	// Reach the review page legitimately, then blank a page-1 field. Single
	// page navigation would no longer notice; full validation must.
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	w.Answers().NoExperience = true
	w.Answers().AgreeTerms = true
	for w.Page() != PageReview {
		require.True(t, w.Next())
	}

	w.Answers().Email = ""
	page, errs := w.ValidateAll()
	assert.Equal(t, PageContact, page)
	assert.Contains(t, errs, "email")
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	w := New("J1", inAppSettings())
	fillContact(w.Answers())
	w.Answers().NoExperience = true
	require.True(t, w.Next())
	require.True(t, w.Next())

	restored := Restore(w.Snapshot())

	assert.Equal(t, "J1", restored.JobID())
	assert.Equal(t, PageQuestions, restored.Page())
	assert.Equal(t, "Dana", restored.Answers().FirstName)
}

func TestRestore_ReappliesDemographicsSkip(t *testing.T) {
	snap := Snapshot{
		JobID:   "J1",
		Page:    PageDemographics,
		Settings: Settings{ShowDemographics: false, Method: MethodInApp},
	}

	restored := Restore(snap)
	assert.Equal(t, PageReview, restored.Page())
}

func TestBuildNotes_CombinesCoverLetterAndScreening(t *testing.T) {
	a := &Answers{
		CoverLetter: "I care about this work.",
		Screening: []ScreeningAnswer{
			{Question: "Why this role?", Answer: "Because distributed systems."},
			{Question: "Visa status?", Answer: ""},
		},
	}

	notes := BuildNotes(a)
	assert.Equal(t, "I care about this work.\n\nQ: Why this role?\nA: Because distributed systems.", notes)
}

func TestBuildNotes_EmptyAnswersYieldEmptyBlob(t *testing.T) {
	assert.Empty(t, BuildNotes(&Answers{}))
}
