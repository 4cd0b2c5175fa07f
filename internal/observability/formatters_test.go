package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobboard-client/internal/types"
	"github.com/jonathan/jobboard-client/internal/wizard"
)

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	minSalary, maxSalary := 70000, 95000
	p.PrintJob(&types.Job{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Berlin",
		JobType:      types.JobTypeFullTime,
		IsActive:     true,
		Salary:       types.SalaryRange{Min: &minSalary, Max: &maxSalary},
		Requirements: []string{"Go", "Postgres", "Kubernetes", "Kafka", "Terraform", "gRPC"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB POSTING")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "70000-95000")
	assert.Contains(t, out, "... and 1 more")
	assert.NotContains(t, out, "inactive")
}

func TestPrintJob_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJob(nil)
	assert.Empty(t, buf.String())
}

func TestPrintApplication_ShowsHistory(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := 84
	p.PrintApplication(&types.Application{
		JobID:      "job-1",
		Status:     types.StatusInterviewScheduled,
		MatchScore: &score,
		StatusHistory: []types.StatusHistoryEntry{
			{Status: types.StatusUnreviewed, Timestamp: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
			{Status: types.StatusInterviewScheduled, Timestamp: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), Note: "Phone screen scheduled"},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Match:    84%")
	assert.Contains(t, out, "2026-08-01")
	assert.Contains(t, out, "Phone screen")
}

func TestPrintRecommendations_PrefersEnrichedTitle(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.Recommendation{
		{
			JobID:       "job-1",
			MatchScore:  91,
			AIGenerated: true,
			Breakdown:   types.MatchBreakdown{Skills: 95, Location: 80, Salary: 85, Experience: 90},
			Enriched:    map[string]any{"job_title": "Platform Engineer"},
		},
		{JobID: "job-2", MatchScore: 73},
	})

	out := buf.String()
	assert.Contains(t, out, "Platform Engineer")
	assert.Contains(t, out, "91% (AI)")
	assert.Contains(t, out, "job-2")
}

func TestPrintWizardProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	w := wizard.New("job-1", wizard.Settings{})
	w.Next() // empty contact page, stays and collects errors

	p.PrintWizardProgress(w)

	out := buf.String()
	assert.Contains(t, out, "APPLICATION WIZARD")
	assert.Contains(t, out, "Page:     1 of 5")
	assert.Contains(t, out, "fields need attention")
	assert.Contains(t, out, "email")
}

func TestPrintProfileCompletion_ClampsAndDraws(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfileCompletion(150)
	assert.Contains(t, buf.String(), "PROFILE 100% COMPLETE")

	buf.Reset()
	NewPrinter(&buf).PrintProfileCompletion(50)
	assert.Contains(t, buf.String(), "PROFILE 50% COMPLETE")
	assert.Contains(t, buf.String(), "██████████░░░░░░░░░░")
}
