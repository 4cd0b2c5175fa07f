// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobboard-client/internal/types"
	"github.com/jonathan/jobboard-client/internal/wizard"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJob outputs a human-readable summary of a job posting.
func (p *Printer) PrintJob(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Title:    %s\n", job.Title))
	sb.WriteString(fmt.Sprintf("Company:  %s\n", job.Company))
	sb.WriteString(fmt.Sprintf("Location: %s\n", job.Location))
	sb.WriteString(fmt.Sprintf("Type:     %s\n", job.JobType))
	if job.Salary.Min != nil && job.Salary.Max != nil {
		sb.WriteString(fmt.Sprintf("Salary:   %d-%d\n", *job.Salary.Min, *job.Salary.Max))
	}
	if !job.IsActive {
		sb.WriteString("Status:   inactive\n")
	}

	if len(job.Requirements) > 0 {
		sb.WriteString("\nRequirements:\n")
		count := min(len(job.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", job.Requirements[i]))
		}
		if len(job.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(job.Requirements)-maxItemsToShow))
		}
	}

	p.printBox("JOB POSTING", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplication outputs an application with its status history, newest
// entry last.
func (p *Printer) PrintApplication(app *types.Application) {
	if app == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:      %s\n", app.JobID))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", app.Status))
	if app.MatchScore != nil {
		sb.WriteString(fmt.Sprintf("Match:    %d%%\n", *app.MatchScore))
	}

	if len(app.StatusHistory) > 0 {
		sb.WriteString("\nHistory:\n")
		for _, entry := range app.StatusHistory {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", entry.Timestamp.Format("2006-01-02"), entry.Status))
			if entry.Note != "" {
				note := entry.Note
				if len(note) > 40 {
					note = note[:37] + "..."
				}
				sb.WriteString(fmt.Sprintf("            %s\n", note))
			}
		}
	}

	p.printBox("APPLICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top recommendations with match scores and
// per-dimension breakdowns.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total recommendations: %d\n\n", len(recs)))

	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recs[i]
		label := rec.JobID
		if title, ok := rec.Enriched["job_title"].(string); ok && title != "" {
			label = title
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, label))
		sb.WriteString(fmt.Sprintf("    Match: %d%%", rec.MatchScore))
		if rec.AIGenerated {
			sb.WriteString(" (AI)")
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Skills %d · Location %d · Salary %d · Experience %d\n",
			rec.Breakdown.Skills, rec.Breakdown.Location, rec.Breakdown.Salary, rec.Breakdown.Experience))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more recommendations", len(recs)-maxItemsToShow))
	}

	p.printBox("TOP RECOMMENDATIONS", sb.String())
}

// PrintWizardProgress outputs the current wizard page and any field errors on
// it.
func (p *Printer) PrintWizardProgress(w *wizard.Wizard) {
	if w == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Page:     %d of %d — %s\n", int(w.Page()), int(wizard.PageReview), w.Page()))
	if toast := w.Toast(); toast != "" {
		sb.WriteString(fmt.Sprintf("Notice:   %s\n", toast))
	}

	if errs := w.Errors(); len(errs) > 0 {
		sb.WriteString("\nField errors:\n")
		for field, msg := range errs {
			sb.WriteString(fmt.Sprintf("  ⚠ %s: %s\n", field, msg))
		}
	}

	p.printBox("APPLICATION WIZARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfileCompletion outputs the profile completion percentage with a
// simple progress bar.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProfileCompletion(percentage int) {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	filled := percentage * 20 / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)

	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("PROFILE %d%% COMPLETE  %s", percentage, bar))
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}
