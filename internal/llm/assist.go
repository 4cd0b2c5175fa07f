package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/jobboard-client/internal/types"
)

// DraftCoverLetter produces a short cover-letter draft for a job from the
// candidate's profile. The wizard offers it as a starting point; the
// candidate edits before submitting.
func DraftCoverLetter(ctx context.Context, client Client, job *types.Job, profile *types.JobSeekerProfile) (string, error) {
	if job == nil || profile == nil {
		return "", fmt.Errorf("job and profile are required")
	}
	return client.Generate(ctx, coverLetterPrompt(job, profile))
}

// RecommendationReasoning produces reasoning text for a recommendation that
// arrived without one. Callers must set the AI-generated provenance flag on
// the recommendation they attach this to.
func RecommendationReasoning(ctx context.Context, client Client, job *types.Job, rec *types.Recommendation) (string, error) {
	if job == nil || rec == nil {
		return "", fmt.Errorf("job and recommendation are required")
	}
	return client.Generate(ctx, reasoningPrompt(job, rec))
}

func coverLetterPrompt(job *types.Job, profile *types.JobSeekerProfile) string {
	var sb strings.Builder
	sb.WriteString("Write a concise three-paragraph cover letter. Plain text only, no placeholders.\n\n")
	sb.WriteString(fmt.Sprintf("Role: %s at %s (%s)\n", job.Title, job.Company, job.Location))
	if len(job.Requirements) > 0 {
		sb.WriteString(fmt.Sprintf("Requirements: %s\n", strings.Join(job.Requirements, "; ")))
	}
	sb.WriteString(fmt.Sprintf("\nCandidate: %s %s, %d years of experience\n", profile.FirstName, profile.LastName, profile.YearsOfExperience))
	if len(profile.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(profile.Skills, ", ")))
	}
	if profile.Bio != "" {
		sb.WriteString(fmt.Sprintf("Summary: %s\n", profile.Bio))
	}
	return sb.String()
}

func reasoningPrompt(job *types.Job, rec *types.Recommendation) string {
	var sb strings.Builder
	sb.WriteString("In two sentences, explain why this job matches this candidate. Plain text only.\n\n")
	sb.WriteString(fmt.Sprintf("Role: %s at %s\n", job.Title, job.Company))
	sb.WriteString(fmt.Sprintf("Overall match: %d%%\n", rec.MatchScore))
	sb.WriteString(fmt.Sprintf("Sub-scores: skills %d, location %d, salary %d, experience %d, education %d\n",
		rec.Breakdown.Skills, rec.Breakdown.Location, rec.Breakdown.Salary, rec.Breakdown.Experience, rec.Breakdown.Education))
	return sb.String()
}
