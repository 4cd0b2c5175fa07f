// Package dashboard aggregates the employer review view: every posting, its
// applications, and each applicant's profile. Independent fetches are issued
// in parallel and awaited together; the whole build shares one cancellation
// scope, so a caller abandoning the view aborts in-flight requests.
package dashboard

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobboard-client/internal/api"
	"github.com/jonathan/jobboard-client/internal/scoring"
	"github.com/jonathan/jobboard-client/internal/types"
)

// ApplicantRow is one application joined with its candidate profile.
type ApplicantRow struct {
	Application types.Application
	Profile     *types.JobSeekerProfile // nil when the profile no longer exists
	MatchScore  int
}

// JobRow is one posting with its applicant rows.
type JobRow struct {
	Job        types.Job
	Applicants []ApplicantRow
}

// BuildEmployer assembles the dashboard for an employer user: one job-list
// fetch, then a per-job application fan-out, then a per-application profile
// fan-out. No retries; the first failure cancels the remaining fetches and
// propagates.
func BuildEmployer(ctx context.Context, client *api.Client, employerUserID string) ([]JobRow, error) {
	jobs, err := client.Jobs.List(ctx, &api.ListJobsParams{PostedBy: employerUserID})
	if err != nil {
		return nil, err
	}

	rows := make([]JobRow, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		rows[i].Job = job
		g.Go(func() error {
			apps, err := client.Applications.List(ctx, &api.ListApplicationsParams{JobID: job.ID})
			if err != nil {
				return err
			}
			rows[i].Applicants = make([]ApplicantRow, len(apps))
			for j, app := range apps {
				rows[i].Applicants[j].Application = app
				rows[i].Applicants[j].MatchScore = scoring.MatchScore(&apps[j])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	g, ctx = errgroup.WithContext(ctx)
	for i := range rows {
		for j := range rows[i].Applicants {
			row := &rows[i].Applicants[j]
			g.Go(func() error {
				profile, err := client.JobSeekers.Get(ctx, row.Application.JobSeekerID)
				if api.IsStatus(err, http.StatusNotFound) {
					// A deleted profile leaves the row without candidate detail.
					return nil
				}
				if err != nil {
					return err
				}
				row.Profile = profile
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
