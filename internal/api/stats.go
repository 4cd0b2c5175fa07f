package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// StatsService is the operation catalog for the analytics endpoints.
type StatsService struct {
	client *Client
}

// JobAnalytics fetches activity counters for one posting.
func (s *StatsService) JobAnalytics(ctx context.Context, jobID string) (*types.JobAnalytics, error) {
	var stats types.JobAnalytics
	err := s.client.do(ctx, http.MethodGet, "/jobs/"+jobID+"/analytics", nil, nil, "job_analytics", jobAnalyticsSchema, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// EmployerJobStats fetches posting summaries for an employer user.
func (s *StatsService) EmployerJobStats(ctx context.Context, userID string) (*types.EmployerJobStats, error) {
	var stats types.EmployerJobStats
	err := s.client.do(ctx, http.MethodGet, "/employer-profiles/user/"+userID+"/job-stats", nil, nil, "employer_job_stats", employerJobStatsSchema, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// SeekerApplicationStats fetches application summaries for a job-seeker user.
func (s *StatsService) SeekerApplicationStats(ctx context.Context, userID string) (*types.SeekerApplicationStats, error) {
	var stats types.SeekerApplicationStats
	err := s.client.do(ctx, http.MethodGet, "/job-seeker-profiles/user/"+userID+"/application-stats", nil, nil, "seeker_application_stats", seekerApplicationStatsSchema, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
