package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// JobsService is the operation catalog for /api/jobs.
type JobsService struct {
	client *Client
}

// List fetches job postings matching params.
func (s *JobsService) List(ctx context.Context, params *ListJobsParams) ([]types.Job, error) {
	var jobs []types.Job
	err := s.client.do(ctx, http.MethodGet, "/jobs", params.query(), nil, "job_list", jobListSchema, &jobs)
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Get fetches a single job by id.
func (s *JobsService) Get(ctx context.Context, id string) (*types.Job, error) {
	var job types.Job
	err := s.client.do(ctx, http.MethodGet, "/jobs/"+id, nil, nil, "job", jobSchema, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Create posts a new job.
func (s *JobsService) Create(ctx context.Context, req *types.CreateJobRequest) (*types.Job, error) {
	var job types.Job
	err := s.client.do(ctx, http.MethodPost, "/jobs", nil, req, "job", jobSchema, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update applies a partial update to a job.
func (s *JobsService) Update(ctx context.Context, id string, req *types.UpdateJobRequest) (*types.Job, error) {
	var job types.Job
	err := s.client.do(ctx, http.MethodPut, "/jobs/"+id, nil, req, "job", jobSchema, &job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Deactivate soft-disables a posting via the activity flag. The default
// lifecycle never hard-deletes a job.
func (s *JobsService) Deactivate(ctx context.Context, id string) (*types.Job, error) {
	inactive := false
	return s.Update(ctx, id, &types.UpdateJobRequest{IsActive: &inactive})
}

// Delete hard-deletes a posting. Only used by cleanup tooling.
func (s *JobsService) Delete(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/jobs/"+id, nil, nil, "", "", nil)
}
