package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// InterviewsService is the operation catalog for /api/interviews.
type InterviewsService struct {
	client *Client
}

// List fetches interviews matching params.
func (s *InterviewsService) List(ctx context.Context, params *ListInterviewsParams) ([]types.Interview, error) {
	var interviews []types.Interview
	err := s.client.do(ctx, http.MethodGet, "/interviews", params.query(), nil, "interview_list", interviewListSchema, &interviews)
	if err != nil {
		return nil, err
	}
	return interviews, nil
}

// Get fetches a single interview by id.
func (s *InterviewsService) Get(ctx context.Context, id string) (*types.Interview, error) {
	var interview types.Interview
	err := s.client.do(ctx, http.MethodGet, "/interviews/"+id, nil, nil, "interview", interviewSchema, &interview)
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// Schedule creates an interview against an existing application.
func (s *InterviewsService) Schedule(ctx context.Context, req *types.ScheduleInterviewRequest) (*types.Interview, error) {
	var interview types.Interview
	err := s.client.do(ctx, http.MethodPost, "/interviews", nil, req, "interview", interviewSchema, &interview)
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// Cancel cancels an interview; the backend requires a reason.
func (s *InterviewsService) Cancel(ctx context.Context, id string, req *types.CancelInterviewRequest) (*types.Interview, error) {
	var interview types.Interview
	err := s.client.do(ctx, http.MethodPost, "/interviews/"+id+"/cancel", nil, req, "interview", interviewSchema, &interview)
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// Complete marks an interview completed; feedback is required.
func (s *InterviewsService) Complete(ctx context.Context, id string, req *types.CompleteInterviewRequest) (*types.Interview, error) {
	var interview types.Interview
	err := s.client.do(ctx, http.MethodPost, "/interviews/"+id+"/complete", nil, req, "interview", interviewSchema, &interview)
	if err != nil {
		return nil, err
	}
	return &interview, nil
}
