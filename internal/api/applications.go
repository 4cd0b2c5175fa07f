package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// Default next-step texts used by the status-transition helpers.
const (
	nextStepRejected      = "No further action required"
	nextStepOfferExtended = "Awaiting candidate response"
	nextStepAccepted      = "Prepare onboarding"
)

// ApplicationsService is the operation catalog for /api/applications.
type ApplicationsService struct {
	client *Client
}

// List fetches applications matching params.
func (s *ApplicationsService) List(ctx context.Context, params *ListApplicationsParams) ([]types.Application, error) {
	var apps []types.Application
	err := s.client.do(ctx, http.MethodGet, "/applications", params.query(), nil, "application_list", applicationListSchema, &apps)
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Get fetches a single application by id.
func (s *ApplicationsService) Get(ctx context.Context, id string) (*types.Application, error) {
	var app types.Application
	err := s.client.do(ctx, http.MethodGet, "/applications/"+id, nil, nil, "application", applicationSchema, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create submits a new application. The backend enforces one application per
// (job, job seeker) pair and answers 409 on a duplicate.
func (s *ApplicationsService) Create(ctx context.Context, req *types.CreateApplicationRequest) (*types.Application, error) {
	var app types.Application
	err := s.client.do(ctx, http.MethodPost, "/applications", nil, req, "application", applicationSchema, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus transitions an application's status. The backend appends to the
// status history; prior entries are never overwritten.
func (s *ApplicationsService) UpdateStatus(ctx context.Context, id string, req *types.UpdateApplicationStatusRequest) (*types.Application, error) {
	var app types.Application
	err := s.client.do(ctx, http.MethodPut, "/applications/"+id+"/status", nil, req, "application", applicationSchema, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Reject is sugar over UpdateStatus with a fixed status and default next step.
// It produces the identical wire payload to calling UpdateStatus directly.
func (s *ApplicationsService) Reject(ctx context.Context, id, reason string) (*types.Application, error) {
	return s.UpdateStatus(ctx, id, &types.UpdateApplicationStatusRequest{
		Status:          types.StatusRejected,
		NextStep:        nextStepRejected,
		RejectionReason: reason,
	})
}

// ExtendOffer is sugar over UpdateStatus for the offer_extended transition.
func (s *ApplicationsService) ExtendOffer(ctx context.Context, id string) (*types.Application, error) {
	return s.UpdateStatus(ctx, id, &types.UpdateApplicationStatusRequest{
		Status:   types.StatusOfferExtended,
		NextStep: nextStepOfferExtended,
	})
}

// Accept is sugar over UpdateStatus for the accepted transition.
func (s *ApplicationsService) Accept(ctx context.Context, id string) (*types.Application, error) {
	return s.UpdateStatus(ctx, id, &types.UpdateApplicationStatusRequest{
		Status:   types.StatusAccepted,
		NextStep: nextStepAccepted,
	})
}
