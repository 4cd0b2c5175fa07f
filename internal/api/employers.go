package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// EmployersService is the operation catalog for /api/employer-profiles.
type EmployersService struct {
	client *Client
}

// Get fetches an employer profile by profile id.
func (s *EmployersService) Get(ctx context.Context, id string) (*types.EmployerProfile, error) {
	var profile types.EmployerProfile
	err := s.client.do(ctx, http.MethodGet, "/employer-profiles/"+id, nil, nil, "employer_profile", employerProfileSchema, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID looks up the profile owned by a user, treating 404 as "no
// profile yet" and returning (nil, nil). Every other failure propagates.
func (s *EmployersService) GetByUserID(ctx context.Context, userID string) (*types.EmployerProfile, error) {
	var profile types.EmployerProfile
	err := s.client.do(ctx, http.MethodGet, "/employer-profiles/user/"+userID, nil, nil, "employer_profile", employerProfileSchema, &profile)
	if IsStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save upserts the profile for req.UserID, creating it on first save.
func (s *EmployersService) Save(ctx context.Context, req *types.SaveEmployerProfileRequest) (*types.EmployerProfile, error) {
	existing, err := s.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var profile types.EmployerProfile
	if existing == nil {
		err = s.client.do(ctx, http.MethodPost, "/employer-profiles", nil, req, "employer_profile", employerProfileSchema, &profile)
	} else {
		err = s.client.do(ctx, http.MethodPut, "/employer-profiles/"+existing.ID, nil, req, "employer_profile", employerProfileSchema, &profile)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
