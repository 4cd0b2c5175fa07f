package api

import (
	"context"
	"io"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// JobSeekersService is the operation catalog for /api/job-seeker-profiles.
type JobSeekersService struct {
	client *Client
}

// Get fetches a job-seeker profile by profile id.
func (s *JobSeekersService) Get(ctx context.Context, id string) (*types.JobSeekerProfile, error) {
	var profile types.JobSeekerProfile
	err := s.client.do(ctx, http.MethodGet, "/job-seeker-profiles/"+id, nil, nil, "job_seeker_profile", jobSeekerProfileSchema, &profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUserID looks up the profile owned by a user. A 404 means the user has
// not created a profile yet; that is a normal state, so it returns (nil, nil)
// rather than an error. Every other failure propagates.
func (s *JobSeekersService) GetByUserID(ctx context.Context, userID string) (*types.JobSeekerProfile, error) {
	var profile types.JobSeekerProfile
	err := s.client.do(ctx, http.MethodGet, "/job-seeker-profiles/user/"+userID, nil, nil, "job_seeker_profile", jobSeekerProfileSchema, &profile)
	if IsStatus(err, http.StatusNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save upserts the profile for req.UserID: the backend creates it on first
// save and updates it afterwards.
func (s *JobSeekersService) Save(ctx context.Context, req *types.SaveJobSeekerProfileRequest) (*types.JobSeekerProfile, error) {
	existing, err := s.GetByUserID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var profile types.JobSeekerProfile
	if existing == nil {
		err = s.client.do(ctx, http.MethodPost, "/job-seeker-profiles", nil, req, "job_seeker_profile", jobSeekerProfileSchema, &profile)
	} else {
		err = s.client.do(ctx, http.MethodPut, "/job-seeker-profiles/"+existing.ID, nil, req, "job_seeker_profile", jobSeekerProfileSchema, &profile)
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UploadResume uploads a resume file for a profile and returns the stored
// file reference.
func (s *JobSeekersService) UploadResume(ctx context.Context, profileID, fileName string, file io.Reader) (*UploadResult, error) {
	return s.client.upload(ctx, "/job-seeker-profiles/"+profileID+"/resume", fileName, file, nil, "upload_result", uploadResultSchema)
}
