package api

import (
	"context"
	"net/http"

	"github.com/jonathan/jobboard-client/internal/types"
)

// RecommendationsService is the operation catalog for /api/recommendations.
type RecommendationsService struct {
	client *Client
}

// List fetches recommendations matching params.
func (s *RecommendationsService) List(ctx context.Context, params *ListRecommendationsParams) ([]types.Recommendation, error) {
	var recs []types.Recommendation
	err := s.client.do(ctx, http.MethodGet, "/recommendations", params.query(), nil, "recommendation_list", recommendationListSchema, &recs)
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// MarkViewed flags a recommendation as seen by the candidate.
func (s *RecommendationsService) MarkViewed(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodPost, "/recommendations/"+id+"/viewed", nil, nil, "", "", nil)
}

// Dismiss hides a recommendation from the candidate's feed.
func (s *RecommendationsService) Dismiss(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodPost, "/recommendations/"+id+"/dismiss", nil, nil, "", "", nil)
}
