package types

import "time"

// MatchBreakdown holds the per-dimension sub-scores behind a match percentage.
type MatchBreakdown struct {
	Skills     int `json:"skills_match"`
	Location   int `json:"location_match"`
	Salary     int `json:"salary_match"`
	Experience int `json:"experience_match"`
	Education  int `json:"education_match"`
}

// Recommendation pairs a job seeker and a job with a computed match percentage.
// List endpoints return enriched records whose extra fields are not yet part of
// a stable contract; those land in Enriched rather than an untyped escape hatch.
type Recommendation struct {
	ID          string         `json:"id"`
	JobSeekerID string         `json:"job_seeker_id"`
	JobID       string         `json:"job_id"`
	MatchScore  int            `json:"match_score"`
	Reasoning   string         `json:"reasoning,omitempty"`
	Breakdown   MatchBreakdown `json:"breakdown"`
	Viewed      bool           `json:"viewed"`
	Dismissed   bool           `json:"dismissed"`
	Applied     bool           `json:"applied"`
	AIGenerated bool           `json:"ai_generated"`
	CreatedAt   time.Time      `json:"created_at"`
	Enriched    map[string]any `json:"enriched,omitempty"`
}
