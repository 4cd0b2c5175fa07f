package types

// JobAnalytics summarizes activity on a single posting.
type JobAnalytics struct {
	JobID            string         `json:"job_id"`
	ViewCount        int            `json:"view_count"`
	ApplicationCount int            `json:"application_count"`
	StatusCounts     map[string]int `json:"status_counts,omitempty"`
}

// EmployerJobStats summarizes an employer's postings.
type EmployerJobStats struct {
	UserID            string `json:"user_id"`
	JobsPosted        int    `json:"jobs_posted"`
	ActiveJobs        int    `json:"active_jobs"`
	TotalApplications int    `json:"total_applications"`
	TotalViews        int    `json:"total_views"`
}

// SeekerApplicationStats summarizes a job seeker's applications by status.
type SeekerApplicationStats struct {
	UserID       string         `json:"user_id"`
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"status_counts,omitempty"`
	Interviews   int            `json:"interviews"`
	Offers       int            `json:"offers"`
}
