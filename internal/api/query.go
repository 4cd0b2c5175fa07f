package api

import (
	"net/url"
	"strconv"
)

// queryBuilder accumulates url.Values with the backend's conventions:
// pagination as skip/limit, booleans as true/false, list-valued filters as
// repeated keys.
type queryBuilder struct {
	values url.Values
}

func newQuery() *queryBuilder {
	return &queryBuilder{values: url.Values{}}
}

func (q *queryBuilder) str(key, val string) *queryBuilder {
	if val != "" {
		q.values.Set(key, val)
	}
	return q
}

func (q *queryBuilder) num(key string, val int) *queryBuilder {
	if val > 0 {
		q.values.Set(key, strconv.Itoa(val))
	}
	return q
}

func (q *queryBuilder) boolPtr(key string, val *bool) *queryBuilder {
	if val != nil {
		q.values.Set(key, strconv.FormatBool(*val))
	}
	return q
}

func (q *queryBuilder) list(key string, vals []string) *queryBuilder {
	for _, v := range vals {
		q.values.Add(key, v)
	}
	return q
}

// ListJobsParams filters the jobs list endpoint.
type ListJobsParams struct {
	Skip     int
	Limit    int
	IsActive *bool
	PostedBy string
	Location string
	JobType  string
	Remote   *bool
	Industry string
	Skills   []string
	Search   string
}

func (p *ListJobsParams) query() url.Values {
	if p == nil {
		return nil
	}
	return newQuery().
		num("skip", p.Skip).
		num("limit", p.Limit).
		boolPtr("is_active", p.IsActive).
		str("posted_by", p.PostedBy).
		str("location", p.Location).
		str("job_type", p.JobType).
		boolPtr("remote", p.Remote).
		str("industry", p.Industry).
		list("skills", p.Skills).
		str("search", p.Search).
		values
}

// ListApplicationsParams filters the applications list endpoint.
type ListApplicationsParams struct {
	Skip        int
	Limit       int
	JobID       string
	JobSeekerID string
	Status      string
}

func (p *ListApplicationsParams) query() url.Values {
	if p == nil {
		return nil
	}
	return newQuery().
		num("skip", p.Skip).
		num("limit", p.Limit).
		str("job_id", p.JobID).
		str("job_seeker_id", p.JobSeekerID).
		str("status", p.Status).
		values
}

// ListInterviewsParams filters the interviews list endpoint.
type ListInterviewsParams struct {
	Skip          int
	Limit         int
	ApplicationID string
	JobSeekerID   string
	EmployerID    string
	Status        string
}

func (p *ListInterviewsParams) query() url.Values {
	if p == nil {
		return nil
	}
	return newQuery().
		num("skip", p.Skip).
		num("limit", p.Limit).
		str("application_id", p.ApplicationID).
		str("job_seeker_id", p.JobSeekerID).
		str("employer_id", p.EmployerID).
		str("status", p.Status).
		values
}

// ListRecommendationsParams filters the recommendations list endpoint.
type ListRecommendationsParams struct {
	Skip        int
	Limit       int
	JobSeekerID string
	Dismissed   *bool
}

func (p *ListRecommendationsParams) query() url.Values {
	if p == nil {
		return nil
	}
	return newQuery().
		num("skip", p.Skip).
		num("limit", p.Limit).
		str("job_seeker_id", p.JobSeekerID).
		boolPtr("dismissed", p.Dismissed).
		values
}
