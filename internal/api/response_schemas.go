package api

// Declared response shapes, one JSON Schema per endpoint family. Schemas pin
// the fields callers rely on; unknown extra fields are allowed so backend
// additions do not break older clients.

const jobSchema = `{
	"type": "object",
	"required": ["id", "title", "company", "description", "location", "job_type", "is_active"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"title": {"type": "string"},
		"company": {"type": "string"},
		"description": {"type": "string"},
		"location": {"type": "string"},
		"job_type": {"type": "string"},
		"remote": {"type": "boolean"},
		"is_active": {"type": "boolean"},
		"view_count": {"type": "integer", "minimum": 0},
		"application_count": {"type": "integer", "minimum": 0},
		"requirements": {"type": "array", "items": {"type": "string"}},
		"responsibilities": {"type": "array", "items": {"type": "string"}},
		"skills": {"type": "array", "items": {"type": "string"}},
		"salary_range": {
			"type": "object",
			"properties": {
				"min": {"type": ["integer", "null"]},
				"max": {"type": ["integer", "null"]}
			}
		},
		"posted_by": {"type": "string"}
	}
}`

const jobListSchema = `{
	"type": "array",
	"items": ` + jobSchema + `
}`

const applicationSchema = `{
	"type": "object",
	"required": ["id", "job_id", "job_seeker_id", "status"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"job_id": {"type": "string", "minLength": 1},
		"job_seeker_id": {"type": "string", "minLength": 1},
		"status": {"type": "string"},
		"notes": {"type": "string"},
		"next_step": {"type": "string"},
		"rejection_reason": {"type": "string"},
		"match_score": {"type": ["integer", "null"]},
		"status_history": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["status", "timestamp"],
				"properties": {
					"status": {"type": "string"},
					"timestamp": {"type": "string"},
					"note": {"type": "string"},
					"changed_by": {"type": "string"}
				}
			}
		}
	}
}`

const applicationListSchema = `{
	"type": "array",
	"items": ` + applicationSchema + `
}`

const jobSeekerProfileSchema = `{
	"type": "object",
	"required": ["id", "user_id", "first_name", "last_name", "email"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"user_id": {"type": "string", "minLength": 1},
		"first_name": {"type": "string"},
		"last_name": {"type": "string"},
		"email": {"type": "string"},
		"skills": {"type": "array", "items": {"type": "string"}},
		"years_of_experience": {"type": "integer", "minimum": 0},
		"profile_completion": {"type": ["integer", "null"], "minimum": 0, "maximum": 100},
		"view_count": {"type": "integer", "minimum": 0}
	}
}`

const employerProfileSchema = `{
	"type": "object",
	"required": ["id", "user_id", "company_name"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"user_id": {"type": "string", "minLength": 1},
		"company_name": {"type": "string"},
		"jobs_posted": {"type": "integer", "minimum": 0},
		"active_jobs": {"type": "integer", "minimum": 0},
		"verified": {"type": "boolean"}
	}
}`

const interviewSchema = `{
	"type": "object",
	"required": ["id", "application_id", "type", "scheduled_at", "status"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"application_id": {"type": "string", "minLength": 1},
		"type": {"type": "string"},
		"scheduled_at": {"type": "string"},
		"duration_minutes": {"type": "integer", "minimum": 0},
		"status": {"type": "string"},
		"rating": {"type": ["integer", "null"], "minimum": 1, "maximum": 5}
	}
}`

const interviewListSchema = `{
	"type": "array",
	"items": ` + interviewSchema + `
}`

const recommendationListSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "job_seeker_id", "job_id", "match_score"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"job_seeker_id": {"type": "string", "minLength": 1},
			"job_id": {"type": "string", "minLength": 1},
			"match_score": {"type": "integer", "minimum": 0, "maximum": 100},
			"viewed": {"type": "boolean"},
			"dismissed": {"type": "boolean"},
			"applied": {"type": "boolean"},
			"ai_generated": {"type": "boolean"}
		}
	}
}`

const tokenBundleSchema = `{
	"type": "object",
	"required": ["access_token", "refresh_token", "user"],
	"properties": {
		"access_token": {"type": "string", "minLength": 1},
		"refresh_token": {"type": "string", "minLength": 1},
		"expires_at": {"type": "string"},
		"user": {
			"type": "object",
			"required": ["id", "email", "account_type"],
			"properties": {
				"id": {"type": "string", "minLength": 1},
				"email": {"type": "string"},
				"account_type": {"type": "string", "enum": ["job_seeker", "employer"]}
			}
		}
	}
}`

const userSchema = `{
	"type": "object",
	"required": ["id", "email", "account_type"],
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"email": {"type": "string"},
		"account_type": {"type": "string", "enum": ["job_seeker", "employer"]}
	}
}`

const jobAnalyticsSchema = `{
	"type": "object",
	"required": ["job_id", "view_count", "application_count"],
	"properties": {
		"job_id": {"type": "string", "minLength": 1},
		"view_count": {"type": "integer", "minimum": 0},
		"application_count": {"type": "integer", "minimum": 0},
		"status_counts": {"type": "object", "additionalProperties": {"type": "integer"}}
	}
}`

const employerJobStatsSchema = `{
	"type": "object",
	"required": ["user_id", "jobs_posted", "active_jobs"],
	"properties": {
		"user_id": {"type": "string", "minLength": 1},
		"jobs_posted": {"type": "integer", "minimum": 0},
		"active_jobs": {"type": "integer", "minimum": 0},
		"total_applications": {"type": "integer", "minimum": 0},
		"total_views": {"type": "integer", "minimum": 0}
	}
}`

const seekerApplicationStatsSchema = `{
	"type": "object",
	"required": ["user_id", "total"],
	"properties": {
		"user_id": {"type": "string", "minLength": 1},
		"total": {"type": "integer", "minimum": 0},
		"status_counts": {"type": "object", "additionalProperties": {"type": "integer"}},
		"interviews": {"type": "integer", "minimum": 0},
		"offers": {"type": "integer", "minimum": 0}
	}
}`

const uploadResultSchema = `{
	"type": "object",
	"required": ["file_id"],
	"properties": {
		"file_id": {"type": "string", "minLength": 1},
		"file_name": {"type": "string"},
		"size_bytes": {"type": "integer", "minimum": 0}
	}
}`
