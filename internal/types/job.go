// Package types provides type definitions for the entities exchanged with the
// job-board backend and the request payloads this client sends to it.
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Job types accepted by the backend.
const (
	JobTypeFullTime   = "full_time"
	JobTypePartTime   = "part_time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
	JobTypeTemporary  = "temporary"
)

// SalaryRange holds an optional min/max salary band.
type SalaryRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Job represents a job posting as returned by the backend.
type Job struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Company          string      `json:"company"`
	Description      string      `json:"description"`
	Requirements     []string    `json:"requirements,omitempty"`
	Responsibilities []string    `json:"responsibilities,omitempty"`
	Location         string      `json:"location"`
	JobType          string      `json:"job_type"`
	Remote           bool        `json:"remote"`
	Salary           SalaryRange `json:"salary_range"`
	ExperienceLevel  string      `json:"experience_level,omitempty"`
	EducationLevel   string      `json:"education_level,omitempty"`
	Industry         string      `json:"industry,omitempty"`
	Benefits         []string    `json:"benefits,omitempty"`
	Skills           []string    `json:"skills,omitempty"`
	Deadline         *time.Time  `json:"application_deadline,omitempty"`
	IsActive         bool        `json:"is_active"`
	ViewCount        int         `json:"view_count"`
	ApplicationCount int         `json:"application_count"`
	PostedBy         string      `json:"posted_by"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// CreateJobRequest is the payload for posting a new job.
type CreateJobRequest struct {
	Title            string      `json:"title" validate:"required,min=1"`
	Company          string      `json:"company" validate:"required,min=1"`
	Description      string      `json:"description" validate:"required,min=1"`
	Requirements     []string    `json:"requirements,omitempty"`
	Responsibilities []string    `json:"responsibilities,omitempty"`
	Location         string      `json:"location" validate:"required"`
	JobType          string      `json:"job_type" validate:"required,oneof=full_time part_time contract internship temporary"`
	Remote           bool        `json:"remote"`
	Salary           SalaryRange `json:"salary_range"`
	ExperienceLevel  string      `json:"experience_level,omitempty"`
	EducationLevel   string      `json:"education_level,omitempty"`
	Industry         string      `json:"industry,omitempty"`
	Benefits         []string    `json:"benefits,omitempty"`
	Skills           []string    `json:"skills,omitempty"`
	Deadline         *time.Time  `json:"application_deadline,omitempty"`
}

// UpdateJobRequest is a partial update; nil fields are left untouched by the backend.
type UpdateJobRequest struct {
	Title            *string      `json:"title,omitempty"`
	Description      *string      `json:"description,omitempty"`
	Requirements     []string     `json:"requirements,omitempty"`
	Responsibilities []string     `json:"responsibilities,omitempty"`
	Location         *string      `json:"location,omitempty"`
	JobType          *string      `json:"job_type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship temporary"`
	Remote           *bool        `json:"remote,omitempty"`
	Salary           *SalaryRange `json:"salary_range,omitempty"`
	Benefits         []string     `json:"benefits,omitempty"`
	Skills           []string     `json:"skills,omitempty"`
	Deadline         *time.Time   `json:"application_deadline,omitempty"`
	IsActive         *bool        `json:"is_active,omitempty"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
