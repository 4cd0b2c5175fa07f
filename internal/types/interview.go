package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Interview types.
const (
	InterviewPhone      = "phone"
	InterviewVideo      = "video"
	InterviewInPerson   = "in_person"
	InterviewTechnical  = "technical"
	InterviewBehavioral = "behavioral"
	InterviewPanel      = "panel"
)

// Interview statuses.
const (
	InterviewScheduled   = "scheduled"
	InterviewRescheduled = "rescheduled"
	InterviewCompleted   = "completed"
	InterviewCancelled   = "cancelled"
	InterviewNoShow      = "no_show"
)

// Interview represents a scheduled interview against an existing application.
type Interview struct {
	ID                 string     `json:"id"`
	ApplicationID      string     `json:"application_id"`
	JobID              string     `json:"job_id"`
	JobSeekerID        string     `json:"job_seeker_id"`
	EmployerID         string     `json:"employer_id"`
	Type               string     `json:"type"`
	ScheduledAt        time.Time  `json:"scheduled_at"`
	DurationMinutes    int        `json:"duration_minutes"`
	Timezone           string     `json:"timezone,omitempty"`
	Location           string     `json:"location,omitempty"`
	MeetingLink        string     `json:"meeting_link,omitempty"`
	InterviewerName    string     `json:"interviewer_name,omitempty"`
	InterviewerEmail   string     `json:"interviewer_email,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	Status             string     `json:"status"`
	Feedback           string     `json:"feedback,omitempty"`
	Rating             *int       `json:"rating,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// ScheduleInterviewRequest creates an interview for an application.
type ScheduleInterviewRequest struct {
	ApplicationID    string    `json:"application_id" validate:"required"`
	Type             string    `json:"type" validate:"required,oneof=phone video in_person technical behavioral panel"`
	ScheduledAt      time.Time `json:"scheduled_at" validate:"required"`
	DurationMinutes  int       `json:"duration_minutes" validate:"required,min=5"`
	Timezone         string    `json:"timezone,omitempty"`
	Location         string    `json:"location,omitempty"`
	MeetingLink      string    `json:"meeting_link,omitempty" validate:"omitempty,url"`
	InterviewerName  string    `json:"interviewer_name,omitempty"`
	InterviewerEmail string    `json:"interviewer_email,omitempty" validate:"omitempty,email"`
	Notes            string    `json:"notes,omitempty"`
}

// CancelInterviewRequest cancels an interview; a reason is required.
type CancelInterviewRequest struct {
	Reason string `json:"reason" validate:"required,min=1"`
}

// CompleteInterviewRequest marks an interview completed with feedback.
type CompleteInterviewRequest struct {
	Feedback string `json:"feedback" validate:"required,min=1"`
	Rating   *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// Validate validates the ScheduleInterviewRequest using the validator.
func (r *ScheduleInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CancelInterviewRequest using the validator.
func (r *CancelInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompleteInterviewRequest using the validator.
func (r *CompleteInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
