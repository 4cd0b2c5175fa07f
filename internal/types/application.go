package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Application statuses. The backend accepts these as an open string enum;
// status-history entries may carry additional states from older snapshots.
const (
	StatusUnreviewed         = "unreviewed"
	StatusReviewed           = "reviewed"
	StatusUnderReview        = "under_review"
	StatusShortlisted        = "shortlisted"
	StatusInterviewScheduled = "interview_scheduled"
	StatusOfferExtended      = "offer_extended"
	StatusAccepted           = "accepted"
	StatusRejected           = "rejected"
)

// StatusHistoryEntry is one record in an application's append-only status log.
type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	ChangedBy string    `json:"changed_by,omitempty"`
}

// Application represents a candidate's submission against one job posting.
type Application struct {
	ID              string               `json:"id"`
	JobID           string               `json:"job_id"`
	JobSeekerID     string               `json:"job_seeker_id"`
	Notes           string               `json:"notes,omitempty"`
	Status          string               `json:"status"`
	NextStep        string               `json:"next_step,omitempty"`
	InterviewDate   *time.Time           `json:"interview_date,omitempty"`
	RejectionReason string               `json:"rejection_reason,omitempty"`
	StatusHistory   []StatusHistoryEntry `json:"status_history,omitempty"`
	MatchScore      *int                 `json:"match_score,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// CreateApplicationRequest is the payload posted by the apply flow.
type CreateApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	JobSeekerID string `json:"job_seeker_id" validate:"required"`
	Notes       string `json:"notes,omitempty"`
}

// UpdateApplicationStatusRequest updates an application's pipeline status.
// The backend appends a status-history entry; it never rewrites prior ones.
type UpdateApplicationStatusRequest struct {
	Status          string     `json:"status" validate:"required"`
	NextStep        string     `json:"next_step,omitempty"`
	Note            string     `json:"note,omitempty"`
	InterviewDate   *time.Time `json:"interview_date,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
}

// Validate validates the CreateApplicationRequest using the validator.
func (r *CreateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateApplicationStatusRequest using the validator.
func (r *UpdateApplicationStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AppendStatus returns a copy of the history with the new entry appended.
// History is additive: existing entries are never removed or mutated.
func AppendStatus(history []StatusHistoryEntry, entry StatusHistoryEntry) []StatusHistoryEntry {
	out := make([]StatusHistoryEntry, len(history), len(history)+1)
	copy(out, history)
	return append(out, entry)
}
