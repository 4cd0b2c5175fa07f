package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// EmployerProfile represents a company-side profile. Field set is the superset
// of the snapshots observed in the source material (contact info, culture and
// benefits fields both included).
type EmployerProfile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	CompanyName  string    `json:"company_name"`
	Website      string    `json:"website,omitempty"`
	LogoURL      string    `json:"logo_url,omitempty"`
	Industry     string    `json:"industry,omitempty"`
	CompanySize  string    `json:"company_size,omitempty"`
	Location     string    `json:"location,omitempty"`
	Description  string    `json:"description,omitempty"`
	FoundedYear  int       `json:"founded_year,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	Benefits     []string  `json:"benefits,omitempty"`
	Culture      string    `json:"culture,omitempty"`
	JobsPosted   int       `json:"jobs_posted"`
	ActiveJobs   int       `json:"active_jobs"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SaveEmployerProfileRequest is the upsert payload for an employer profile.
type SaveEmployerProfileRequest struct {
	UserID       string   `json:"user_id" validate:"required"`
	CompanyName  string   `json:"company_name" validate:"required"`
	Website      string   `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL      string   `json:"logo_url,omitempty" validate:"omitempty,url"`
	Industry     string   `json:"industry,omitempty"`
	CompanySize  string   `json:"company_size,omitempty"`
	Location     string   `json:"location,omitempty"`
	Description  string   `json:"description,omitempty"`
	FoundedYear  int      `json:"founded_year,omitempty" validate:"omitempty,min=1800"`
	ContactEmail string   `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
	Culture      string   `json:"culture,omitempty"`
}

// Validate validates the SaveEmployerProfileRequest using the validator.
func (r *SaveEmployerProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
