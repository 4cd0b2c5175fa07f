package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// ExperienceEntry is one work-history item on a job-seeker profile.
type ExperienceEntry struct {
	Role        string `json:"role"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one education item on a job-seeker profile.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree,omitempty"`
	Field     string `json:"field,omitempty"`
	StartYear int    `json:"start_year,omitempty"`
	EndYear   int    `json:"end_year,omitempty"`
}

// ProjectEntry is one project item on a job-seeker profile.
type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
}

// SeekerPreferences holds a job seeker's search preferences.
type SeekerPreferences struct {
	Salary             SalaryRange `json:"salary_range"`
	JobTypes           []string    `json:"job_types,omitempty"`
	RemoteOK           bool        `json:"remote_ok"`
	PreferredLocations []string    `json:"preferred_locations,omitempty"`
	Industries         []string    `json:"industries,omitempty"`
	CompanySizes       []string    `json:"company_sizes,omitempty"`
}

// JobSeekerProfile represents a candidate-side profile.
type JobSeekerProfile struct {
	ID                   string            `json:"id"`
	UserID               string            `json:"user_id"`
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone,omitempty"`
	Location             string            `json:"location,omitempty"`
	ZipCode              string            `json:"zip_code,omitempty"`
	Bio                  string            `json:"bio,omitempty"`
	ResumeFileID         string            `json:"resume_file_id,omitempty"`
	Skills               []string          `json:"skills,omitempty"`
	YearsOfExperience    int               `json:"years_of_experience"`
	EducationLevel       string            `json:"education_level,omitempty"`
	Experience           []ExperienceEntry `json:"experience,omitempty"`
	Education            []EducationEntry  `json:"education,omitempty"`
	Projects             []ProjectEntry    `json:"projects,omitempty"`
	Preferences          SeekerPreferences `json:"preferences"`
	CompletionPercentage *int              `json:"profile_completion,omitempty"`
	ViewCount            int               `json:"view_count"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// SaveJobSeekerProfileRequest is the upsert payload for a job-seeker profile.
// The backend creates the profile lazily on first save, then updates in place.
type SaveJobSeekerProfileRequest struct {
	UserID            string            `json:"user_id" validate:"required"`
	FirstName         string            `json:"first_name" validate:"required"`
	LastName          string            `json:"last_name" validate:"required"`
	Email             string            `json:"email" validate:"required,email"`
	Phone             string            `json:"phone,omitempty"`
	Location          string            `json:"location,omitempty"`
	ZipCode           string            `json:"zip_code,omitempty"`
	Bio               string            `json:"bio,omitempty"`
	Skills            []string          `json:"skills,omitempty"`
	YearsOfExperience int               `json:"years_of_experience,omitempty" validate:"omitempty,min=0"`
	EducationLevel    string            `json:"education_level,omitempty"`
	Experience        []ExperienceEntry `json:"experience,omitempty"`
	Education         []EducationEntry  `json:"education,omitempty"`
	Projects          []ProjectEntry    `json:"projects,omitempty"`
	Preferences       SeekerPreferences `json:"preferences"`
}

// Validate validates the SaveJobSeekerProfileRequest using the validator.
func (r *SaveJobSeekerProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
