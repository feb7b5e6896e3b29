package models

import "time"

// Job is a job posting. RequiredSkills drives matching; PreferredSkills is
// informational and not scored.
type Job struct {
	ID       string `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Company  string `json:"company" db:"company"`
	Location string `json:"location,omitempty" db:"location"`
	Remote   bool   `json:"remote" db:"remote"`

	Description      string   `json:"description,omitempty" db:"description"`
	Requirements     []string `json:"requirements,omitempty" db:"requirements"`
	Responsibilities []string `json:"responsibilities,omitempty" db:"responsibilities"`

	RequiredSkills  []string `json:"required_skills" db:"required_skills"`
	PreferredSkills []string `json:"preferred_skills,omitempty" db:"preferred_skills"`

	EmploymentType  string `json:"employment_type,omitempty" db:"employment_type"`
	ExperienceLevel string `json:"experience_level,omitempty" db:"experience_level"`
	// SalaryMin/SalaryMax are nil when the posting does not disclose a range.
	SalaryMin      *int   `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax      *int   `json:"salary_max,omitempty" db:"salary_max"`
	SalaryCurrency string `json:"salary_currency,omitempty" db:"salary_currency"`

	Category string `json:"category,omitempty" db:"category"`
	Industry string `json:"industry,omitempty" db:"industry"`

	ApplicationURL   string `json:"application_url,omitempty" db:"application_url"`
	ApplicationEmail string `json:"application_email,omitempty" db:"application_email"`

	IsActive bool `json:"is_active" db:"is_active"`
	Featured bool `json:"featured" db:"featured"`

	PostedDate time.Time  `json:"posted_date" db:"posted_date"`
	Deadline   *time.Time `json:"deadline,omitempty" db:"deadline"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}
