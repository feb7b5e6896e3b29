// Package models defines core data structures for users, jobs, skills, and recommendations.
package models

import "time"

// Preferences holds a user's job-matching preferences. Unknown or malformed
// preference fields are dropped at the storage boundary, so a zero value here
// always means "no preference" and never an error.
type Preferences struct {
	RemoteOnly bool `json:"remote_only" yaml:"remote_only"`
}

// User is a candidate profile. Skills is an ordered list of skill tokens as
// entered; normalization happens inside the matching engine, not here.
type User struct {
	ID       string `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
	FullName string `json:"full_name,omitempty" db:"full_name"`
	Bio      string `json:"bio,omitempty" db:"bio"`

	Location        string `json:"location,omitempty" db:"location"`
	ExperienceLevel string `json:"experience_level,omitempty" db:"experience_level"`
	DesiredRole     string `json:"desired_role,omitempty" db:"desired_role"`
	// SalaryExpectation is nil when the user has not set one; the salary
	// preference bonus only applies when it is present.
	SalaryExpectation *int `json:"salary_expectation,omitempty" db:"salary_expectation"`

	Skills      []string    `json:"skills" db:"skills"`
	Preferences Preferences `json:"preferences" db:"preferences"`

	Points int      `json:"points" db:"points"`
	Badges []string `json:"badges,omitempty" db:"badges"`

	IsActive bool `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
