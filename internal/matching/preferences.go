package matching

import (
	"math"
	"strings"

	"github.com/hyperwork/susume/internal/models"
)

// Bonus adjusts a base match score from one user preference signal. Each bonus
// is independently conditional; a missing or zero preference field simply
// leaves the score unchanged.
type Bonus interface {
	// Apply returns the adjusted score.
	Apply(user *models.User, job *models.Job, score float64) float64
	// Name returns the bonus name for debugging/logging.
	Name() string
}

// LocationBonus boosts jobs whose location contains the user's location string.
// The comparison is a case-sensitive substring match; both sides must be set.
type LocationBonus struct {
	factor float64
}

// NewLocationBonus creates a LocationBonus with the given factor.
func NewLocationBonus(factor float64) *LocationBonus {
	return &LocationBonus{factor: factor}
}

// Name returns the bonus name.
func (b *LocationBonus) Name() string { return "location" }

// Apply applies the location bonus.
func (b *LocationBonus) Apply(user *models.User, job *models.Job, score float64) float64 {
	if user.Location != "" && job.Location != "" && strings.Contains(job.Location, user.Location) {
		return score * b.factor
	}
	return score
}

// RemoteBonus boosts remote jobs for users who prefer remote-only work.
type RemoteBonus struct {
	factor float64
}

// NewRemoteBonus creates a RemoteBonus with the given factor.
func NewRemoteBonus(factor float64) *RemoteBonus {
	return &RemoteBonus{factor: factor}
}

// Name returns the bonus name.
func (b *RemoteBonus) Name() string { return "remote" }

// Apply applies the remote-work bonus.
func (b *RemoteBonus) Apply(user *models.User, job *models.Job, score float64) float64 {
	if user.Preferences.RemoteOnly && job.Remote {
		return score * b.factor
	}
	return score
}

// ExperienceBonus boosts jobs whose experience level exactly equals the user's.
type ExperienceBonus struct {
	factor float64
}

// NewExperienceBonus creates an ExperienceBonus with the given factor.
func NewExperienceBonus(factor float64) *ExperienceBonus {
	return &ExperienceBonus{factor: factor}
}

// Name returns the bonus name.
func (b *ExperienceBonus) Name() string { return "experience" }

// Apply applies the experience-level bonus.
func (b *ExperienceBonus) Apply(user *models.User, job *models.Job, score float64) float64 {
	if user.ExperienceLevel != "" && job.ExperienceLevel != "" && user.ExperienceLevel == job.ExperienceLevel {
		return score * b.factor
	}
	return score
}

// SalaryBonus boosts jobs whose minimum salary is within the user's expectation.
type SalaryBonus struct {
	factor float64
}

// NewSalaryBonus creates a SalaryBonus with the given factor.
func NewSalaryBonus(factor float64) *SalaryBonus {
	return &SalaryBonus{factor: factor}
}

// Name returns the bonus name.
func (b *SalaryBonus) Name() string { return "salary" }

// Apply applies the salary bonus.
func (b *SalaryBonus) Apply(user *models.User, job *models.Job, score float64) float64 {
	if user.SalaryExpectation != nil && job.SalaryMin != nil && *user.SalaryExpectation >= *job.SalaryMin {
		return score * b.factor
	}
	return score
}

// DefaultBonuses returns the preference bonus stack in its fixed application
// order: location, remote, experience, salary.
func DefaultBonuses(config *Config) []Bonus {
	return []Bonus{
		NewLocationBonus(config.LocationBonus),
		NewRemoteBonus(config.RemoteBonus),
		NewExperienceBonus(config.ExperienceBonus),
		NewSalaryBonus(config.SalaryBonus),
	}
}

// ApplyBonuses runs the bonus stack over base and caps the result at 1.0.
// The base score itself can exceed 1.0 (semantic matches can double count a
// job skill); this cap is the only place that overflow is corrected.
func ApplyBonuses(bonuses []Bonus, user *models.User, job *models.Job, base float64) float64 {
	score := base
	for _, b := range bonuses {
		score = b.Apply(user, job, score)
	}
	return math.Min(score, 1.0)
}
