package matching

// Config holds all tunables for the skill matcher.
type Config struct {
	// SemanticThreshold is the minimum similarity for a pair to count as a
	// semantic match.
	SemanticThreshold float64 `yaml:"semantic_threshold"` // default: 0.6
	// HighConfidence is the minimum similarity at which a semantically matched
	// job skill is also removed from the missing list. Pairs scoring between
	// SemanticThreshold and HighConfidence appear in both the matched and
	// missing lists; that asymmetry is inherited behavior, kept on purpose.
	HighConfidence float64 `yaml:"high_confidence"` // default: 0.7

	// Preference bonuses, applied multiplicatively in fixed order.
	LocationBonus   float64 `yaml:"location_bonus"`   // default: 1.10
	RemoteBonus     float64 `yaml:"remote_bonus"`     // default: 1.15
	ExperienceBonus float64 `yaml:"experience_bonus"` // default: 1.05
	SalaryBonus     float64 `yaml:"salary_bonus"`     // default: 1.05

	// TopN is how many ranked jobs the recommendation service persists.
	// RankJobs itself never truncates.
	TopN int `yaml:"top_n"` // default: 20
}

// DefaultConfig returns the default matcher configuration.
func DefaultConfig() *Config {
	return &Config{
		SemanticThreshold: 0.6,
		HighConfidence:    0.7,
		LocationBonus:     1.10,
		RemoteBonus:       1.15,
		ExperienceBonus:   1.05,
		SalaryBonus:       1.05,
		TopN:              20,
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.SemanticThreshold == 0 {
		c.SemanticThreshold = defaults.SemanticThreshold
	}
	if c.HighConfidence == 0 {
		c.HighConfidence = defaults.HighConfidence
	}
	if c.LocationBonus == 0 {
		c.LocationBonus = defaults.LocationBonus
	}
	if c.RemoteBonus == 0 {
		c.RemoteBonus = defaults.RemoteBonus
	}
	if c.ExperienceBonus == 0 {
		c.ExperienceBonus = defaults.ExperienceBonus
	}
	if c.SalaryBonus == 0 {
		c.SalaryBonus = defaults.SalaryBonus
	}
	if c.TopN == 0 {
		c.TopN = defaults.TopN
	}
}
