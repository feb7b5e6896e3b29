package matching

import (
	"math"
	"testing"

	"github.com/hyperwork/susume/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLocationBonus(t *testing.T) {
	b := NewLocationBonus(1.10)
	tests := []struct {
		name string
		user string
		job  string
		want float64
	}{
		{"substring match", "Berlin", "Berlin, Germany", 0.55},
		{"exact match", "Berlin", "Berlin", 0.55},
		{"no match", "Berlin", "Munich", 0.5},
		{"case sensitive", "berlin", "Berlin, Germany", 0.5},
		{"empty user location", "", "Berlin", 0.5},
		{"empty job location", "Berlin", "", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{Location: tt.user}
			job := &models.Job{Location: tt.job}
			if got := b.Apply(user, job, 0.5); !almostEqual(got, tt.want) {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoteBonus(t *testing.T) {
	b := NewRemoteBonus(1.15)
	tests := []struct {
		name       string
		remoteOnly bool
		jobRemote  bool
		want       float64
	}{
		{"both remote", true, true, 0.575},
		{"user only", true, false, 0.5},
		{"job only", false, true, 0.5},
		{"neither", false, false, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{Preferences: models.Preferences{RemoteOnly: tt.remoteOnly}}
			job := &models.Job{Remote: tt.jobRemote}
			if got := b.Apply(user, job, 0.5); !almostEqual(got, tt.want) {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExperienceBonus(t *testing.T) {
	b := NewExperienceBonus(1.05)
	tests := []struct {
		name string
		user string
		job  string
		want float64
	}{
		{"equal", "Senior", "Senior", 0.525},
		{"different", "Senior", "Junior", 0.5},
		{"case differs", "senior", "Senior", 0.5},
		{"both empty", "", "", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{ExperienceLevel: tt.user}
			job := &models.Job{ExperienceLevel: tt.job}
			if got := b.Apply(user, job, 0.5); !almostEqual(got, tt.want) {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSalaryBonus(t *testing.T) {
	b := NewSalaryBonus(1.05)
	tests := []struct {
		name        string
		expectation *int
		salaryMin   *int
		want        float64
	}{
		{"expectation above minimum", intPtr(120000), intPtr(100000), 0.525},
		{"expectation equals minimum", intPtr(100000), intPtr(100000), 0.525},
		{"expectation below minimum", intPtr(80000), intPtr(100000), 0.5},
		{"no expectation", nil, intPtr(100000), 0.5},
		{"no job salary", intPtr(120000), nil, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &models.User{SalaryExpectation: tt.expectation}
			job := &models.Job{SalaryMin: tt.salaryMin}
			if got := b.Apply(user, job, 0.5); !almostEqual(got, tt.want) {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyBonuses_Cap(t *testing.T) {
	salary := 120000
	user := &models.User{
		Location:          "Berlin",
		ExperienceLevel:   "Senior",
		SalaryExpectation: &salary,
		Preferences:       models.Preferences{RemoteOnly: true},
	}
	job := &models.Job{
		Location:        "Berlin, Germany",
		Remote:          true,
		ExperienceLevel: "Senior",
		SalaryMin:       intPtr(100000),
	}
	bonuses := DefaultBonuses(DefaultConfig())

	// 0.9 × 1.10 × 1.15 × 1.05 × 1.05 ≈ 1.255, capped to 1.0.
	if got := ApplyBonuses(bonuses, user, job, 0.9); got != 1.0 {
		t.Errorf("ApplyBonuses = %v, want capped 1.0", got)
	}

	// Below the cap the product passes through untouched.
	want := 0.5 * 1.10 * 1.15 * 1.05 * 1.05
	if got := ApplyBonuses(bonuses, user, job, 0.5); !almostEqual(got, want) {
		t.Errorf("ApplyBonuses = %v, want %v", got, want)
	}
}

func TestApplyBonuses_NoSignals(t *testing.T) {
	bonuses := DefaultBonuses(DefaultConfig())
	user := &models.User{}
	job := &models.Job{}
	if got := ApplyBonuses(bonuses, user, job, 0.42); !almostEqual(got, 0.42) {
		t.Errorf("ApplyBonuses = %v, want unchanged 0.42", got)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	c := &Config{SemanticThreshold: 0.5}
	c.ApplyDefaults()
	if c.SemanticThreshold != 0.5 {
		t.Errorf("SemanticThreshold overwritten: %v", c.SemanticThreshold)
	}
	if c.HighConfidence != 0.7 || c.TopN != 20 || c.RemoteBonus != 1.15 {
		t.Errorf("defaults not filled: %+v", c)
	}
}
