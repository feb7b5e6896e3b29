package models

import "time"

// Recommendation is a persisted snapshot of one user×job match, produced by
// the recommendation service from a core match result. It records the final
// (preference-adjusted) score plus the detail fields users see.
type Recommendation struct {
	ID     string `json:"id" db:"id"`
	UserID string `json:"user_id" db:"user_id"`
	JobID  string `json:"job_id" db:"job_id"`

	MatchScore float64 `json:"match_score" db:"match_score"` // final score, 0..1
	Confidence float64 `json:"confidence" db:"confidence"`

	MatchedSkills      []string `json:"matched_skills" db:"matched_skills"`
	MissingSkills      []string `json:"missing_skills" db:"missing_skills"`
	SkillGapPercentage float64  `json:"skill_gap_percentage" db:"skill_gap_percentage"`

	Explanation      string   `json:"explanation,omitempty" db:"explanation"`
	SuggestedCourses []string `json:"suggested_courses,omitempty" db:"suggested_courses"`

	Viewed  bool `json:"viewed" db:"viewed"`
	Saved   bool `json:"saved" db:"saved"`
	Applied bool `json:"applied" db:"applied"`

	FeedbackRating  int    `json:"feedback_rating,omitempty" db:"feedback_rating"` // 1-5, 0 = none
	FeedbackComment string `json:"feedback_comment,omitempty" db:"feedback_comment"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ViewedAt  *time.Time `json:"viewed_at,omitempty" db:"viewed_at"`
	AppliedAt *time.Time `json:"applied_at,omitempty" db:"applied_at"`
}

// MarkViewed sets the viewed flag once; repeated calls keep the first timestamp.
func (r *Recommendation) MarkViewed() {
	if r.Viewed {
		return
	}
	r.Viewed = true
	now := time.Now()
	r.ViewedAt = &now
}

// MarkApplied sets the applied flag once; repeated calls keep the first timestamp.
func (r *Recommendation) MarkApplied() {
	if r.Applied {
		return
	}
	r.Applied = true
	now := time.Now()
	r.AppliedAt = &now
}
