package models

import "time"

// LearningResource is a pointer to external learning material for a skill.
type LearningResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind,omitempty"` // course, book, tutorial, ...
}

// Skill is a taxonomy entry: a canonical skill name plus metadata used for
// suggestions and skill-gap reporting.
type Skill struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Category    string `json:"category,omitempty" db:"category"`
	Subcategory string `json:"subcategory,omitempty" db:"subcategory"`

	Description     string `json:"description,omitempty" db:"description"`
	DifficultyLevel string `json:"difficulty_level,omitempty" db:"difficulty_level"`

	RelatedSkills     []string           `json:"related_skills,omitempty" db:"related_skills"`
	LearningResources []LearningResource `json:"learning_resources,omitempty" db:"learning_resources"`

	PopularityScore float64 `json:"popularity_score" db:"popularity_score"`
	DemandTrend     string  `json:"demand_trend,omitempty" db:"demand_trend"` // Rising, Stable, Declining

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
