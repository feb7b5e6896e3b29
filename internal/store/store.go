// Package store defines persistence for users, jobs, the skill taxonomy, and
// recommendation snapshots.
package store

import (
	"context"

	"github.com/hyperwork/susume/internal/models"
)

// Store defines all persistence operations.
type Store interface {
	// User operations
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error)

	// Job operations
	CreateJob(ctx context.Context, job *models.Job) error
	GetJob(ctx context.Context, id string) (*models.Job, error)
	UpdateJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id string) error
	ListJobs(ctx context.Context, offset, limit int) ([]*models.Job, error)
	ListActiveJobs(ctx context.Context) ([]*models.Job, error)
	BatchCreateJobs(ctx context.Context, jobs []*models.Job) error

	// Skill taxonomy operations
	CreateSkill(ctx context.Context, skill *models.Skill) error
	GetSkillByName(ctx context.Context, name string) (*models.Skill, error)
	ListSkills(ctx context.Context) ([]*models.Skill, error)

	// Recommendation operations
	UpsertRecommendation(ctx context.Context, rec *models.Recommendation) error
	GetRecommendation(ctx context.Context, userID, jobID string) (*models.Recommendation, error)
	UpdateRecommendation(ctx context.Context, rec *models.Recommendation) error
	ListRecommendations(ctx context.Context, userID string, limit int) ([]*models.Recommendation, error)
	ListSavedRecommendations(ctx context.Context, userID string) ([]*models.Recommendation, error)
	ListAppliedRecommendations(ctx context.Context, userID string) ([]*models.Recommendation, error)

	// Stats
	CountUsers(ctx context.Context) (int64, error)
	CountJobs(ctx context.Context) (int64, error)
	CountSkills(ctx context.Context) (int64, error)
	CountRecommendations(ctx context.Context) (int64, error)

	Close() error
}
