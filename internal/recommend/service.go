// Package recommend orchestrates the recommendation lifecycle: ranking active
// jobs for a user, persisting the top matches, and tracking what the user does
// with them.
package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperwork/susume/internal/advisor"
	"github.com/hyperwork/susume/internal/matching"
	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/internal/store"
)

// applyPoints is the gamification award for applying to a job.
const applyPoints = 10

// Service ties the matching engine to persistence. The advisor is optional;
// without it, skill-gap reports carry only the computed gap data.
type Service struct {
	store   store.Store
	matcher *matching.Matcher
	advisor *advisor.Advisor
	logger  *zap.Logger
}

// NewService creates a recommendation service. adv may be nil.
func NewService(st store.Store, matcher *matching.Matcher, adv *advisor.Advisor, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, matcher: matcher, advisor: adv, logger: logger}
}

// Refresh re-ranks all active jobs for the user and persists the top-N
// recommendations with explanations. Existing recommendations for the same
// jobs are refreshed in place, keeping viewed/saved/applied state. Returns the
// persisted recommendations, best match first.
//
// A user without skills or an empty job board is a valid empty result, not an
// error.
func (s *Service) Refresh(ctx context.Context, userID string) ([]*models.Recommendation, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(user.Skills) == 0 {
		s.logger.Info("user has no skills, nothing to recommend", zap.String("user_id", userID))
		return nil, nil
	}

	jobs, err := s.store.ListActiveJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active jobs: %w", err)
	}
	if len(jobs) == 0 {
		s.logger.Info("no active jobs to rank", zap.String("user_id", userID))
		return nil, nil
	}

	ranked := s.matcher.RankJobs(ctx, user, jobs)
	topN := s.matcher.Config().TopN
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]*models.Recommendation, 0, len(ranked))
	for _, r := range ranked {
		rec := &models.Recommendation{
			ID:                 uuid.NewString(),
			UserID:             user.ID,
			JobID:              r.Job.ID,
			MatchScore:         r.Result.FinalScore,
			Confidence:         r.Result.FinalScore,
			MatchedSkills:      r.Result.MatchedSkills,
			MissingSkills:      r.Result.MissingSkills,
			SkillGapPercentage: r.Result.SkillGapPercentage,
			Explanation:        matching.Explanation(r.Result),
		}
		if err := s.store.UpsertRecommendation(ctx, rec); err != nil {
			return nil, fmt.Errorf("persisting recommendation for job %s: %w", r.Job.ID, err)
		}
		// Read back so refreshed pairs carry their surviving user state.
		persisted, err := s.store.GetRecommendation(ctx, user.ID, r.Job.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, persisted)
	}

	s.logger.Info("recommendations refreshed",
		zap.String("user_id", userID),
		zap.Int("ranked", len(jobs)),
		zap.Int("persisted", len(out)),
	)
	return out, nil
}

// List returns the user's persisted recommendations, best match first.
func (s *Service) List(ctx context.Context, userID string, limit int) ([]*models.Recommendation, error) {
	if limit <= 0 {
		limit = s.matcher.Config().TopN
	}
	return s.store.ListRecommendations(ctx, userID, limit)
}

// MarkViewed records that the user opened a recommendation. Repeat views keep
// the first timestamp.
func (s *Service) MarkViewed(ctx context.Context, userID, jobID string) (*models.Recommendation, error) {
	rec, err := s.store.GetRecommendation(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}
	rec.MarkViewed()
	if err := s.store.UpdateRecommendation(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ToggleSaved flips the saved flag and returns the new state.
func (s *Service) ToggleSaved(ctx context.Context, userID, jobID string) (bool, error) {
	rec, err := s.store.GetRecommendation(ctx, userID, jobID)
	if err != nil {
		return false, err
	}
	rec.Saved = !rec.Saved
	if err := s.store.UpdateRecommendation(ctx, rec); err != nil {
		return false, err
	}
	return rec.Saved, nil
}

// MarkApplied records an application and awards points. The award happens only
// on the first application to a given job; re-applying is a no-op.
func (s *Service) MarkApplied(ctx context.Context, userID, jobID string) (pointsEarned int, err error) {
	rec, err := s.store.GetRecommendation(ctx, userID, jobID)
	if err != nil {
		return 0, err
	}
	if rec.Applied {
		return 0, nil
	}
	rec.MarkApplied()
	if err := s.store.UpdateRecommendation(ctx, rec); err != nil {
		return 0, err
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	user.Points += applyPoints
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return 0, err
	}

	s.logger.Info("application recorded",
		zap.String("user_id", userID),
		zap.String("job_id", jobID),
		zap.Int("points_earned", applyPoints),
	)
	return applyPoints, nil
}

// SubmitFeedback records a 1-5 rating with an optional comment.
func (s *Service) SubmitFeedback(ctx context.Context, userID, jobID string, rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("invalid rating %d: must be 1-5", rating)
	}
	rec, err := s.store.GetRecommendation(ctx, userID, jobID)
	if err != nil {
		return err
	}
	rec.FeedbackRating = rating
	rec.FeedbackComment = comment
	return s.store.UpdateRecommendation(ctx, rec)
}

// Saved returns the user's saved recommendations.
func (s *Service) Saved(ctx context.Context, userID string) ([]*models.Recommendation, error) {
	return s.store.ListSavedRecommendations(ctx, userID)
}

// Applied returns the user's applied recommendations.
func (s *Service) Applied(ctx context.Context, userID string) ([]*models.Recommendation, error) {
	return s.store.ListAppliedRecommendations(ctx, userID)
}

// SkillGapReport is a per-job gap breakdown for one user.
type SkillGapReport struct {
	Job          *models.Job           `json:"job"`
	Result       *matching.MatchResult `json:"result"`
	Analysis     string                `json:"gap_analysis"`
	LearningPath string                `json:"learning_path,omitempty"`
}

// SkillGap computes the match between a user and one job and narrates the gap.
// With no advisor configured (or when the model fails inside the advisor) the
// report still carries the full computed gap data.
func (s *Service) SkillGap(ctx context.Context, userID, jobID string) (*SkillGapReport, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	job, err := s.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	result := s.matcher.CalculateSkillMatch(ctx, user.Skills, job.RequiredSkills)
	report := &SkillGapReport{Job: job, Result: result}

	if s.advisor != nil {
		gap := s.advisor.AnalyzeSkillGap(ctx, user.Skills, job.RequiredSkills, result.MissingSkills)
		report.Analysis = gap.Analysis
		if len(result.MissingSkills) > 0 {
			report.LearningPath = s.advisor.LearningPath(ctx, user.Skills, result.MissingSkills)
		}
	} else {
		report.Analysis = matching.Explanation(result)
	}
	return report, nil
}
