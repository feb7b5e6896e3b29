// Package matching scores how well a user's skills satisfy a job's required
// skills and ranks jobs by a preference-adjusted final score.
//
// The match algorithm combines exact token matches (case-insensitive, trimmed)
// with semantic matches from a pluggable similarity provider. Two oddities are
// inherited from the product's scoring rules and kept deliberately: a job skill
// matched semantically by several user skills is counted once per pair, so the
// pre-bonus score can exceed 1.0, and a semantically matched skill only leaves
// the missing list above a second, higher similarity threshold.
package matching

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/pkg/utils"
)

// SemanticMatch is one user-skill/job-skill pair scored by the similarity
// provider. Similarity is rounded to 3 decimals.
type SemanticMatch struct {
	UserSkill  string  `json:"user_skill"`
	JobSkill   string  `json:"job_skill"`
	Similarity float64 `json:"similarity"`
}

// MatchResult is the outcome of matching one user skill list against one job
// skill list. Produced fresh per call; the matcher never persists anything.
type MatchResult struct {
	// Score is totalMatched / len(job skills), rounded to 3 decimals.
	// Not capped; see ApplyBonuses.
	Score float64 `json:"match_score"`
	// MatchedSkills is the exact matches followed by the user side of each
	// semantic match.
	MatchedSkills []string `json:"matched_skills"`
	// MissingSkills are job skills with no exact match and no high-confidence
	// semantic match.
	MissingSkills      []string        `json:"missing_skills"`
	SkillGapPercentage float64         `json:"skill_gap_percentage"`
	ExactMatches       []string        `json:"exact_matches"`
	SemanticMatches    []SemanticMatch `json:"semantic_matches"`
	// FinalScore is Score after preference bonuses, capped at 1.0. Set by
	// RankJobs; zero otherwise.
	FinalScore float64 `json:"final_score,omitempty"`
}

// RankedJob pairs a job with its match result. Created per ranking call and
// handed to the caller; ordering is by FinalScore descending.
type RankedJob struct {
	Job    *models.Job  `json:"job"`
	Result *MatchResult `json:"result"`
}

// Matcher is the skill matching engine. It is stateless and safe for
// concurrent use as long as the similarity provider is.
type Matcher struct {
	config   *Config
	provider SimilarityProvider
	bonuses  []Bonus
	logger   *zap.Logger
}

// NewMatcher creates a matcher. provider may be nil, in which case matching is
// exact-only. A nil config uses defaults.
func NewMatcher(config *Config, provider SimilarityProvider, logger *zap.Logger) *Matcher {
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		config:   config,
		provider: provider,
		bonuses:  DefaultBonuses(config),
		logger:   logger,
	}
}

// WithBonuses replaces the preference bonus stack.
func (m *Matcher) WithBonuses(bonuses []Bonus) *Matcher {
	m.bonuses = bonuses
	return m
}

// Config returns the matcher configuration.
func (m *Matcher) Config() *Config {
	return m.config
}

// CalculateSkillMatch scores userSkills against jobSkills.
//
// Either list may be empty; that is the defined zero-score case, not an error.
// Set-derived lists (exact matches, missing skills) keep first-encounter order
// of the job list, so results are deterministic.
func (m *Matcher) CalculateSkillMatch(ctx context.Context, userSkills, jobSkills []string) *MatchResult {
	if len(userSkills) == 0 || len(jobSkills) == 0 {
		// Missing skills are returned exactly as given here, unnormalized.
		missing := make([]string, len(jobSkills))
		copy(missing, jobSkills)
		return &MatchResult{
			Score:              0.0,
			MatchedSkills:      []string{},
			MissingSkills:      missing,
			SkillGapPercentage: 100.0,
			ExactMatches:       []string{},
			SemanticMatches:    []SemanticMatch{},
		}
	}

	userNorm := utils.NormalizeTokens(userSkills)
	jobNorm := utils.NormalizeTokens(jobSkills)

	userSet := make(map[string]bool, len(userNorm))
	for _, s := range userNorm {
		userSet[s] = true
	}

	// Exact matches and the not-yet-matched job tokens, deduplicated in job
	// list order.
	exactSet := make(map[string]bool)
	var exact []string
	var unmatchedJob []string
	seenJob := make(map[string]bool, len(jobNorm))
	for _, js := range jobNorm {
		if seenJob[js] {
			continue
		}
		seenJob[js] = true
		if userSet[js] {
			exact = append(exact, js)
			exactSet[js] = true
		} else {
			unmatchedJob = append(unmatchedJob, js)
		}
	}

	// User tokens with no exact match, deduplicated in user list order.
	var remainingUser []string
	seenUser := make(map[string]bool, len(userNorm))
	for _, us := range userNorm {
		if seenUser[us] {
			continue
		}
		seenUser[us] = true
		if !exactSet[us] {
			remainingUser = append(remainingUser, us)
		}
	}

	semantic := m.SemanticMatches(ctx, remainingUser, unmatchedJob, m.config.SemanticThreshold)

	// A job skill semantically matched by more than one user skill counts once
	// per pair here; no dedup before the division.
	totalMatched := len(exact) + len(semantic)
	score := float64(totalMatched) / float64(len(jobNorm))

	// Only high-confidence semantic matches clear a skill from the missing
	// list; between the two thresholds a skill is both matched and missing.
	cleared := make(map[string]bool)
	for _, sm := range semantic {
		if sm.Similarity >= m.config.HighConfidence {
			cleared[sm.JobSkill] = true
		}
	}
	missing := make([]string, 0, len(unmatchedJob))
	for _, js := range unmatchedJob {
		if !cleared[js] {
			missing = append(missing, js)
		}
	}

	matched := make([]string, 0, len(exact)+len(semantic))
	matched = append(matched, exact...)
	for _, sm := range semantic {
		matched = append(matched, sm.UserSkill)
	}

	gap := float64(len(missing)) / float64(len(jobNorm)) * 100

	if exact == nil {
		exact = []string{}
	}
	return &MatchResult{
		Score:              utils.Round3(score),
		MatchedSkills:      matched,
		MissingSkills:      missing,
		SkillGapPercentage: utils.Round2(gap),
		ExactMatches:       exact,
		SemanticMatches:    semantic,
	}
}

// SemanticMatches returns every (user skill, job skill) pair whose similarity
// is at least threshold, sorted by similarity descending; ties keep encounter
// order. The full cross product is scored; there is no per-skill top-k.
//
// A provider failure is logged and yields an empty list: matching degrades to
// exact-only rather than surfacing an error.
func (m *Matcher) SemanticMatches(ctx context.Context, userSkills, jobSkills []string, threshold float64) []SemanticMatch {
	if m.provider == nil || len(userSkills) == 0 || len(jobSkills) == 0 {
		return []SemanticMatch{}
	}

	sims, err := m.provider.Similarities(ctx, userSkills, jobSkills)
	if err != nil {
		m.logger.Error("semantic matching failed, degrading to exact-only",
			zap.String("provider", m.provider.Name()),
			zap.Error(err),
		)
		return []SemanticMatch{}
	}

	matches := []SemanticMatch{}
	for i, us := range userSkills {
		for j, js := range jobSkills {
			if sims[i][j] >= threshold {
				matches = append(matches, SemanticMatch{
					UserSkill:  us,
					JobSkill:   js,
					Similarity: sims[i][j],
				})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	for i := range matches {
		matches[i].Similarity = utils.Round3(matches[i].Similarity)
	}
	return matches
}

// RankJobs matches every job against the user and sorts by final score
// descending; ties keep encounter order. No truncation happens here; callers
// take the top N themselves.
func (m *Matcher) RankJobs(ctx context.Context, user *models.User, jobs []*models.Job) []*RankedJob {
	ranked := make([]*RankedJob, 0, len(jobs))
	for _, job := range jobs {
		result := m.CalculateSkillMatch(ctx, user.Skills, job.RequiredSkills)
		result.FinalScore = ApplyBonuses(m.bonuses, user, job, result.Score)
		ranked = append(ranked, &RankedJob{Job: job, Result: result})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.FinalScore > ranked[j].Result.FinalScore
	})
	return ranked
}
