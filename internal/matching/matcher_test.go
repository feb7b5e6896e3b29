package matching

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/hyperwork/susume/internal/models"
)

// matrixProvider returns fixed similarities keyed by "user|job" pair.
// Unlisted pairs score 0.
type matrixProvider struct {
	sims map[string]float64
	err  error
}

func (p *matrixProvider) Name() string { return "matrix" }

func (p *matrixProvider) Similarities(ctx context.Context, userSkills, jobSkills []string) ([][]float64, error) {
	if p.err != nil {
		return nil, p.err
	}
	out := make([][]float64, len(userSkills))
	for i, us := range userSkills {
		row := make([]float64, len(jobSkills))
		for j, js := range jobSkills {
			row[j] = p.sims[us+"|"+js]
		}
		out[i] = row
	}
	return out, nil
}

func TestCalculateSkillMatch_EmptyInputs(t *testing.T) {
	m := NewMatcher(nil, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		userSkills []string
		jobSkills  []string
	}{
		{"empty user", nil, []string{"Python", "SQL"}},
		{"empty job", []string{"Python"}, nil},
		{"both empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.CalculateSkillMatch(ctx, tt.userSkills, tt.jobSkills)
			if result.Score != 0.0 {
				t.Errorf("Score = %v, want 0.0", result.Score)
			}
			if result.SkillGapPercentage != 100.0 {
				t.Errorf("SkillGapPercentage = %v, want 100.0", result.SkillGapPercentage)
			}
			if len(result.MissingSkills) != len(tt.jobSkills) {
				t.Errorf("MissingSkills = %v, want the job skills as given", result.MissingSkills)
			}
			// Missing skills come back exactly as given, unnormalized.
			for i, s := range tt.jobSkills {
				if result.MissingSkills[i] != s {
					t.Errorf("MissingSkills[%d] = %q, want %q", i, result.MissingSkills[i], s)
				}
			}
		})
	}
}

func TestCalculateSkillMatch_IdenticalLists(t *testing.T) {
	m := NewMatcher(nil, nil, nil)
	result := m.CalculateSkillMatch(context.Background(),
		[]string{"Python", "SQL", "Docker"},
		[]string{"python", "sql", "DOCKER"},
	)

	if result.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", result.Score)
	}
	if len(result.ExactMatches) != 3 {
		t.Errorf("ExactMatches = %v, want all 3", result.ExactMatches)
	}
	if len(result.MissingSkills) != 0 {
		t.Errorf("MissingSkills = %v, want empty", result.MissingSkills)
	}
	if result.SkillGapPercentage != 0.0 {
		t.Errorf("SkillGapPercentage = %v, want 0.0", result.SkillGapPercentage)
	}
}

func TestCalculateSkillMatch_PartialExact(t *testing.T) {
	m := NewMatcher(nil, nil, nil)
	result := m.CalculateSkillMatch(context.Background(),
		[]string{"Python", "SQL"},
		[]string{"python", "Django", "SQL"},
	)

	wantExact := []string{"python", "sql"}
	if !reflect.DeepEqual(result.ExactMatches, wantExact) {
		t.Errorf("ExactMatches = %v, want %v", result.ExactMatches, wantExact)
	}
	if result.Score != 0.667 {
		t.Errorf("Score = %v, want 0.667", result.Score)
	}
	if !reflect.DeepEqual(result.MissingSkills, []string{"django"}) {
		t.Errorf("MissingSkills = %v, want [django]", result.MissingSkills)
	}
	if result.SkillGapPercentage != 33.33 {
		t.Errorf("SkillGapPercentage = %v, want 33.33", result.SkillGapPercentage)
	}
}

func TestCalculateSkillMatch_ThresholdBoundaries(t *testing.T) {
	// golang~go at exactly the inclusion threshold; kubernetes~k8s exactly at
	// high confidence; postgres~postgresql between the two.
	provider := &matrixProvider{sims: map[string]float64{
		"golang|go":           0.6,
		"k8s|kubernetes":      0.7,
		"postgres|postgresql": 0.65,
	}}
	m := NewMatcher(nil, provider, nil)
	result := m.CalculateSkillMatch(context.Background(),
		[]string{"golang", "k8s", "postgres"},
		[]string{"go", "kubernetes", "postgresql"},
	)

	if len(result.SemanticMatches) != 3 {
		t.Fatalf("SemanticMatches = %v, want 3 entries", result.SemanticMatches)
	}
	// Sorted descending by similarity.
	if result.SemanticMatches[0].JobSkill != "kubernetes" ||
		result.SemanticMatches[1].JobSkill != "postgresql" ||
		result.SemanticMatches[2].JobSkill != "go" {
		t.Errorf("SemanticMatches order = %v", result.SemanticMatches)
	}

	missing := make(map[string]bool)
	for _, s := range result.MissingSkills {
		missing[s] = true
	}
	// At 0.7 the skill is cleared from missing; at 0.6 and 0.65 it is not.
	if missing["kubernetes"] {
		t.Error("kubernetes should be cleared from missing at similarity 0.7")
	}
	if !missing["go"] {
		t.Error("go should stay missing at similarity 0.6")
	}
	if !missing["postgresql"] {
		t.Error("postgresql should stay missing at similarity 0.65")
	}

	// The 0.65 pair sits in both lists: matched via its user skill and still
	// missing. Asserting inherited behavior, not correctness.
	matched := make(map[string]bool)
	for _, s := range result.MatchedSkills {
		matched[s] = true
	}
	if !matched["postgres"] {
		t.Error("postgres should be in matched skills via semantic match")
	}
}

func TestCalculateSkillMatch_BelowThresholdExcluded(t *testing.T) {
	provider := &matrixProvider{sims: map[string]float64{"golang|go": 0.59}}
	m := NewMatcher(nil, provider, nil)
	result := m.CalculateSkillMatch(context.Background(), []string{"golang"}, []string{"go"})
	if len(result.SemanticMatches) != 0 {
		t.Errorf("SemanticMatches = %v, want empty below threshold", result.SemanticMatches)
	}
	if result.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", result.Score)
	}
}

func TestCalculateSkillMatch_DoubleCountingUncapped(t *testing.T) {
	// Two user skills both semantically match the single job skill: the
	// pre-bonus score exceeds 1.0. Inherited behavior, asserted as-is.
	provider := &matrixProvider{sims: map[string]float64{
		"golang|go": 0.9,
		"gopher|go": 0.8,
	}}
	m := NewMatcher(nil, provider, nil)
	result := m.CalculateSkillMatch(context.Background(), []string{"golang", "gopher"}, []string{"go"})

	if result.Score != 2.0 {
		t.Errorf("Score = %v, want 2.0 (uncapped double count)", result.Score)
	}
	if len(result.MissingSkills) != 0 {
		t.Errorf("MissingSkills = %v, want empty", result.MissingSkills)
	}
}

func TestCalculateSkillMatch_ProviderFailureDegrades(t *testing.T) {
	provider := &matrixProvider{err: errors.New("model exploded")}
	m := NewMatcher(nil, provider, nil)
	result := m.CalculateSkillMatch(context.Background(),
		[]string{"Python", "golang"},
		[]string{"python", "go"},
	)

	// Exact matching still works; semantic list is just empty.
	if !reflect.DeepEqual(result.ExactMatches, []string{"python"}) {
		t.Errorf("ExactMatches = %v, want [python]", result.ExactMatches)
	}
	if len(result.SemanticMatches) != 0 {
		t.Errorf("SemanticMatches = %v, want empty on provider failure", result.SemanticMatches)
	}
	if result.Score != 0.5 {
		t.Errorf("Score = %v, want 0.5", result.Score)
	}
}

func TestCalculateSkillMatch_DuplicateJobTokens(t *testing.T) {
	// Duplicated job tokens collapse for set comparison but the score divides
	// by the full normalized list length.
	m := NewMatcher(nil, nil, nil)
	result := m.CalculateSkillMatch(context.Background(),
		[]string{"python"},
		[]string{"Python", "python", "SQL"},
	)
	if len(result.ExactMatches) != 1 {
		t.Errorf("ExactMatches = %v, want 1 entry", result.ExactMatches)
	}
	if result.Score != 0.333 {
		t.Errorf("Score = %v, want 0.333 (1 match / 3 tokens)", result.Score)
	}
}

func TestSemanticMatches_StableDescendingOrder(t *testing.T) {
	provider := &matrixProvider{sims: map[string]float64{
		"a|x": 0.8,
		"a|y": 0.9,
		"b|x": 0.8, // tie with a|x, must stay after it
	}}
	m := NewMatcher(nil, provider, nil)
	matches := m.SemanticMatches(context.Background(), []string{"a", "b"}, []string{"x", "y"}, 0.6)

	want := []SemanticMatch{
		{UserSkill: "a", JobSkill: "y", Similarity: 0.9},
		{UserSkill: "a", JobSkill: "x", Similarity: 0.8},
		{UserSkill: "b", JobSkill: "x", Similarity: 0.8},
	}
	if !reflect.DeepEqual(matches, want) {
		t.Errorf("SemanticMatches = %v, want %v", matches, want)
	}
}

func intPtr(n int) *int { return &n }

func TestRankJobs_SortedAndCapped(t *testing.T) {
	m := NewMatcher(nil, nil, nil)
	salary := 120000
	user := &models.User{
		Skills:            []string{"Go", "SQL"},
		Location:          "Berlin",
		ExperienceLevel:   "Senior",
		SalaryExpectation: &salary,
		Preferences:       models.Preferences{RemoteOnly: true},
	}

	jobs := []*models.Job{
		{ID: "weak", Title: "Designer", RequiredSkills: []string{"Figma", "Sketch"}},
		{
			ID:              "strong",
			Title:           "Backend Engineer",
			RequiredSkills:  []string{"go", "sql"},
			Location:        "Berlin, Germany",
			Remote:          true,
			ExperienceLevel: "Senior",
			SalaryMin:       intPtr(100000),
		},
		{ID: "partial", Title: "Analyst", RequiredSkills: []string{"sql", "excel"}},
	}

	ranked := m.RankJobs(context.Background(), user, jobs)

	if len(ranked) != 3 {
		t.Fatalf("got %d entries, want 3", len(ranked))
	}
	if ranked[0].Job.ID != "strong" || ranked[1].Job.ID != "partial" || ranked[2].Job.ID != "weak" {
		t.Errorf("order = %s, %s, %s", ranked[0].Job.ID, ranked[1].Job.ID, ranked[2].Job.ID)
	}
	for _, r := range ranked {
		if r.Result.FinalScore > 1.0 {
			t.Errorf("job %s FinalScore = %v, must be <= 1.0", r.Job.ID, r.Result.FinalScore)
		}
	}
	// All four bonuses fire on a base of 1.0; the cap holds it at 1.0.
	if ranked[0].Result.FinalScore != 1.0 {
		t.Errorf("strong job FinalScore = %v, want 1.0", ranked[0].Result.FinalScore)
	}
}

func TestRankJobs_StableTies(t *testing.T) {
	m := NewMatcher(nil, nil, nil)
	user := &models.User{Skills: []string{"go"}}
	jobs := []*models.Job{
		{ID: "first", RequiredSkills: []string{"go"}},
		{ID: "second", RequiredSkills: []string{"go"}},
		{ID: "third", RequiredSkills: []string{"go"}},
	}
	ranked := m.RankJobs(context.Background(), user, jobs)
	for i, want := range []string{"first", "second", "third"} {
		if ranked[i].Job.ID != want {
			t.Errorf("ranked[%d] = %s, want %s (ties must keep encounter order)", i, ranked[i].Job.ID, want)
		}
	}
}

func TestRankJobs_NoTruncation(t *testing.T) {
	m := NewMatcher(nil, nil, nil)
	user := &models.User{Skills: []string{"go"}}
	jobs := make([]*models.Job, 50)
	for i := range jobs {
		jobs[i] = &models.Job{ID: "j", RequiredSkills: []string{"go"}}
	}
	if got := len(m.RankJobs(context.Background(), user, jobs)); got != 50 {
		t.Errorf("RankJobs returned %d entries, want all 50", got)
	}
}
