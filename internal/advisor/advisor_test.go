package advisor

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/hyperwork/susume/internal/models"
)

// fakeGenerator returns a canned reply or error, recording prompts.
type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAdvise_IncludesProfileContext(t *testing.T) {
	gen := &fakeGenerator{reply: "Learn Go."}
	a := NewAdvisor(gen, nil, nil)

	user := &models.User{
		Skills:          []string{"Python", "SQL"},
		ExperienceLevel: "Mid",
		DesiredRole:     "Backend Engineer",
	}
	reply := a.Advise(context.Background(), "", "How do I become a backend engineer?", user)
	if reply != "Learn Go." {
		t.Errorf("reply = %q", reply)
	}

	prompt := gen.prompts[0]
	for _, want := range []string{"Skills: Python, SQL", "Experience Level: Mid", "Desired Role: Backend Engineer"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAdvise_SessionHistory(t *testing.T) {
	gen := &fakeGenerator{reply: "Answer."}
	sessions := NewMemorySessionStore()
	a := NewAdvisor(gen, sessions, nil)
	ctx := context.Background()

	id := sessions.NewSession()
	a.Advise(ctx, id, "First question", nil)
	a.Advise(ctx, id, "Second question", nil)

	// Second prompt carries the first exchange.
	second := gen.prompts[1]
	if !strings.Contains(second, "User: First question") || !strings.Contains(second, "Assistant: Answer.") {
		t.Errorf("second prompt missing history:\n%s", second)
	}

	history := sessions.History(id)
	if len(history) != 4 {
		t.Errorf("history = %d turns, want 4", len(history))
	}
}

func TestAdvise_GeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	sessions := NewMemorySessionStore()
	a := NewAdvisor(gen, sessions, nil)

	id := sessions.NewSession()
	reply := a.Advise(context.Background(), id, "Help?", nil)
	if reply != unavailableReply {
		t.Errorf("reply = %q, want the unavailable reply", reply)
	}
	if len(sessions.History(id)) != 0 {
		t.Error("failed exchange must not be recorded in the session")
	}
}

func TestSessionStore_TrimsToLastTen(t *testing.T) {
	s := NewMemorySessionStore()
	id := s.NewSession()
	for i := 0; i < 8; i++ {
		s.Append(id, Turn{Role: "user", Content: "q"}, Turn{Role: "assistant", Content: "a"})
	}
	history := s.History(id)
	if len(history) != maxSessionTurns {
		t.Errorf("history = %d turns, want %d", len(history), maxSessionTurns)
	}

	s.Clear(id)
	if len(s.History(id)) != 0 {
		t.Error("Clear did not remove the session")
	}
}

func TestSuggestSkills(t *testing.T) {
	gen := &fakeGenerator{reply: "- Go\n- Kubernetes\n\n* Terraform\n  Docker  \n"}
	a := NewAdvisor(gen, nil, nil)

	got := a.SuggestSkills(context.Background(), "Platform Engineer", "Build infra.")
	want := []string{"Go", "Kubernetes", "Terraform", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SuggestSkills = %v, want %v", got, want)
	}
}

func TestSuggestSkills_CapsAtTen(t *testing.T) {
	lines := make([]string, 15)
	for i := range lines {
		lines[i] = "Skill"
	}
	gen := &fakeGenerator{reply: strings.Join(lines, "\n")}
	a := NewAdvisor(gen, nil, nil)

	if got := a.SuggestSkills(context.Background(), "T", "D"); len(got) != 10 {
		t.Errorf("got %d skills, want 10", len(got))
	}
}

func TestSuggestSkills_Failure(t *testing.T) {
	a := NewAdvisor(&fakeGenerator{err: errors.New("down")}, nil, nil)
	if got := a.SuggestSkills(context.Background(), "T", "D"); got != nil {
		t.Errorf("SuggestSkills on failure = %v, want nil", got)
	}
}

func TestAnalyzeSkillGap(t *testing.T) {
	gen := &fakeGenerator{reply: "Focus on Kubernetes first."}
	a := NewAdvisor(gen, nil, nil)
	ctx := context.Background()

	got := a.AnalyzeSkillGap(ctx, []string{"go"}, []string{"go", "kubernetes"}, []string{"kubernetes"})
	if got.Analysis != "Focus on Kubernetes first." {
		t.Errorf("Analysis = %q", got.Analysis)
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"kubernetes"}) {
		t.Errorf("MissingSkills = %v", got.MissingSkills)
	}

	// No gap short-circuits without calling the model.
	calls := len(gen.prompts)
	got = a.AnalyzeSkillGap(ctx, []string{"go"}, []string{"go"}, nil)
	if got.Analysis != "You have all the required skills!" || len(gen.prompts) != calls {
		t.Errorf("no-gap analysis = %+v, prompts = %d", got, len(gen.prompts))
	}
}

func TestAnalyzeSkillGap_FallsBackOnFailure(t *testing.T) {
	a := NewAdvisor(&fakeGenerator{err: errors.New("down")}, nil, nil)

	got := a.AnalyzeSkillGap(context.Background(), []string{"go"}, []string{"go", "rust"}, []string{"rust"})
	if !strings.Contains(got.Analysis, "rust") {
		t.Errorf("fallback analysis should name the missing skills: %q", got.Analysis)
	}
	if !reflect.DeepEqual(got.MissingSkills, []string{"rust"}) {
		t.Errorf("MissingSkills = %v", got.MissingSkills)
	}
}

func TestLearningPath_Failure(t *testing.T) {
	a := NewAdvisor(&fakeGenerator{err: errors.New("down")}, nil, nil)
	got := a.LearningPath(context.Background(), []string{"go"}, []string{"rust"})
	if got != "Unable to generate learning path at this time." {
		t.Errorf("LearningPath fallback = %q", got)
	}
}
