package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hyperwork/susume/internal/search"
	"github.com/hyperwork/susume/internal/store"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	st, err := store.NewSQLiteStore(filepath.Join(dir, "seed.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	index, err := search.NewJobIndex(filepath.Join(dir, "jobs.bleve"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { index.Close() })

	ctx := context.Background()
	counts, err := Run(ctx, st, index, nil)
	if err != nil {
		t.Fatal(err)
	}
	if counts.Skills != 20 || counts.Users != 3 || counts.Jobs != 8 {
		t.Errorf("counts = %+v, want 20 skills, 3 users, 8 jobs", counts)
	}

	user, err := st.GetUserByUsername(ctx, "jane_smith")
	if err != nil {
		t.Fatal(err)
	}
	if user.DesiredRole != "Data Scientist" || user.Points != 100 {
		t.Errorf("user = %+v", user)
	}

	skill, err := st.GetSkillByName(ctx, "machine learning")
	if err != nil {
		t.Fatal(err)
	}
	if skill.Category != "AI/ML" {
		t.Errorf("skill.Category = %q", skill.Category)
	}

	jobs, err := st.ListActiveJobs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 8 {
		t.Errorf("active jobs = %d, want 8", len(jobs))
	}

	n, err := index.DocCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Errorf("indexed docs = %d, want 8", n)
	}

	hits, err := index.Search(ctx, "Python", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) == 0 {
		t.Error("search over seeded jobs returned nothing")
	}
}

func TestRun_SecondRunFails(t *testing.T) {
	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "seed.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	if _, err := Run(ctx, st, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(ctx, st, nil, nil); err == nil {
		t.Error("re-seeding a populated store must fail on unique constraints")
	}
}
