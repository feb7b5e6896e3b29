package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hyperwork/susume/internal/models"
)

func newTestIndex(t *testing.T) *JobIndex {
	t.Helper()
	idx, err := NewJobIndex(filepath.Join(t.TempDir(), "jobs.bleve"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestJobIndex_SearchByTitleAndSkills(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	jobs := []*models.Job{
		{ID: "j1", Title: "Backend Engineer", Company: "Acme", RequiredSkills: []string{"Go", "PostgreSQL"}},
		{ID: "j2", Title: "Frontend Developer", Company: "Acme", RequiredSkills: []string{"JavaScript", "React"}},
		{ID: "j3", Title: "Data Analyst", Company: "Initech", Description: "SQL reporting and dashboards"},
	}
	if err := idx.IndexBatch(ctx, jobs); err != nil {
		t.Fatal(err)
	}

	n, _ := idx.DocCount()
	if n != 3 {
		t.Fatalf("DocCount = %d, want 3", n)
	}

	hits, err := idx.Search(ctx, "backend", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].JobID != "j1" {
		t.Errorf("backend search = %+v, want j1", hits)
	}

	hits, err = idx.Search(ctx, "react", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].JobID != "j2" {
		t.Errorf("skill search = %+v, want j2", hits)
	}

	hits, err = idx.Search(ctx, "sql", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 1 || hits[0].JobID != "j3" {
		t.Errorf("description search = %+v, want j3", hits)
	}
}

func TestJobIndex_EmptyQuery(t *testing.T) {
	idx := newTestIndex(t)
	hits, err := idx.Search(context.Background(), "   ", 10)
	if err != nil || hits != nil {
		t.Errorf("empty query = %v, %v; want nil, nil", hits, err)
	}
}

func TestJobIndex_Delete(t *testing.T) {
	idx := newTestIndex(t)
	ctx := context.Background()

	job := &models.Job{ID: "j1", Title: "Platform Engineer", RequiredSkills: []string{"Kubernetes"}}
	if err := idx.Index(ctx, job); err != nil {
		t.Fatal(err)
	}
	if err := idx.Delete(ctx, "j1"); err != nil {
		t.Fatal(err)
	}
	hits, err := idx.Search(ctx, "platform", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 0 {
		t.Errorf("search after delete = %+v, want none", hits)
	}
}

func TestJobIndex_Reopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.bleve")
	ctx := context.Background()

	idx, err := NewJobIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = idx.Index(ctx, &models.Job{ID: "j1", Title: "SRE"})
	if err := idx.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewJobIndex(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()
	n, _ := reopened.DocCount()
	if n != 1 {
		t.Errorf("DocCount after reopen = %d, want 1", n)
	}
}
