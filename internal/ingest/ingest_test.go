package ingest

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hyperwork/susume/internal/search"
	"github.com/hyperwork/susume/internal/store"
)

func newTestIngester(t *testing.T) (*Ingester, store.Store, *search.JobIndex) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.NewSQLiteStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	idx, err := search.NewJobIndex(filepath.Join(dir, "jobs.bleve"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		st.Close()
		idx.Close()
	})
	return NewIngester(st, idx, nil), st, idx
}

func TestImportJSON(t *testing.T) {
	ing, st, idx := newTestIngester(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "jobs.json")
	data := `[
		{"title": "Backend Engineer", "company": "Acme", "required_skills": ["Go", "SQL"]},
		{"title": "Old Role", "company": "Acme", "is_active": false}
	]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := ing.ImportFile(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Errorf("imported %d jobs, want 2", n)
	}

	active, err := st.ListActiveJobs(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].Title != "Backend Engineer" {
		t.Errorf("active jobs = %+v, want only Backend Engineer", active)
	}
	if active[0].ID == "" {
		t.Error("imported job should get a generated ID")
	}
	if !reflect.DeepEqual(active[0].RequiredSkills, []string{"Go", "SQL"}) {
		t.Errorf("RequiredSkills = %v", active[0].RequiredSkills)
	}

	count, _ := idx.DocCount()
	if count != 2 {
		t.Errorf("indexed %d jobs, want 2", count)
	}
}

func TestImportJSON_WrapperObject(t *testing.T) {
	ing, _, _ := newTestIngester(t)

	path := filepath.Join(t.TempDir(), "jobs.json")
	data := `{"jobs": [{"title": "Data Analyst"}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	n, err := ing.ImportFile(context.Background(), path)
	if err != nil || n != 1 {
		t.Errorf("ImportFile = %d, %v; want 1, nil", n, err)
	}
}

func TestImportXLSX(t *testing.T) {
	ing, st, _ := newTestIngester(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "jobs.xlsx")
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"title", "company", "location", "remote", "required_skills", "salary_min"},
		{"Platform Engineer", "Initech", "Berlin", "yes", "Kubernetes; Terraform", "90000"},
		{"", "NoTitle Inc", "", "", "", ""}, // skipped
		{"Analyst", "Initech", "", "no", "SQL", "not-a-number"},
	}
	for i, row := range rows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	n, err := ing.ImportFile(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("imported %d jobs, want 2 (row without title skipped)", n)
	}

	jobs, _ := st.ListActiveJobs(ctx)
	byTitle := make(map[string]bool)
	for _, j := range jobs {
		byTitle[j.Title] = true
		switch j.Title {
		case "Platform Engineer":
			if !j.Remote || len(j.RequiredSkills) != 2 || j.SalaryMin == nil || *j.SalaryMin != 90000 {
				t.Errorf("Platform Engineer parsed wrong: %+v", j)
			}
		case "Analyst":
			if j.SalaryMin != nil {
				t.Errorf("malformed salary should parse to nil, got %v", *j.SalaryMin)
			}
		}
	}
	if !byTitle["Platform Engineer"] || !byTitle["Analyst"] {
		t.Errorf("jobs = %v", byTitle)
	}
}

func TestImportUnsupportedFormat(t *testing.T) {
	ing, _, _ := newTestIngester(t)
	if _, err := ing.ImportFile(context.Background(), "jobs.csv"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Go, SQL", []string{"Go", "SQL"}},
		{"Go; SQL;", []string{"Go", "SQL"}},
		{" Go ", []string{"Go"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
