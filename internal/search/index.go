// Package search provides Bleve keyword search over job postings.
package search

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	blevequery "github.com/blevesearch/bleve/v2/search/query"

	"github.com/hyperwork/susume/internal/models"
)

// Result is a single job search hit.
type Result struct {
	JobID string
	Score float64
}

// jobDoc is the indexed shape of a job. Skills are joined into one text field
// so multi-word skills still tokenize normally.
type jobDoc struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
}

// JobIndex is a Bleve index over job postings.
type JobIndex struct {
	index bleve.Index
}

// NewJobIndex creates or opens a Bleve index at path. An existing index is
// reused; remove the directory to force a full re-index after a mapping
// change.
func NewJobIndex(path string) (*JobIndex, error) {
	if _, err := os.Stat(path); err == nil {
		index, openErr := bleve.Open(path)
		if openErr != nil {
			return nil, fmt.Errorf("failed to open job index: %w", openErr)
		}
		return &JobIndex{index: index}, nil
	}

	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	// Standard analyzer: lowercase + tokenize, no stemming, so "Go" and
	// "golang" stay distinct terms.
	textFieldMapping := bleve.NewTextFieldMapping()
	textFieldMapping.Analyzer = standard.Name
	for _, field := range []string{"title", "company", "location", "description", "skills"} {
		docMapping.AddFieldMappingsAt(field, textFieldMapping)
	}
	im.DefaultMapping = docMapping

	index, err := bleve.New(path, im)
	if err != nil {
		return nil, fmt.Errorf("failed to create job index: %w", err)
	}
	return &JobIndex{index: index}, nil
}

// Index adds or replaces a job in the index.
func (j *JobIndex) Index(ctx context.Context, job *models.Job) error {
	doc := jobDoc{
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		Skills:      strings.Join(append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...), " "),
	}
	return j.index.Index(job.ID, doc)
}

// IndexBatch adds or replaces multiple jobs in one batch.
func (j *JobIndex) IndexBatch(ctx context.Context, jobs []*models.Job) error {
	batch := j.index.NewBatch()
	for _, job := range jobs {
		doc := jobDoc{
			Title:       job.Title,
			Company:     job.Company,
			Location:    job.Location,
			Description: job.Description,
			Skills:      strings.Join(append(append([]string{}, job.RequiredSkills...), job.PreferredSkills...), " "),
		}
		if err := batch.Index(job.ID, doc); err != nil {
			return err
		}
	}
	return j.index.Batch(batch)
}

// Search runs a match query over all job fields, with title and skill matches
// boosted, and returns up to limit scored job IDs.
func (j *JobIndex) Search(ctx context.Context, query string, limit int) ([]*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	all := bleve.NewMatchQuery(query)

	title := bleve.NewMatchQuery(query)
	title.SetField("title")
	title.SetBoost(2.0)

	skills := bleve.NewMatchQuery(query)
	skills.SetField("skills")
	skills.SetBoost(1.5)

	q := bleve.NewDisjunctionQuery([]blevequery.Query{all, title, skills}...)

	req := bleve.NewSearchRequest(q)
	req.Size = limit
	results, err := j.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("job search failed: %w", err)
	}

	out := make([]*Result, len(results.Hits))
	for i, hit := range results.Hits {
		out[i] = &Result{JobID: hit.ID, Score: hit.Score}
	}
	return out, nil
}

// Delete removes a job from the index.
func (j *JobIndex) Delete(ctx context.Context, jobID string) error {
	return j.index.Delete(jobID)
}

// DocCount returns the number of indexed jobs.
func (j *JobIndex) DocCount() (uint64, error) {
	return j.index.DocCount()
}

// Close closes the index.
func (j *JobIndex) Close() error {
	return j.index.Close()
}
