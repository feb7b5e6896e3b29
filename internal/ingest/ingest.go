// Package ingest imports job postings from spreadsheet and JSON files into the
// store and the search index.
package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/internal/search"
	"github.com/hyperwork/susume/internal/store"
)

// Ingester imports job files. The search index is optional; a nil index means
// jobs are only persisted.
type Ingester struct {
	store  store.Store
	index  *search.JobIndex
	logger *zap.Logger
}

// NewIngester creates an ingester.
func NewIngester(st store.Store, index *search.JobIndex, logger *zap.Logger) *Ingester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ingester{store: st, index: index, logger: logger}
}

// ImportFile imports jobs from a .xlsx or .json file, returning the number of
// jobs imported. Rows that cannot be parsed are skipped with a warning rather
// than failing the whole file.
func (i *Ingester) ImportFile(ctx context.Context, path string) (int, error) {
	var jobs []*models.Job
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx":
		jobs, err = i.parseXLSX(path)
	case ".json":
		jobs, err = parseJSON(path)
	default:
		return 0, fmt.Errorf("unsupported job file format: %s", ext)
	}
	if err != nil {
		return 0, err
	}
	if len(jobs) == 0 {
		return 0, nil
	}

	for _, job := range jobs {
		if job.ID == "" {
			job.ID = uuid.NewString()
		}
	}

	if err := i.store.BatchCreateJobs(ctx, jobs); err != nil {
		return 0, fmt.Errorf("persisting jobs: %w", err)
	}
	if i.index != nil {
		if err := i.index.IndexBatch(ctx, jobs); err != nil {
			return 0, fmt.Errorf("indexing jobs: %w", err)
		}
	}

	i.logger.Info("imported jobs",
		zap.String("file", path),
		zap.Int("count", len(jobs)),
	)
	return len(jobs), nil
}
