package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hyperwork/susume/internal/models"
)

// jsonJob wraps models.Job so that an omitted is_active field defaults to
// active instead of false.
type jsonJob struct {
	models.Job
	IsActive *bool `json:"is_active"`
}

// parseJSON reads job postings from a JSON file holding either a top-level
// array of jobs or an object with a "jobs" array.
func parseJSON(path string) ([]*models.Job, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	var raw []jsonJob
	if err := json.Unmarshal(content, &raw); err != nil {
		var wrapper struct {
			Jobs []jsonJob `json:"jobs"`
		}
		if err := json.Unmarshal(content, &wrapper); err != nil {
			return nil, fmt.Errorf("parse job file: %w", err)
		}
		raw = wrapper.Jobs
	}

	jobs := make([]*models.Job, 0, len(raw))
	for _, r := range raw {
		job := r.Job
		job.IsActive = r.IsActive == nil || *r.IsActive
		jobs = append(jobs, &job)
	}
	return jobs, nil
}
