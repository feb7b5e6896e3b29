// Package cli provides CLI output utilities for Susume.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hyperwork/susume/internal/models"
	"github.com/hyperwork/susume/internal/recommend"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat maps a -output flag value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

// RecommendationItem pairs a recommendation with its job posting for display.
type RecommendationItem struct {
	Recommendation *models.Recommendation `json:"recommendation"`
	Job            *models.Job            `json:"job"`
}

// WriteRecommendations writes recommendations to w in the given format.
func WriteRecommendations(w io.Writer, items []*RecommendationItem, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No recommendations. Run `susume recommend -refresh` after importing jobs.")
		return nil
	}
	for i, item := range items {
		rec := item.Recommendation
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "#%d  Score: %.3f", i+1, rec.MatchScore)
		var flags []string
		if rec.Viewed {
			flags = append(flags, "viewed")
		}
		if rec.Saved {
			flags = append(flags, "saved")
		}
		if rec.Applied {
			flags = append(flags, "applied")
		}
		if len(flags) > 0 {
			fmt.Fprintf(w, "  [%s]", strings.Join(flags, ", "))
		}
		fmt.Fprintln(w)
		if item.Job != nil {
			fmt.Fprintf(w, "%s at %s", item.Job.Title, item.Job.Company)
			if item.Job.Location != "" {
				fmt.Fprintf(w, " (%s)", item.Job.Location)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Job ID: %s\n", rec.JobID)
		if len(rec.MissingSkills) > 0 {
			fmt.Fprintf(w, "Missing: %s\n", strings.Join(rec.MissingSkills, ", "))
		}
		if rec.Explanation != "" {
			fmt.Fprintf(w, "\n%s\n", rec.Explanation)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// WriteSkillGap writes a skill-gap report to w in the given format.
func WriteSkillGap(w io.Writer, report *recommend.SkillGapReport, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "%s at %s\n", report.Job.Title, report.Job.Company)
	fmt.Fprintf(w, "Match score: %.3f  Gap: %.2f%%\n", report.Result.Score, report.Result.SkillGapPercentage)
	if len(report.Result.MatchedSkills) > 0 {
		fmt.Fprintf(w, "Matched: %s\n", strings.Join(report.Result.MatchedSkills, ", "))
	}
	if len(report.Result.MissingSkills) > 0 {
		fmt.Fprintf(w, "Missing: %s\n", strings.Join(report.Result.MissingSkills, ", "))
	}
	if report.Analysis != "" {
		fmt.Fprintf(w, "\n%s\n", report.Analysis)
	}
	if report.LearningPath != "" {
		fmt.Fprintf(w, "\nLearning path:\n%s\n", report.LearningPath)
	}
	return nil
}

// JobHit is a scored search hit joined with its job posting.
type JobHit struct {
	Score float64     `json:"score"`
	Job   *models.Job `json:"job"`
}

// WriteJobHits writes job search hits to w in the given format.
func WriteJobHits(w io.Writer, hits []*JobHit, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Fprintln(w, "No matching jobs.")
		return nil
	}
	fmt.Fprintf(w, "\nFound %d job(s)\n\n", len(hits))
	for i, hit := range hits {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Rank: %d | Score: %.4f\n", i+1, hit.Score)
		fmt.Fprintf(w, "ID: %s\n", hit.Job.ID)
		fmt.Fprintf(w, "%s at %s", hit.Job.Title, hit.Job.Company)
		if hit.Job.Location != "" {
			fmt.Fprintf(w, " (%s)", hit.Job.Location)
		}
		fmt.Fprintln(w)
		if len(hit.Job.RequiredSkills) > 0 {
			fmt.Fprintf(w, "Skills: %s\n", strings.Join(hit.Job.RequiredSkills, ", "))
		}
		if hit.Job.Description != "" {
			fmt.Fprintf(w, "\n%s\n", Truncate(hit.Job.Description, 200))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Truncate truncates s to maxLen and appends "..." if truncated.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// TruncateWords returns up to maxWords from the space-separated string.
func TruncateWords(s string, maxWords int) string {
	words := strings.Fields(s)
	if len(words) <= maxWords {
		return s
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
