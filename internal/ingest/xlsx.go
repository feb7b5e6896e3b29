package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/hyperwork/susume/internal/models"
)

// parseXLSX reads job postings from the first sheet of a spreadsheet. The
// first row is a header; columns are mapped by lowercased header name, so
// column order does not matter. Unknown columns are ignored.
func (i *Ingester) parseXLSX(path string) ([]*models.Job, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	// Maps header row to column index.
	columns := make(map[string]int, len(rows[0]))
	for idx, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = idx
	}
	if _, ok := columns["title"]; !ok {
		return nil, fmt.Errorf("spreadsheet has no title column")
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var jobs []*models.Job
	for rowNum, row := range rows[1:] {
		title := cell(row, "title")
		if title == "" {
			i.logger.Warn("skipping spreadsheet row without title", zap.Int("row", rowNum+2))
			continue
		}

		job := &models.Job{
			Title:           title,
			Company:         cell(row, "company"),
			Location:        cell(row, "location"),
			Description:     cell(row, "description"),
			RequiredSkills:  splitList(cell(row, "required_skills")),
			PreferredSkills: splitList(cell(row, "preferred_skills")),
			EmploymentType:  cell(row, "employment_type"),
			ExperienceLevel: cell(row, "experience_level"),
			SalaryCurrency:  cell(row, "salary_currency"),
			Category:        cell(row, "category"),
			Industry:        cell(row, "industry"),
			ApplicationURL:  cell(row, "application_url"),
			Remote:          parseBool(cell(row, "remote")),
			IsActive:        true,
		}
		job.SalaryMin = parseOptionalInt(cell(row, "salary_min"))
		job.SalaryMax = parseOptionalInt(cell(row, "salary_max"))
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// splitList splits a comma- or semicolon-separated cell into trimmed tokens.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

// parseOptionalInt returns nil for empty or malformed cells; a salary column
// that cannot be parsed means "not disclosed", not an import failure.
func parseOptionalInt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return nil
	}
	return &n
}
