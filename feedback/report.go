// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package feedback

import "github.com/danielhkuo/party-feedback/models"

// BuildReport computes the admin report over records. records must already
// be in display order (newest first). Averages are 0 for an empty store.
func BuildReport(records []models.FeedbackRecord) models.ReportResponse {
	stats := models.ReportStats{
		Total:       len(records),
		Averages:    make(map[string]float64, len(models.Categories)),
		Departments: []string{},
	}

	sums := make(map[string]int, len(models.Categories))
	seen := make(map[string]bool)
	out := make([]models.ReportRecord, 0, len(records))

	for _, rec := range records {
		for _, c := range models.Categories {
			sums[c] += rec.Ratings.Get(c)
		}
		if nonEmpty(rec.Comment) {
			stats.WithCommentCount++
		}
		if nonEmpty(rec.Name) {
			stats.WithNameCount++
		}
		if nonEmpty(rec.Department) && !seen[*rec.Department] {
			seen[*rec.Department] = true
			stats.Departments = append(stats.Departments, *rec.Department)
		}

		out = append(out, toReportRecord(rec))
	}

	for _, c := range models.Categories {
		if stats.Total == 0 {
			stats.Averages[c] = 0
			continue
		}
		stats.Averages[c] = float64(sums[c]) / float64(stats.Total)
	}

	return models.ReportResponse{Stats: stats, Records: out}
}

func toReportRecord(rec models.FeedbackRecord) models.ReportRecord {
	return models.ReportRecord{
		ID:          rec.ID,
		SubmittedAt: rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Name:        orDefault(rec.Name, models.AnonymousName),
		Department:  orDefault(rec.Department, models.UnspecifiedDepartment),
		Ratings:     rec.Ratings,
		Comment:     orDefault(rec.Comment, ""),
	}
}

func nonEmpty(s *string) bool {
	return s != nil && *s != ""
}

func orDefault(s *string, def string) string {
	if nonEmpty(s) {
		return *s
	}
	return def
}
