// src/reporter/reporter.go
package reporter

import (
	"time"

	"github.com/google/uuid"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/validators"
)

// BuildReport aggregates conversion results and findings into the immutable
// report value handed to the external orchestrator. Pure aggregation: no
// side effects beyond constructing the value; persistence belongs to the
// caller.
func BuildReport(results []*models.ConversionResult, findings []models.Finding) *models.Report {
	rep := &models.Report{
		RunID:       uuid.New().String(),
		Verdict:     validators.VerdictFor(findings),
		Findings:    findings,
		TotalFiles:  len(results),
		GeneratedAt: time.Now().UTC(),
	}

	for _, f := range findings {
		switch f.Severity {
		case models.SeverityCritical:
			rep.Counts.Critical++
		case models.SeverityWarning:
			rep.Counts.Warning++
		}
	}

	for _, res := range results {
		rep.TotalRows += res.Rows()
		rep.Files = append(rep.Files, models.FileSummary{
			File:    res.File.Name,
			Year:    res.File.Year,
			Month:   res.File.Month,
			Rows:    res.Rows(),
			Columns: res.Columns(),
		})
	}
	return rep
}
