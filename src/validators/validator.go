// src/validators/validator.go
package validators

import (
	"fmt"

	"github.com/sergio-corredor-llopis/solar-analytics/src/logger"
	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// Validator runs the quality gate over a fully converted corpus. The split
// between Critical and Warning is deliberate: structural defects (wrong
// file count, incompatible schema, empty output) mean the pipeline itself
// malfunctioned and must block downstream use, while timestamp and
// physical-bounds anomalies are known faults of the source instrumentation
// and are reported without blocking.
type Validator struct {
	expectedFiles   int
	expectedColumns int
	bounds          models.BoundsTable
	startYear       int
	endYear         int
}

func NewValidator(expectedFiles, expectedColumns int, bounds models.BoundsTable, startYear, endYear int) *Validator {
	return &Validator{
		expectedFiles:   expectedFiles,
		expectedColumns: expectedColumns,
		bounds:          bounds,
		startYear:       startYear,
		endYear:         endYear,
	}
}

// Validate runs all five checks and returns the findings. It is a
// synchronization barrier: it must only be called once every file's
// conversion result is available, because the file-count and
// schema-consistency checks need the complete corpus.
func (v *Validator) Validate(results []*models.ConversionResult) []models.Finding {
	var findings []models.Finding
	findings = append(findings, v.checkFileCount(results)...)
	findings = append(findings, v.checkSchemaConsistency(results)...)
	findings = append(findings, v.checkEmptyFiles(results)...)
	findings = append(findings, v.checkTimestampIntegrity(results)...)
	findings = append(findings, v.checkPhysicalBounds(results)...)

	if logger.L != nil {
		logger.L.Info("Validation complete",
			"files", len(results),
			"findings", len(findings),
			"verdict", string(VerdictFor(findings)))
	}
	return findings
}

// VerdictFor applies the verdict rule: any Critical finding blocks the run;
// otherwise warnings downgrade a pass to passed-with-warnings.
func VerdictFor(findings []models.Finding) models.Verdict {
	warnings := false
	for _, f := range findings {
		switch f.Severity {
		case models.SeverityCritical:
			return models.VerdictBlocked
		case models.SeverityWarning:
			warnings = true
		}
	}
	if warnings {
		return models.VerdictPassedWithWarnings
	}
	return models.VerdictPassed
}

// checkFileCount verifies the corpus arrived whole: the number of
// successfully converted files must equal the configured corpus size.
func (v *Validator) checkFileCount(results []*models.ConversionResult) []models.Finding {
	if len(results) == v.expectedFiles {
		return nil
	}
	return []models.Finding{{
		Severity: models.SeverityCritical,
		Check:    models.CheckFileCount,
		Scope:    models.ScopeCorpus,
		Detail:   fmt.Sprintf("file count mismatch: expected %d, found %d", v.expectedFiles, len(results)),
	}}
}

// checkEmptyFiles flags any file that contributed zero canonical records.
func (v *Validator) checkEmptyFiles(results []*models.ConversionResult) []models.Finding {
	var findings []models.Finding
	for _, res := range results {
		if res.Rows() == 0 {
			findings = append(findings, models.Finding{
				Severity: models.SeverityCritical,
				Check:    models.CheckEmptyFile,
				Scope:    res.File.Name,
				Detail:   "empty file (0 canonical records)",
			})
		}
	}
	return findings
}
