// src/validators/timestamp_check.go
package validators

import (
	"fmt"
	"strings"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// nextMonthTolerance is the number of rows from the start of the following
// month the exporter is known to append to each monthly file.
const nextMonthTolerance = 2

// checkTimestampIntegrity flags unparsable, duplicate or decreasing
// timestamps, and timestamps outside the file's declared period. All
// findings here are warnings: they reflect documented faults of the source
// instrumentation, not pipeline defects. A labeled sampling-regime change
// is not an anomaly and produces nothing here.
func (v *Validator) checkTimestampIntegrity(results []*models.ConversionResult) []models.Finding {
	var findings []models.Finding

	for _, res := range results {
		if res.DroppedRecords > 0 {
			detail := fmt.Sprintf("%d records dropped for unparsable timestamps", res.DroppedRecords)
			if len(res.DroppedSamples) > 0 {
				detail += "; samples: " + strings.Join(res.DroppedSamples, " | ")
			}
			findings = append(findings, warning(models.CheckTimestampIntegrity, res.File.Name, detail))
		}

		if f, ok := monotonicityFinding(res); ok {
			findings = append(findings, f)
		}
		if f, ok := v.periodFinding(res); ok {
			findings = append(findings, f)
		}
	}
	return findings
}

// monotonicityFinding enforces the record-sequence invariant: timestamps
// strictly increase within a file.
func monotonicityFinding(res *models.ConversionResult) (models.Finding, bool) {
	duplicates, decreasing := 0, 0
	firstOffense := ""
	for i := 1; i < len(res.Records); i++ {
		prev, cur := res.Records[i-1].Timestamp, res.Records[i].Timestamp
		if cur.Equal(prev) {
			duplicates++
		} else if cur.Before(prev) {
			decreasing++
		} else {
			continue
		}
		if firstOffense == "" {
			firstOffense = fmt.Sprintf("%s followed by %s",
				prev.Format("2006-01-02 15:04:05"), cur.Format("2006-01-02 15:04:05"))
		}
	}
	if duplicates == 0 && decreasing == 0 {
		return models.Finding{}, false
	}
	return warning(models.CheckTimestampIntegrity, res.File.Name,
		fmt.Sprintf("non-monotonic sequence: %d duplicate, %d decreasing timestamps; first at %s",
			duplicates, decreasing, firstOffense)), true
}

// periodFinding compares record timestamps against the file's declared
// (year, month), tolerating the exporter's trailing next-month rows, and
// checks the declared period against the corpus date range.
func (v *Validator) periodFinding(res *models.ConversionResult) (models.Finding, bool) {
	var problems []string

	if res.File.Year < v.startYear || res.File.Year > v.endYear {
		problems = append(problems,
			fmt.Sprintf("declared year %d outside corpus range %d-%d", res.File.Year, v.startYear, v.endYear))
	}

	wrongYear, wrongMonth := 0, 0
	for _, rec := range res.Records {
		if rec.Timestamp.Year() != res.File.Year {
			wrongYear++
		}
		if int(rec.Timestamp.Month()) != res.File.Month {
			wrongMonth++
		}
	}
	if wrongYear > nextMonthTolerance || wrongMonth > nextMonthTolerance {
		problems = append(problems,
			fmt.Sprintf("%d timestamps in wrong year, %d in wrong month (>%d is unexpected)",
				wrongYear, wrongMonth, nextMonthTolerance))
	}

	if len(problems) == 0 {
		return models.Finding{}, false
	}
	return warning(models.CheckTimestampIntegrity, res.File.Name, strings.Join(problems, "; ")), true
}

func warning(check models.CheckKind, scope, detail string) models.Finding {
	return models.Finding{
		Severity: models.SeverityWarning,
		Check:    check,
		Scope:    scope,
		Detail:   detail,
	}
}
