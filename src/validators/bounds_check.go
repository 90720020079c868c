// src/validators/bounds_check.go
package validators

import (
	"fmt"
	"strings"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// maxBoundsSamples caps the offending values carried in one finding.
const maxBoundsSamples = 3

// checkPhysicalBounds verifies every non-null value of a bounded field kind
// against its plausibility envelope. One finding per file+field, with
// below/above counts and sample values. Unknown-kind columns and kinds
// without an envelope entry (currents, cumulative energy) are skipped.
func (v *Validator) checkPhysicalBounds(results []*models.ConversionResult) []models.Finding {
	var findings []models.Finding

	for _, res := range results {
		for _, field := range res.Fields {
			bound, ok := v.bounds[field.Kind]
			if !ok {
				continue
			}

			below, above := 0, 0
			var samples []string
			for _, rec := range res.Records {
				val := rec.Value(field.Name)
				if val == nil {
					continue
				}
				if *val < bound.Min {
					below++
				} else if *val > bound.Max {
					above++
				} else {
					continue
				}
				if len(samples) < maxBoundsSamples {
					samples = append(samples,
						fmt.Sprintf("%g at %s", *val, rec.Timestamp.Format("2006-01-02 15:04:05")))
				}
			}

			if below == 0 && above == 0 {
				continue
			}
			detail := fmt.Sprintf("%s: %d below %g%s, %d above %g%s",
				bound.Desc, below, bound.Min, bound.Unit, above, bound.Max, bound.Unit)
			if len(samples) > 0 {
				detail += "; samples: " + strings.Join(samples, ", ")
			}
			findings = append(findings, models.Finding{
				Severity: models.SeverityWarning,
				Check:    models.CheckPhysicalBounds,
				Scope:    res.File.Name + "|" + field.Name,
				Detail:   detail,
			})
		}
	}
	return findings
}
