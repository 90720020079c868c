// src/validators/schema_check.go
package validators

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// checkSchemaConsistency verifies every file's canonical field set against
// the reference: cardinality against the configured expected column count,
// identity against the modal field-name set of the corpus. Field identity
// is compared by canonical name, which is cheap because files sharing a
// header vocabulary share memoized field identities.
func (v *Validator) checkSchemaConsistency(results []*models.ConversionResult) []models.Finding {
	reference := modalFieldSet(results)

	var findings []models.Finding
	for _, res := range results {
		var problems []string

		if res.Columns() != v.expectedColumns {
			problems = append(problems,
				fmt.Sprintf("expected %d columns, found %d", v.expectedColumns, res.Columns()))
		}

		if reference != nil {
			missing, extra := diffFieldSet(reference, res.FieldNames())
			if len(missing) > 0 {
				problems = append(problems, "missing fields: "+strings.Join(missing, ", "))
			}
			if len(extra) > 0 {
				problems = append(problems, "extra fields: "+strings.Join(extra, ", "))
			}
		}

		if len(problems) > 0 {
			findings = append(findings, models.Finding{
				Severity: models.SeverityCritical,
				Check:    models.CheckSchemaConsistency,
				Scope:    res.File.Name,
				Detail:   strings.Join(problems, "; "),
			})
		}
	}
	return findings
}

// modalFieldSet returns the most common canonical field-name set across the
// corpus, used as the identity reference.
func modalFieldSet(results []*models.ConversionResult) map[string]bool {
	type group struct {
		names []string
		count int
	}
	groups := make(map[string]*group)
	for _, res := range results {
		names := res.FieldNames()
		sorted := append([]string(nil), names...)
		sort.Strings(sorted)
		sig := strings.Join(sorted, "\x1f")
		if g, ok := groups[sig]; ok {
			g.count++
		} else {
			groups[sig] = &group{names: sorted, count: 1}
		}
	}

	var modal *group
	for _, g := range groups {
		if modal == nil || g.count > modal.count {
			modal = g
		}
	}
	if modal == nil {
		return nil
	}
	set := make(map[string]bool, len(modal.names))
	for _, n := range modal.names {
		set[n] = true
	}
	return set
}

func diffFieldSet(reference map[string]bool, names []string) (missing, extra []string) {
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
		if !reference[n] {
			extra = append(extra, n)
		}
	}
	for n := range reference {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}
