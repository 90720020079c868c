// src/parsers/meteocontrol/filename.go
package meteocontrol

import (
	"regexp"
	"strconv"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/utils"
)

// filenameRe matches the export naming convention, e.g.
// "2013 02 Febrero Todos los Inversores.csv".
var filenameRe = regexp.MustCompile(`^(\d{4}) (\d{2}) (\p{L}+) Todos los Inversores\.csv$`)

// ParseFilename extracts the declared period from an export filename.
// The month name must be a known Spanish month; the numeric month is
// authoritative.
func ParseFilename(name string) (models.SourceFile, bool) {
	m := filenameRe.FindStringSubmatch(name)
	if m == nil {
		return models.SourceFile{}, false
	}
	if _, ok := utils.MonthFromSpanish(m[3]); !ok {
		return models.SourceFile{}, false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return models.SourceFile{}, false
	}
	return models.SourceFile{
		Name:      name,
		Year:      year,
		Month:     month,
		MonthName: m[3],
	}, true
}
