// src/parsers/meteocontrol/schema.go
package meteocontrol

import (
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// fileSchema maps a decoded header row onto canonical fields. It is derived
// once per distinct header text and shared across every file using that
// vocabulary, so schema comparison between files is identity comparison,
// not string re-parsing.
type fileSchema struct {
	fields []models.CanonicalField
	// fieldCols holds, per field, its column index in the raw row.
	fieldCols []int
	dateCol   int
	timeCol   int
}

// schemaCache memoizes header text -> *fileSchema. Entries never expire:
// the header vocabulary of a ten-year corpus is a handful of variants.
var schemaCache = cache.New(cache.NoExpiration, cache.NoExpiration)

// schemaFor returns the memoized schema for a header row, deriving it on
// first sight. Concurrent converters seeing the same header converge on a
// single identity: the first writer wins and later workers re-read.
func schemaFor(header, unitRow []string, layout models.FormatLayout) (*fileSchema, error) {
	key := strings.Join(header, "\x1f")
	if v, ok := schemaCache.Get(key); ok {
		return v.(*fileSchema), nil
	}

	sch, err := deriveSchema(header, unitRow, layout)
	if err != nil {
		return nil, err
	}
	if err := schemaCache.Add(key, sch, cache.NoExpiration); err != nil {
		if v, ok := schemaCache.Get(key); ok {
			return v.(*fileSchema), nil
		}
	}
	return sch, nil
}

func deriveSchema(header, unitRow []string, layout models.FormatLayout) (*fileSchema, error) {
	sch := &fileSchema{dateCol: -1, timeCol: -1}
	for i, token := range header {
		switch token {
		case layout.DateColumn:
			sch.dateCol = i
		case layout.TimeColumn:
			sch.timeCol = i
		default:
			unit := ""
			if i < len(unitRow) {
				unit = unitRow[i]
			}
			sch.fields = append(sch.fields, FieldFromHeader(token, unit))
			sch.fieldCols = append(sch.fieldCols, i)
		}
	}
	if sch.dateCol < 0 || sch.timeCol < 0 {
		return nil, &models.StructuralError{
			Reason: "identifier columns " + layout.DateColumn + "/" + layout.TimeColumn + " missing from header",
		}
	}
	return sch, nil
}
