// src/parsers/meteocontrol/parser.go
package meteocontrol

import (
	"io"
	"strconv"
	"strings"

	"github.com/sergio-corredor-llopis/solar-analytics/src/logger"
	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/utils"
)

// maxDroppedSamples caps the offending tokens carried into findings.
const maxDroppedSamples = 5

// Parser converts one monitoring export into a canonical record set.
// It is stateless apart from the layout; one instance is safe for
// concurrent use across files.
type Parser struct {
	layout models.FormatLayout
}

func NewParser(layout models.FormatLayout) *Parser {
	return &Parser{layout: layout}
}

// Parse runs decode -> schema derivation -> row normalization. Records with
// unparsable timestamps are dropped and counted: the timestamp is the
// record's identity key, so a null timestamp is never retained.
func (p *Parser) Parse(file io.Reader) (*models.ConversionResult, error) {
	decoded, err := Decode(file, p.layout)
	if err != nil {
		return nil, err
	}

	sch, err := schemaFor(decoded.Header, decoded.UnitRow(), p.layout)
	if err != nil {
		return nil, err
	}

	res := &models.ConversionResult{
		Fields:     sch.fields,
		RawColumns: len(decoded.Header),
		Records:    make([]models.CanonicalRecord, 0, len(decoded.Rows)),
	}

	for i, row := range decoded.Rows {
		line := p.layout.DataStartLine + i

		dateTok, timeTok := cellAt(row, sch.dateCol), cellAt(row, sch.timeCol)
		ts, err := utils.CombineDateTime(dateTok, timeTok)
		if err != nil {
			perr := &models.TimestampParseError{Line: line, DateToken: dateTok, TimeToken: timeTok, Err: err}
			res.DroppedRecords++
			if len(res.DroppedSamples) < maxDroppedSamples {
				res.DroppedSamples = append(res.DroppedSamples, perr.Error())
			}
			if logger.L != nil {
				logger.L.Debug("Dropping record with unparsable timestamp", "line", line, "date", dateTok, "time", timeTok)
			}
			continue
		}

		values := make(map[string]*float64, len(sch.fields))
		for j, f := range sch.fields {
			values[f.Name] = parseValue(cellAt(row, sch.fieldCols[j]), p.layout.MissingToken)
		}
		res.Records = append(res.Records, models.CanonicalRecord{Timestamp: ts, Values: values})
	}

	return res, nil
}

// parseValue normalizes one raw numeric token. The format uses comma
// decimals with dot thousands separators ("1.234,56" -> 1234.56); a lone
// dash is the exporter's missing-value sentinel. Anything unparsable is
// treated as missing rather than failing the record.
func parseValue(token, missingToken string) *float64 {
	token = strings.TrimSpace(token)
	if token == "" || token == missingToken {
		return nil
	}
	normalized := strings.ReplaceAll(token, ".", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return nil
	}
	return &v
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
