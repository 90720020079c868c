// src/parsers/factory.go
package parsers

import (
	"fmt"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/parsers/meteocontrol"
)

// GetParser returns the parser for a source format family. The corpus is a
// single well-characterized family today; the factory keeps the door open
// for other vintages without touching the conversion service.
func GetParser(source string, layout models.FormatLayout) (Parser, error) {
	switch source {
	case "meteocontrol":
		return meteocontrol.NewParser(layout), nil
	default:
		return nil, fmt.Errorf("no parser available for source: %s", source)
	}
}
