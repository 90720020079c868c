// src/parsers/interfaces.go
package parsers

import (
	"io"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// Parser converts one raw export into a canonical record set. Parsing one
// file is independent of all others; implementations must be safe for
// concurrent use.
type Parser interface {
	Parse(file io.Reader) (*models.ConversionResult, error)
}
