// src/services/interfaces.go
package services

import (
	"context"
	"errors"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// ErrConversionFailed wraps unexpected (non file-scoped) conversion errors.
var ErrConversionFailed = errors.New("conversion failed")

// ConversionOutcome is everything one conversion pass produced: the
// results of every file that converted, plus Critical findings for files
// that failed structurally. Partial progress is never thrown away silently.
type ConversionOutcome struct {
	Results  []*models.ConversionResult
	Findings []models.Finding
}

// ConversionService discovers the monthly exports and converts them to
// canonical record sets.
type ConversionService interface {
	// Discover matches source files by naming pattern, ordered by period.
	// It fails fast with a DiscoveryError when the matched count is not
	// plausible, before any file I/O.
	Discover() ([]models.SourceFile, error)

	// ConvertAll converts the discovered corpus. Files are independent and
	// run in parallel; a structural failure in one file becomes a Critical
	// finding and does not abort the rest.
	ConvertAll(ctx context.Context) (*ConversionOutcome, error)
}
