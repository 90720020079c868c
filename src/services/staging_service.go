// src/services/staging_service.go
package services

import (
	"fmt"
	"path/filepath"

	"github.com/sergio-corredor-llopis/solar-analytics/src/logger"
	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/processors"
	"github.com/sergio-corredor-llopis/solar-analytics/src/storage"
)

// LoadStagedCorpus reads a staging directory back into conversion results,
// so validation can run against staged output alone, without re-converting.
// Interval labels are recomputed from the records; drop counts do not
// survive the staging boundary and come back as zero.
func LoadStagedCorpus(stagingDir string) ([]*models.ConversionResult, error) {
	paths, err := storage.ListStagedFiles(stagingDir)
	if err != nil {
		return nil, fmt.Errorf("listing staged files in %s: %w", stagingDir, err)
	}

	intervals := processors.NewIntervalProcessor()
	var results []*models.ConversionResult
	for _, path := range paths {
		res, err := storage.ReadRecordSet(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		year, month, ok := storage.PeriodFromPath(path)
		if !ok {
			return nil, fmt.Errorf("staged file %s is not under a year=/month= partition", path)
		}
		res.File = models.SourceFile{Path: path, Name: filepath.Base(path), Year: year, Month: month}
		res.Intervals = intervals.Process(res.Records)
		results = append(results, res)
	}

	if logger.L != nil {
		logger.L.Info("Staged corpus loaded", "stagingDir", stagingDir, "files", len(results))
	}
	return results, nil
}
