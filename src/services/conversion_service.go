// src/services/conversion_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sergio-corredor-llopis/solar-analytics/src/config"
	"github.com/sergio-corredor-llopis/solar-analytics/src/logger"
	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/parsers"
	"github.com/sergio-corredor-llopis/solar-analytics/src/parsers/meteocontrol"
	"github.com/sergio-corredor-llopis/solar-analytics/src/processors"
	"github.com/sergio-corredor-llopis/solar-analytics/src/storage"
)

type conversionServiceImpl struct {
	sourceDir     string
	stagingDir    string
	expectedFiles int
	workers       int
	layout        models.FormatLayout

	intervals *processors.IntervalProcessor
}

// NewConversionService builds the converter from the injected run
// configuration. Passing an empty StagingDir skips the staging write.
func NewConversionService(cfg *config.AppConfig) ConversionService {
	workers := cfg.ConvertWorkers
	if workers < 1 {
		workers = 1
	}
	return &conversionServiceImpl{
		sourceDir:     cfg.SourceDir,
		stagingDir:    cfg.StagingDir,
		expectedFiles: cfg.ExpectedFiles,
		workers:       workers,
		layout:        cfg.Layout,
		intervals:     processors.NewIntervalProcessor(),
	}
}

func (s *conversionServiceImpl) Discover() ([]models.SourceFile, error) {
	entries, err := os.ReadDir(s.sourceDir)
	if err != nil {
		return nil, &models.DiscoveryError{
			Dir: s.sourceDir, Expected: s.expectedFiles,
			Reason: fmt.Sprintf("cannot read source directory: %v", err),
		}
	}

	var files []models.SourceFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		sf, ok := meteocontrol.ParseFilename(entry.Name())
		if !ok {
			continue
		}
		sf.Path = filepath.Join(s.sourceDir, entry.Name())
		files = append(files, sf)
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Year != files[j].Year {
			return files[i].Year < files[j].Year
		}
		return files[i].Month < files[j].Month
	})

	if len(files) == 0 {
		return nil, &models.DiscoveryError{
			Dir: s.sourceDir, Matched: 0, Expected: s.expectedFiles,
			Reason: "no files match the export naming pattern",
		}
	}
	if len(files) > s.expectedFiles {
		return nil, &models.DiscoveryError{
			Dir: s.sourceDir, Matched: len(files), Expected: s.expectedFiles,
			Reason: "more files matched than the expected corpus size",
		}
	}

	if logger.L != nil {
		logger.L.Info("Discovery complete", "sourceDir", s.sourceDir, "files", len(files))
	}
	return files, nil
}

func (s *conversionServiceImpl) ConvertAll(ctx context.Context) (*ConversionOutcome, error) {
	files, err := s.Discover()
	if err != nil {
		return nil, err
	}

	parser, err := parsers.GetParser("meteocontrol", s.layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	// Slot per file keeps result order deterministic; the findings list is
	// the only shared append target.
	slots := make([]*models.ConversionResult, len(files))
	var mu sync.Mutex
	var findings []models.Finding

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, sf := range files {
		i, sf := i, sf
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.convertFile(parser, sf)
			if err != nil {
				if isFileScoped(err) {
					if logger.L != nil {
						logger.L.Warn("File failed conversion", "file", sf.Name, "error", err)
					}
					mu.Lock()
					findings = append(findings, models.Finding{
						Severity: models.SeverityCritical,
						Check:    models.CheckEmptyFile,
						Scope:    sf.Name,
						Detail:   fmt.Sprintf("conversion produced no records: %v", err),
					})
					mu.Unlock()
					return nil
				}
				return fmt.Errorf("%w: %s: %v", ErrConversionFailed, sf.Name, err)
			}
			slots[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outcome := &ConversionOutcome{Findings: findings}
	for _, res := range slots {
		if res != nil {
			outcome.Results = append(outcome.Results, res)
		}
	}
	return outcome, nil
}

func (s *conversionServiceImpl) convertFile(parser parsers.Parser, sf models.SourceFile) (*models.ConversionResult, error) {
	start := time.Now()

	f, err := os.Open(sf.Path)
	if err != nil {
		return nil, &models.DecodeError{Err: err}
	}
	defer f.Close()

	res, err := parser.Parse(f)
	if err != nil {
		return nil, err
	}
	res.File = sf
	res.Intervals = s.intervals.Process(res.Records)

	if s.stagingDir != "" {
		path, err := storage.WriteRecordSet(s.stagingDir, res)
		if err != nil {
			return nil, fmt.Errorf("%w: staging %s: %v", ErrConversionFailed, sf.Name, err)
		}
		res.StagingPath = path
	}

	if logger.L != nil {
		logger.L.Info("File converted",
			"file", sf.Name,
			"rows", res.Rows(),
			"columns", res.Columns(),
			"interval", res.Intervals.Primary.String(),
			"regimeChange", res.Intervals.RegimeChange(),
			"duration", time.Since(start))
	}
	return res, nil
}

// isFileScoped reports whether a conversion error is confined to one file
// (decode or shape failure). Anything else aborts the pass.
func isFileScoped(err error) bool {
	var de *models.DecodeError
	var se *models.StructuralError
	return errors.As(err, &de) || errors.As(err, &se)
}
