package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sergio-corredor-llopis/solar-analytics/src/config"
	"github.com/sergio-corredor-llopis/solar-analytics/src/database"
	"github.com/sergio-corredor-llopis/solar-analytics/src/logger"
	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
	"github.com/sergio-corredor-llopis/solar-analytics/src/reporter"
	"github.com/sergio-corredor-llopis/solar-analytics/src/services"
	"github.com/sergio-corredor-llopis/solar-analytics/src/validators"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the quality gate over an existing staging directory",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	results, err := services.LoadStagedCorpus(config.Cfg.StagingDir)
	if err != nil {
		return err
	}
	return validateAndReport(results, nil)
}

// validateAndReport is shared by the validate and run commands: it runs the
// five checks, merges any conversion findings, persists the report to the
// audit store, emits it as JSON on stdout and maps the verdict to the exit
// status the orchestrator consumes.
func validateAndReport(results []*models.ConversionResult, convFindings []models.Finding) error {
	cfg := config.Cfg
	v := validators.NewValidator(cfg.ExpectedFiles, cfg.ExpectedColumns, cfg.Bounds, cfg.CorpusStartYear, cfg.CorpusEndYear)

	findings := append(append([]models.Finding(nil), convFindings...), v.Validate(results)...)
	rep := reporter.BuildReport(results, findings)

	database.InitDB(cfg.DatabasePath)
	if err := database.SaveReport(rep); err != nil {
		logger.L.Error("Failed to persist report to audit store", "error", err)
	}

	encoded, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(encoded))

	if rep.Verdict == models.VerdictBlocked {
		return fmt.Errorf("validation blocked: %d critical finding(s); data will not propagate downstream", rep.Counts.Critical)
	}
	return nil
}
