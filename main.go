package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sergio-corredor-llopis/solar-analytics/src/config"
	"github.com/sergio-corredor-llopis/solar-analytics/src/logger"
)

var rootCmd = &cobra.Command{
	Use:   "solar-analytics",
	Short: "Solar plant telemetry ingestion and quality-validation pipeline",
	Long: `Converts ten years of monthly Meteocontrol exports (UTF-16LE,
tab-separated, comma decimals) into canonical parquet record sets and gates
downstream use behind structural and physical-plausibility checks.

The external orchestrator consumes the exit code: 0 to proceed, non-zero to
halt.`,
	SilenceUsage: true,
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	rootCmd.AddCommand(convertCmd, validateCmd, runCmd, verifyCmd)
	if err := rootCmd.Execute(); err != nil {
		logger.L.Error("Pipeline command failed", "error", err)
		os.Exit(1)
	}
}
