package main

import (
	"github.com/spf13/cobra"

	"github.com/sergio-corredor-llopis/solar-analytics/src/config"
	"github.com/sergio-corredor-llopis/solar-analytics/src/services"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Convert the corpus, then validate it in one pass",
	RunE:  runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	svc := services.NewConversionService(config.Cfg)
	outcome, err := svc.ConvertAll(cmd.Context())
	if err != nil {
		return err
	}
	return validateAndReport(outcome.Results, outcome.Findings)
}
