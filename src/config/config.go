package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

type AppConfig struct {
	SourceDir    string
	StagingDir   string
	DatabasePath string
	LogLevel     string

	// Corpus contract, injected per run and treated as immutable input.
	ExpectedFiles   int
	ExpectedColumns int
	CorpusStartYear int
	CorpusEndYear   int

	ConvertWorkers int

	// PipelinePath optionally points at a YAML file overriding the bounds
	// table and/or the format layout.
	PipelinePath string

	Bounds models.BoundsTable
	Layout models.FormatLayout
}

var Cfg *AppConfig

// pipelineFile is the YAML shape of the optional pipeline override file.
type pipelineFile struct {
	Bounds map[string]models.PhysicalBound `yaml:"bounds"`
	Layout *models.FormatLayout            `yaml:"layout"`
}

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading pipeline configuration...")

	Cfg = &AppConfig{
		SourceDir:       getEnv("SOURCE_DIR", "data/raw"),
		StagingDir:      getEnv("STAGING_DIR", "data/staging/monthly"),
		DatabasePath:    getEnv("DATABASE_PATH", "./solar_audit.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ExpectedFiles:   getEnvAsInt("EXPECTED_FILES", 131),
		ExpectedColumns: getEnvAsInt("EXPECTED_COLUMNS", 108),
		CorpusStartYear: getEnvAsInt("CORPUS_START_YEAR", 2013),
		CorpusEndYear:   getEnvAsInt("CORPUS_END_YEAR", 2023),
		ConvertWorkers:  getEnvAsInt("CONVERT_WORKERS", 4),
		PipelinePath:    getEnv("PIPELINE_CONFIG_PATH", ""),
		Bounds:          models.DefaultBounds(),
		Layout:          models.DefaultLayout(),
	}

	if Cfg.PipelinePath != "" {
		if err := applyPipelineFile(Cfg, Cfg.PipelinePath); err != nil {
			log.Fatalf("FATAL: failed to load pipeline config %s: %v", Cfg.PipelinePath, err)
		}
	}

	log.Printf("Configuration loaded: SourceDir=%s, StagingDir=%s, ExpectedFiles=%d, ExpectedColumns=%d",
		Cfg.SourceDir, Cfg.StagingDir, Cfg.ExpectedFiles, Cfg.ExpectedColumns)
}

// applyPipelineFile overlays bounds/layout from a YAML file onto cfg.
// Bounds entries replace per kind; an absent layout keeps the default.
func applyPipelineFile(cfg *AppConfig, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var pf pipelineFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return err
	}
	for kind, bound := range pf.Bounds {
		cfg.Bounds[models.FieldKind(kind)] = bound
	}
	if pf.Layout != nil {
		cfg.Layout = *pf.Layout
	}
	log.Printf("Pipeline config applied from %s (%d bound overrides)", path, len(pf.Bounds))
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		log.Printf("Integer value for %s not set or empty, using default: %d", key, fallback)
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}
