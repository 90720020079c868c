package database

import (
	"database/sql"
	stdlog "log"

	_ "modernc.org/sqlite"

	"github.com/sergio-corredor-llopis/solar-analytics/src/logger"
	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

var DB *sql.DB

// InitDB opens the audit database and ensures its tables. The audit store
// is append-only history of validation runs; the pipeline's own decisions
// never read from it.
func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS validation_runs (
		run_id TEXT PRIMARY KEY,
		verdict TEXT NOT NULL,
		critical_count INTEGER NOT NULL,
		warning_count INTEGER NOT NULL,
		total_files INTEGER NOT NULL,
		total_rows INTEGER NOT NULL,
		generated_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS validation_findings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		severity TEXT NOT NULL,
		check_kind TEXT NOT NULL,
		scope TEXT NOT NULL,
		detail TEXT NOT NULL,
		FOREIGN KEY(run_id) REFERENCES validation_runs(run_id)
	);
	`

	_, err = DB.Exec(createTableStatement)
	if err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create audit tables", "error", err)
		}
		stdlog.Fatalf("failed to create audit tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Audit database ready", "databasePath", databasePath)
	}
}

// SaveReport appends one validation run and its findings to the audit
// store.
func SaveReport(rep *models.Report) error {
	tx, err := DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO validation_runs (run_id, verdict, critical_count, warning_count, total_files, total_rows, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rep.RunID, string(rep.Verdict), rep.Counts.Critical, rep.Counts.Warning,
		rep.TotalFiles, rep.TotalRows, rep.GeneratedAt,
	)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT INTO validation_findings (run_id, severity, check_kind, scope, detail) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, f := range rep.Findings {
		if _, err := stmt.Exec(rep.RunID, string(f.Severity), string(f.Check), f.Scope, f.Detail); err != nil {
			return err
		}
	}

	return tx.Commit()
}
