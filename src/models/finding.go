// src/models/finding.go
package models

import "time"

// Severity splits findings into blocking and advisory. Critical findings
// mean the pipeline itself malfunctioned and downstream use must halt;
// warnings reflect known sensor-hardware faults in the source
// instrumentation and are informative only.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityWarning  Severity = "WARNING"
)

// CheckKind names the quality check that produced a finding.
type CheckKind string

const (
	CheckFileCount          CheckKind = "FILE_COUNT"
	CheckSchemaConsistency  CheckKind = "SCHEMA_CONSISTENCY"
	CheckEmptyFile          CheckKind = "EMPTY_FILE"
	CheckTimestampIntegrity CheckKind = "TIMESTAMP_INTEGRITY"
	CheckPhysicalBounds     CheckKind = "PHYSICAL_BOUNDS"
)

// ScopeCorpus marks findings that apply to the whole corpus rather than a
// single file or field.
const ScopeCorpus = "corpus"

// Finding is one detected anomaly. Findings are append-only and never
// mutated after creation.
type Finding struct {
	Severity Severity  `json:"severity"`
	Check    CheckKind `json:"check_kind"`
	// Scope is ScopeCorpus, a file name, or "file|field" for value-level
	// findings.
	Scope  string `json:"scope"`
	Detail string `json:"detail"`
}

// Verdict is the overall outcome handed to the external orchestrator.
type Verdict string

const (
	VerdictBlocked            Verdict = "BLOCKED"
	VerdictPassedWithWarnings Verdict = "PASSED_WITH_WARNINGS"
	VerdictPassed             Verdict = "PASSED"
)

// FileSummary is the per-file slice of a report.
type FileSummary struct {
	File    string `json:"file"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}

// Report is the pipeline's output contract. The orchestrator consumes only
// Verdict to decide whether to proceed; everything else is for logging and
// audit. The caller never mutates it.
type Report struct {
	RunID       string        `json:"run_id"`
	Verdict     Verdict       `json:"verdict"`
	Findings    []Finding     `json:"findings"`
	Counts      Counts        `json:"counts"`
	TotalFiles  int           `json:"total_files"`
	TotalRows   int           `json:"total_rows"`
	Files       []FileSummary `json:"files_validated,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// Counts summarizes findings by severity.
type Counts struct {
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
}

// FindingsBySeverity returns the findings carrying the given severity, in
// original order.
func (r *Report) FindingsBySeverity(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}
