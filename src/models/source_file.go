// src/models/source_file.go
package models

import (
	"fmt"
	"time"
)

// SourceFile identifies one monthly export. It is built once during
// discovery and never mutated afterwards; findings reference it by Name.
type SourceFile struct {
	Path      string `json:"path"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
}

// Period returns the declared period as "YYYY-MM".
func (s SourceFile) Period() string {
	return fmt.Sprintf("%04d-%02d", s.Year, s.Month)
}

// IntervalInfo describes the sampling cadence detected in one file. A file
// normally has a single interval; one file in the corpus switches cadence
// partway through, which is labeled here rather than rejected.
type IntervalInfo struct {
	Primary time.Duration `json:"primary"`
	// Secondary is non-zero only when a regime change was detected.
	Secondary    time.Duration `json:"secondary,omitempty"`
	TransitionAt time.Time     `json:"transition_at,omitempty"`
}

// RegimeChange reports whether the file carries two sampling regimes.
func (i IntervalInfo) RegimeChange() bool { return i.Secondary != 0 }

// ConversionResult is the output of converting one source file. It is owned
// by a single converter invocation; the validator only reads it.
type ConversionResult struct {
	File    SourceFile
	Fields  []CanonicalField
	Records []CanonicalRecord

	Intervals IntervalInfo
	// RawColumns is the column count of the decoded header row.
	RawColumns int
	// DroppedRecords counts rows discarded for unparsable timestamps.
	DroppedRecords int
	// DroppedSamples holds up to a few offending date/time tokens for findings.
	DroppedSamples []string
	// StagingPath is where the canonical record set was written, if it was.
	StagingPath string
}

// Rows returns the canonical record count.
func (c *ConversionResult) Rows() int { return len(c.Records) }

// Columns returns the canonical field count, timestamp included.
func (c *ConversionResult) Columns() int { return len(c.Fields) + 1 }

// FieldNames returns the canonical field names in column order.
func (c *ConversionResult) FieldNames() []string {
	names := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		names = append(names, f.Name)
	}
	return names
}
