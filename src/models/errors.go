// src/models/errors.go
package models

import "fmt"

// DecodeError is a file-scoped failure to decode the raw byte stream under
// the expected UTF-16LE encoding. Conversion of the file aborts; conversion
// of the rest of the corpus continues.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode failed: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// StructuralError is a file-scoped shape failure: missing header line,
// missing identifier columns, or no data rows after the data-start offset.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string { return "structural defect: " + e.Reason }

// TimestampParseError is record-scoped: the offending record is dropped and
// conversion of the file continues. It feeds the TimestampIntegrity check.
type TimestampParseError struct {
	Line      int
	DateToken string
	TimeToken string
	Err       error
}

func (e *TimestampParseError) Error() string {
	return fmt.Sprintf("line %d: unparsable timestamp %q %q: %v", e.Line, e.DateToken, e.TimeToken, e.Err)
}

func (e *TimestampParseError) Unwrap() error { return e.Err }

// DiscoveryError is corpus-scoped and aborts the run before any file I/O:
// every later check assumes a plausible file set exists.
type DiscoveryError struct {
	Dir      string
	Matched  int
	Expected int
	Reason   string
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery failed in %s: %s (matched %d, expected up to %d)",
		e.Dir, e.Reason, e.Matched, e.Expected)
}
