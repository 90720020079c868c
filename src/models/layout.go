// src/models/layout.go
package models

// FormatLayout names the row-addressing contract of the export format.
// The legacy monitoring exports put five metadata lines first, the header
// on line 6, unit annotations on lines 7-9 and data from line 10. Alternate
// vintages of the format can be supported by supplying a different layout
// without touching parsing logic. Line numbers are 1-based.
type FormatLayout struct {
	HeaderLine    int    `yaml:"header_line" json:"header_line"`
	UnitLinesFrom int    `yaml:"unit_lines_from" json:"unit_lines_from"`
	UnitLinesTo   int    `yaml:"unit_lines_to" json:"unit_lines_to"`
	DataStartLine int    `yaml:"data_start_line" json:"data_start_line"`
	Delimiter     string `yaml:"delimiter" json:"delimiter"`
	MissingToken  string `yaml:"missing_token" json:"missing_token"`
	DateColumn    string `yaml:"date_column" json:"date_column"`
	TimeColumn    string `yaml:"time_column" json:"time_column"`
}

// DefaultLayout returns the layout of the 2013-2023 export vintage.
func DefaultLayout() FormatLayout {
	return FormatLayout{
		HeaderLine:    6,
		UnitLinesFrom: 7,
		UnitLinesTo:   9,
		DataStartLine: 10,
		Delimiter:     "\t",
		MissingToken:  "-",
		DateColumn:    "Fecha",
		TimeColumn:    "Hora",
	}
}
