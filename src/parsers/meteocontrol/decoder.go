// src/parsers/meteocontrol/decoder.go
package meteocontrol

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/sergio-corredor-llopis/solar-analytics/src/models"
)

// DecodedFile is the tokenized form of one raw export: the fixed preamble,
// the header row, the unit annotation rows and the data rows. The decoder
// does not interpret values; it only decodes bytes and splits on the
// delimiter.
type DecodedFile struct {
	// Preamble holds the raw metadata lines preceding the header.
	Preamble []string
	// Header is the tokenized header row.
	Header []string
	// Units holds the tokenized unit annotation rows (consumed, never
	// emitted as data).
	Units [][]string
	// Rows are the tokenized data rows, starting at the layout's
	// data-start line.
	Rows [][]string
}

// UnitRow returns the first unit annotation row, aligned with Header, or
// nil when the file carries none.
func (d *DecodedFile) UnitRow() []string {
	if len(d.Units) == 0 {
		return nil
	}
	return d.Units[0]
}

// Decode reads a raw UTF-16LE export and tokenizes it according to the
// layout. It returns a DecodeError when the byte stream cannot be decoded
// and a StructuralError when the header is absent or no data rows follow
// the data-start offset.
func Decode(r io.Reader, layout models.FormatLayout) (*DecodedFile, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, &models.DecodeError{Err: err}
	}
	if len(raw)%2 != 0 {
		return nil, &models.DecodeError{Err: fmt.Errorf("odd byte count %d for 16-bit encoding", len(raw))}
	}

	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return nil, &models.DecodeError{Err: err}
	}

	lines := strings.Split(strings.ReplaceAll(string(decoded), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) < layout.HeaderLine {
		return nil, &models.StructuralError{Reason: fmt.Sprintf("header line %d absent (%d lines)", layout.HeaderLine, len(lines))}
	}
	headerLine := lines[layout.HeaderLine-1]
	if strings.TrimSpace(headerLine) == "" {
		return nil, &models.StructuralError{Reason: fmt.Sprintf("header line %d is blank", layout.HeaderLine)}
	}

	d := &DecodedFile{
		Preamble: lines[:layout.HeaderLine-1],
		Header:   tokenize(headerLine, layout.Delimiter),
	}

	for n := layout.UnitLinesFrom; n <= layout.UnitLinesTo && n <= len(lines); n++ {
		d.Units = append(d.Units, tokenize(lines[n-1], layout.Delimiter))
	}

	if len(lines) >= layout.DataStartLine {
		for _, line := range lines[layout.DataStartLine-1:] {
			if strings.TrimSpace(line) == "" {
				continue
			}
			d.Rows = append(d.Rows, tokenize(line, layout.Delimiter))
		}
	}
	if len(d.Rows) == 0 {
		return nil, &models.StructuralError{Reason: fmt.Sprintf("no data rows after line %d", layout.DataStartLine)}
	}

	return d, nil
}

func tokenize(line, delimiter string) []string {
	cells := strings.Split(line, delimiter)
	for i, c := range cells {
		cells[i] = strings.TrimSpace(c)
	}
	return cells
}
