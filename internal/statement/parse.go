package statement

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ErrNoRows means the file was readable but produced zero data rows
// (empty file or header-only export).
var ErrNoRows = errors.New("no data rows in file")

// Record is one parsed row keyed by sanitized header name. Column order is
// carried by ParseResult.Headers; records are never mutated downstream.
type Record map[string]string

// ParseResult is the structural output of Parse: no type or range validation
// has happened yet.
type ParseResult struct {
	Headers  []string
	Rows     []Record
	Warnings []string
}

// Parse reads delimited text with a header row. Every header and field is run
// through SanitizeField before storage. Ragged rows are kept with best-effort
// values and reported as warnings; only a structurally unreadable or empty
// file fails.
func Parse(data []byte) (*ParseResult, error) {
	cr := csv.NewReader(bufio.NewReader(bytes.NewReader(data)))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	// Real bank exports carry stray and unterminated quotes; lazy quoting
	// keeps those rows with best-effort field values instead of aborting the
	// rest of the file.
	cr.LazyQuotes = true

	headers, err := readHeaders(cr)
	if err != nil {
		return nil, err
	}

	res := &ParseResult{Headers: headers}
	line := 1
	for {
		line++
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: %v", line, perr.Err))
				continue
			}
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if blankRow(rec) {
			continue
		}
		row := make(Record, len(headers))
		for i, h := range headers {
			if i < len(rec) {
				row[h] = SanitizeField(rec[i])
			} else {
				row[h] = ""
			}
		}
		switch {
		case len(rec) < len(headers):
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: expected %d fields, got %d", line, len(headers), len(rec)))
		case len(rec) > len(headers):
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: %d extra fields ignored", line, len(rec)-len(headers)))
		}
		res.Rows = append(res.Rows, row)
	}

	if len(res.Rows) == 0 {
		return nil, ErrNoRows
	}
	return res, nil
}

func readHeaders(cr *csv.Reader) ([]string, error) {
	rec, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoRows
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	// Duplicate headers get a numeric suffix so later columns stay addressable.
	headers := make([]string, 0, len(rec))
	seen := make(map[string]int, len(rec))
	for _, h := range rec {
		name := SanitizeField(h)
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n)
		}
		seen[name]++
		headers = append(headers, name)
	}
	return headers, nil
}

func blankRow(rec []string) bool {
	for _, f := range rec {
		if f != "" {
			return false
		}
	}
	return true
}
