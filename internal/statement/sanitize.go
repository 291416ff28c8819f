// Package statement implements the CSV statement ingestion pipeline: field
// sanitization, tabular parsing, column detection, and normalization of raw
// rows into canonical transactions.
package statement

import (
	"math"
	"strconv"
	"strings"
)

// Cells starting with these can execute as formulas when the export is opened
// in spreadsheet software (OWASP CSV injection).
const dangerousPrefixes = "=+-@\t\r\n"

// SanitizeField neutralizes spreadsheet formula injection by prefixing
// dangerous values with a single quote. Signed numbers are left alone so
// legitimate amounts like "-42.50" survive intact.
func SanitizeField(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	if !strings.ContainsRune(dangerousPrefixes, rune(s[0])) {
		return s
	}
	if s[0] == '-' || s[0] == '+' {
		rest := stripCurrency(s[1:])
		if rest != "" {
			if f, err := strconv.ParseFloat(rest, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
				return s
			}
		}
	}
	return "'" + s
}

// stripCurrency removes currency symbols and thousands separators.
func stripCurrency(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '$', ',':
			return -1
		}
		return r
	}, s)
}
