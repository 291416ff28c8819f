// Package bank holds the static per-institution parsing profiles.
package bank

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

// SignConvention describes how an institution reports outgoing money.
type SignConvention int

const (
	// DebitsNegative means expenses arrive as negative numbers (canonical form).
	DebitsNegative SignConvention = iota
	// DebitsPositive means expenses arrive as positive numbers and must be flipped.
	DebitsPositive
)

// AccountKind is opaque metadata describing which account the export came from.
type AccountKind string

const (
	AccountChecking AccountKind = "checking"
	AccountCredit   AccountKind = "credit"
)

// ValidAccountKind reports whether k is one of the supported kinds.
func ValidAccountKind(k AccountKind) bool {
	return k == AccountChecking || k == AccountCredit
}

// ColumnPatterns maps logical fields to header-matching expressions.
// Memo is optional and may be nil.
type ColumnPatterns struct {
	Date        *regexp.Regexp
	Description *regexp.Regexp
	Amount      *regexp.Regexp
	Memo        *regexp.Regexp
}

// Profile describes one institution's export quirks: sign convention, the
// date layouts it emits (most specific first), and how its columns are named.
type Profile struct {
	Key            string
	Name           string
	SignConvention SignConvention
	// DateFormats are Go reference layouts tried strictly and in order.
	DateFormats []string
	Columns     ColumnPatterns
}

// ErrUnknownInstitution is returned by Lookup for keys not in the registry.
var ErrUnknownInstitution = errors.New("unknown institution")

func ci(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

// registry is immutable after package init. Layouts and patterns mirror the
// exports each institution actually produces.
var registry = map[string]Profile{
	"chase": {
		Key:            "chase",
		Name:           "Chase",
		SignConvention: DebitsNegative,
		DateFormats:    []string{"01/02/2006", "1/2/2006"},
		Columns: ColumnPatterns{
			Date:        ci(`posting\s*date|trans.*date|date`),
			Description: ci(`description`),
			Amount:      ci(`amount`),
			Memo:        ci(`memo|detail`),
		},
	},
	"bankofamerica": {
		Key:            "bankofamerica",
		Name:           "Bank of America",
		SignConvention: DebitsPositive,
		DateFormats:    []string{"01/02/2006", "1/2/2006"},
		Columns: ColumnPatterns{
			Date:        ci(`date|posted`),
			Description: ci(`description|payee`),
			Amount:      ci(`amount`),
			Memo:        ci(`memo|reference`),
		},
	},
	"wellsfargo": {
		Key:            "wellsfargo",
		Name:           "Wells Fargo",
		SignConvention: DebitsNegative,
		DateFormats:    []string{"01/02/2006", "1/2/2006"},
		Columns: ColumnPatterns{
			Date:        ci(`date`),
			Description: ci(`description`),
			Amount:      ci(`amount`),
			Memo:        ci(`memo`),
		},
	},
	"capitalone": {
		Key:            "capitalone",
		Name:           "Capital One",
		SignConvention: DebitsPositive,
		DateFormats:    []string{"2006-01-02", "01/02/2006", "1/2/2006"},
		Columns: ColumnPatterns{
			Date:        ci(`transaction\s*date|posted\s*date|date`),
			Description: ci(`description|merchant`),
			Amount:      ci(`amount|debit|credit`),
			Memo:        ci(`category|memo`),
		},
	},
	"amex": {
		Key:            "amex",
		Name:           "American Express",
		SignConvention: DebitsPositive,
		DateFormats:    []string{"01/02/2006", "1/2/2006"},
		Columns: ColumnPatterns{
			Date:        ci(`date`),
			Description: ci(`description`),
			Amount:      ci(`amount`),
			Memo:        ci(`extended\s*details|memo`),
		},
	},
}

// GenericColumns is the fallback pattern set used when no profile is supplied.
// Broader synonyms than any single institution uses.
var GenericColumns = ColumnPatterns{
	Date:        ci(`date|posted|trans`),
	Description: ci(`desc|merchant|vendor|payee|name`),
	Amount:      ci(`amount|debit|credit`),
	Memo:        ci(`memo|note|comment|detail|reference`),
}

// Lookup returns the profile for key, or ErrUnknownInstitution.
func Lookup(key string) (Profile, error) {
	p, ok := registry[key]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownInstitution, key)
	}
	return p, nil
}

// Keys returns the supported institution keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
