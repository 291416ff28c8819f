package statement

import (
	"regexp"

	"github.com/calden/bankintake/internal/bank"
)

// Mapping associates logical transaction fields with the header names that
// carry them in a given file. Empty string means unmapped.
type Mapping struct {
	Date        string
	Description string
	Amount      string
	Memo        string
}

// HasRequired reports whether date, description, and amount are all mapped.
// This gate is mandatory before any transaction building.
func (m Mapping) HasRequired() bool {
	return m.Date != "" && m.Description != "" && m.Amount != ""
}

// Missing returns the unmapped required field names, for error reporting.
func (m Mapping) Missing() []string {
	var missing []string
	if m.Date == "" {
		missing = append(missing, "date")
	}
	if m.Description == "" {
		missing = append(missing, "description")
	}
	if m.Amount == "" {
		missing = append(missing, "amount")
	}
	return missing
}

// DetectColumns infers which header carries each logical field, using the
// profile's patterns when supplied and generic synonyms otherwise. Date and
// amount picks are validated against the sample record's content; when the
// first pattern match holds unparseable data, another matching header with
// parseable data is preferred. Detection never fails — it returns a
// best-effort mapping that the HasRequired gate judges afterwards.
func DetectColumns(headers []string, sample Record, profile *bank.Profile) Mapping {
	patterns := bank.GenericColumns
	if profile != nil {
		patterns = profile.Columns
	}

	m := Mapping{
		Date:        findHeader(headers, patterns.Date),
		Description: findHeader(headers, patterns.Description),
		Amount:      findHeader(headers, patterns.Amount),
	}
	if patterns.Memo != nil {
		m.Memo = findHeader(headers, patterns.Memo)
	}

	validDate := func(v string) bool {
		_, err := ParseDate(v, profile)
		return err == nil
	}
	m.Date = preferValidated(headers, patterns.Date, m.Date, sample, validDate)
	m.Amount = preferValidated(headers, patterns.Amount, m.Amount, sample, looksNumeric)

	return m
}

func findHeader(headers []string, pattern *regexp.Regexp) string {
	for _, h := range headers {
		if pattern.MatchString(h) {
			return h
		}
	}
	return ""
}

// preferValidated keeps the pattern match whose sample value actually parses,
// falling back to the original pick when no matching header validates.
func preferValidated(headers []string, pattern *regexp.Regexp, pick string, sample Record, valid func(string) bool) string {
	if pick == "" || valid(sample[pick]) {
		return pick
	}
	for _, h := range headers {
		if h == pick || !pattern.MatchString(h) {
			continue
		}
		if valid(sample[h]) {
			return h
		}
	}
	return pick
}
