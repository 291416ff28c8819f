package statement

import (
	"time"

	"github.com/calden/bankintake/internal/bank"
)

// Candidate is one canonical transaction ready for import: day-granularity
// date, sanitized description, exact integer cents, optional memo.
type Candidate struct {
	Date        time.Time
	Description string
	AmountCents int64
	Memo        *string
}

// Period is an inclusive reporting window supplied by the owning project.
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls inside the period, inclusive both ends.
func (p Period) Contains(date time.Time) bool {
	return WithinRange(date, p.Start, p.End)
}

// BuildResult separates accepted candidates from counted skips. An empty
// Accepted slice with nonzero skip counts is a legitimate outcome, distinct
// from a parse failure: the file was readable, nothing qualified.
type BuildResult struct {
	Accepted    []Candidate
	Unparseable int
	OutOfRange  int
}

// Skipped is the total number of source rows that produced no candidate.
func (r BuildResult) Skipped() int {
	return r.Unparseable + r.OutOfRange
}

// BuildTransactions turns raw records into candidates using the detected
// mapping and the institution's normalization rules. A row that fails date or
// amount parsing is skipped alone; rows outside the period are skipped
// silently. The batch never aborts on a row.
func BuildTransactions(rows []Record, mapping Mapping, profile bank.Profile, period Period) BuildResult {
	var res BuildResult
	for _, row := range rows {
		date, err := ParseDate(row[mapping.Date], &profile)
		if err != nil {
			res.Unparseable++
			continue
		}
		cents, err := NormalizeAmount(row[mapping.Amount], profile)
		if err != nil {
			res.Unparseable++
			continue
		}
		if !period.Contains(date) {
			res.OutOfRange++
			continue
		}

		c := Candidate{
			Date:        date,
			Description: row[mapping.Description],
			AmountCents: cents,
		}
		if mapping.Memo != "" {
			if memo := row[mapping.Memo]; memo != "" {
				c.Memo = &memo
			}
		}
		res.Accepted = append(res.Accepted, c)
	}
	return res
}
