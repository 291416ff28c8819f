package statement

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/calden/bankintake/internal/bank"
)

// ErrEmptyDate is returned when the date field is blank after trimming.
var ErrEmptyDate = errors.New("empty date value")

// UnparseableDateError carries the raw token no format chain could interpret.
type UnparseableDateError struct {
	Raw string
}

func (e *UnparseableDateError) Error() string {
	return fmt.Sprintf("unable to parse date: %q", e.Raw)
}

// fallbackDateLayouts are common export formats tried when the institution's
// declared layouts fail. Month-first layouts come before day-first so the
// profile list is the only place day/month ambiguity gets resolved.
var fallbackDateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"Jan 02, 2006",
	"January 2, 2006",
	"01-02-2006",
	"2006/01/02",
}

// lenientDateLayouts are the last-resort interpretations, including layouts
// carrying a time-of-day component.
var lenientDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"2 Jan 2006",
	"02 Jan 2006",
	"Jan 2 2006",
	"2006-1-2",
	"1/2/06",
}

// ParseDate converts a raw date token into a calendar date. The institution's
// declared layouts win, then the fixed fallback list, then the lenient list.
// Every attempt requires the full string to match its layout.
func ParseDate(raw string, profile *bank.Profile) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrEmptyDate
	}

	if profile != nil {
		for _, layout := range profile.DateFormats {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
	}
	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range lenientDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &UnparseableDateError{Raw: raw}
}

// WithinRange reports whether date falls inside [start, end], inclusive on
// both ends and compared at day granularity: time-of-day on any argument is
// ignored.
func WithinRange(date, start, end time.Time) bool {
	d := civilDate(date)
	return !d.Before(civilDate(start)) && !d.After(civilDate(end))
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
