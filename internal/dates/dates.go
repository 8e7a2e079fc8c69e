package dates

import (
	"fmt"
	"strings"
	"time"
)

// ISO is the canonical layout used for all rendered dates.
const ISO = "2006-01-02"

// layouts holds every accepted input format, in priority order. Ambiguous
// numeric inputs resolve to the first layout that parses, so day-month-year
// wins over month-day-year.
var layouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
	"02-01-2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseError reports an input string that matched none of the accepted layouts.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse date: %q", e.Input)
}

// Parse attempts each accepted layout in order and returns the first match.
func Parse(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Input: s}
}

// DaysBetween returns the whole calendar days from start to end, truncating
// any partial day.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// AddDays shifts a date by n calendar days, rolling over months, years and
// leap days correctly.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
