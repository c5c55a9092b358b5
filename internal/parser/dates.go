package parser

import (
	"time"
)

// calendarDateLayout is the release date encoding used on iTunes pages.
const calendarDateLayout = "2006-01-02"

// yearFromDate extracts the year from a calendar-date string like "2021-07-09".
func yearFromDate(date string) (int, error) {
	t, err := time.Parse(calendarDateLayout, date)
	if err != nil {
		return 0, err
	}
	return t.Year(), nil
}

// yearFromEpochMillis extracts the calendar year from an epoch-millisecond
// timestamp. Negative values (dates before 1970) resolve correctly.
func yearFromEpochMillis(ms int64) int {
	return time.UnixMilli(ms).UTC().Year()
}
