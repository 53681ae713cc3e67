package dategrid

import (
	"fmt"
	"time"
)

// Pattern names one of the date renderings the views use. The vocabulary is
// closed: formatting with anything outside this set is a caller error.
type Pattern string

const (
	PatternMonthYear    Pattern = "month-year"    // June 2025
	PatternFullDate     Pattern = "full-date"     // June 25, 2025
	PatternMediumDate   Pattern = "medium-date"   // Jun 25, 2025
	PatternMonthDay     Pattern = "month-day"     // Jun 25
	PatternDayOfMonth   Pattern = "day-of-month"  // 25
	PatternWeekdayLong  Pattern = "weekday-long"  // Wednesday
	PatternWeekdayShort Pattern = "weekday-short" // Wed
	PatternTime24       Pattern = "time-24h"      // 14:30
	PatternISODate      Pattern = "iso-date"      // 2025-06-25
)

var patternLayouts = map[Pattern]string{
	PatternMonthYear:    "January 2006",
	PatternFullDate:     "January 2, 2006",
	PatternMediumDate:   "Jan 2, 2006",
	PatternMonthDay:     "Jan 2",
	PatternDayOfMonth:   "2",
	PatternWeekdayLong:  "Monday",
	PatternWeekdayShort: "Mon",
	PatternTime24:       "15:04",
	PatternISODate:      "2006-01-02",
}

// Format renders t per the named pattern. Unknown patterns return an error
// rather than panicking; the empty string result makes misuse visible.
func Format(t time.Time, pattern Pattern) (string, error) {
	layout, ok := patternLayouts[pattern]
	if !ok {
		return "", fmt.Errorf("dategrid: unknown format pattern %q", pattern)
	}
	return t.Format(layout), nil
}
