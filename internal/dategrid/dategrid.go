// Package dategrid computes the day grids rendered by the month and week
// views, plus the calendar-field predicates and display formatting the views
// share. Everything here is pure; the wall clock enters only through IsToday.
package dategrid

import (
	"fmt"
	"time"
)

// now is swapped out in tests.
var now = time.Now

// StartOfDay returns midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of the day containing t.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the first day of the week containing t,
// per the given week-start convention.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns midnight of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// MonthGrid returns every day shown for t's month: whole weeks from the week
// containing the first of the month through the week containing its last day.
// The result length is always a multiple of 7 (28, 35 or 42 days).
func MonthGrid(t time.Time, weekStart time.Weekday) []time.Time {
	start := StartOfWeek(StartOfMonth(t), weekStart)
	end := StartOfWeek(EndOfMonth(t), weekStart).AddDate(0, 0, 6)

	days := make([]time.Time, 0, 42)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// WeekGrid returns the 7 consecutive days of the week containing t.
func WeekGrid(t time.Time, weekStart time.Weekday) []time.Time {
	start := StartOfWeek(t, weekStart)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// IsSameDay reports whether a and b fall on the same calendar day,
// ignoring time of day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsSameMonth reports whether a and b fall in the same calendar month.
func IsSameMonth(a, b time.Time) bool {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return ay == by && am == bm
}

// IsToday reports whether t falls on the current calendar day.
func IsToday(t time.Time) bool {
	return IsSameDay(t, now())
}

// AddMonths shifts t by whole calendar months, clamping the day of month to
// the target month's length so Jan 31 plus one month lands on Feb 28/29
// instead of spilling into March.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
	target := first.AddDate(0, months, 0)

	lastDay := target.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	hour, minute, sec := t.Clock()
	return time.Date(target.Year(), target.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// AddDays shifts t by whole days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// TimeSlots returns the 24 "HH:00" labels lining a time-grid column.
func TimeSlots() []string {
	slots := make([]string, 24)
	for hour := 0; hour < 24; hour++ {
		slots[hour] = fmt.Sprintf("%02d:00", hour)
	}
	return slots
}
