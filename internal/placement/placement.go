// Package placement decides which events belong to a displayed day and where
// an event sits inside a time-grid column.
package placement

import (
	"time"

	"github.com/calview/calview-api/internal/dategrid"
	"github.com/calview/calview-api/internal/models"
)

// minEventHours keeps very short (or malformed) events tall enough to click.
const minEventHours = 0.5

// Box is the pixel offset and size of an event inside a time-grid column.
type Box struct {
	TopPx    float64 `json:"top_px"`
	HeightPx float64 `json:"height_px"`
}

// EventsOnDay returns the events occurring on the given calendar day, in the
// insertion order of the input. An event belongs to a day when it starts on it
// or when the day falls anywhere inside the event's start..end span, so
// multi-day events show up on every day they touch.
func EventsOnDay(events []models.Event, day time.Time) []models.Event {
	var matched []models.Event
	for _, event := range events {
		if occursOn(event, day) {
			matched = append(matched, event)
		}
	}
	return matched
}

// EventsOnWeek returns the events occurring on any of the given days,
// preserving insertion order and without duplicating entries.
func EventsOnWeek(events []models.Event, days []time.Time) []models.Event {
	var matched []models.Event
	for _, event := range events {
		for _, day := range days {
			if occursOn(event, day) {
				matched = append(matched, event)
				break
			}
		}
	}
	return matched
}

// Vertical computes the event's pixel box for a column where one hour spans
// hourHeightPx. Height is clamped to a 30-minute minimum, which also floors
// zero or negative durations instead of rejecting them.
func Vertical(event models.Event, hourHeightPx float64) Box {
	startHour := float64(event.StartDate.Hour()) + float64(event.StartDate.Minute())/60

	durationHours := event.EndDate.Sub(event.StartDate).Hours()
	if durationHours < minEventHours {
		durationHours = minEventHours
	}

	return Box{
		TopPx:    startHour * hourHeightPx,
		HeightPx: durationHours * hourHeightPx,
	}
}

func occursOn(event models.Event, day time.Time) bool {
	if dategrid.IsSameDay(event.StartDate, day) {
		return true
	}
	start := dategrid.StartOfDay(event.StartDate)
	end := dategrid.EndOfDay(event.EndDate)
	return !day.Before(start) && !day.After(end)
}
