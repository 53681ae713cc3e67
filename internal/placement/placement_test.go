package placement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calview/calview-api/internal/dategrid"
	"github.com/calview/calview-api/internal/models"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.June, day, hour, minute, 0, 0, time.Local)
}

func TestEventsOnDaySingleDayRoundTrip(t *testing.T) {
	event := models.Event{ID: "e1", Title: "Standup", StartDate: at(25, 10, 0), EndDate: at(25, 10, 30)}
	events := []models.Event{event}

	grid := dategrid.MonthGrid(at(25, 0, 0), time.Sunday)
	hits := 0
	for _, day := range grid {
		matched := EventsOnDay(events, day)
		if dategrid.IsSameDay(day, event.StartDate) {
			require.Len(t, matched, 1)
			assert.Equal(t, "e1", matched[0].ID)
			hits++
		} else {
			assert.Empty(t, matched, "event leaked onto %s", day.Format("2006-01-02"))
		}
	}
	assert.Equal(t, 1, hits)
}

func TestEventsOnDayMultiDaySpan(t *testing.T) {
	// 22:00 on the 25th through 01:00 on the 26th
	event := models.Event{ID: "e1", StartDate: at(25, 22, 0), EndDate: at(26, 1, 0)}
	events := []models.Event{event}

	assert.Len(t, EventsOnDay(events, at(25, 0, 0)), 1)
	assert.Len(t, EventsOnDay(events, at(26, 0, 0)), 1)
	assert.Empty(t, EventsOnDay(events, at(24, 0, 0)))
	assert.Empty(t, EventsOnDay(events, at(27, 0, 0)))
}

func TestEventsOnDayPreservesInsertionOrder(t *testing.T) {
	events := []models.Event{
		{ID: "late", StartDate: at(25, 15, 0), EndDate: at(25, 16, 0)},
		{ID: "early", StartDate: at(25, 8, 0), EndDate: at(25, 9, 0)},
		{ID: "elsewhere", StartDate: at(27, 8, 0), EndDate: at(27, 9, 0)},
	}

	matched := EventsOnDay(events, at(25, 12, 0))
	require.Len(t, matched, 2)
	assert.Equal(t, "late", matched[0].ID)
	assert.Equal(t, "early", matched[1].ID)
}

func TestEventsOnWeek(t *testing.T) {
	days := dategrid.WeekGrid(at(25, 0, 0), time.Sunday) // Jun 22 - Jun 28
	events := []models.Event{
		{ID: "inside", StartDate: at(23, 9, 0), EndDate: at(23, 10, 0)},
		{ID: "spanning", StartDate: at(21, 9, 0), EndDate: at(22, 10, 0)},
		{ID: "outside", StartDate: at(30, 9, 0), EndDate: at(30, 10, 0)},
	}

	matched := EventsOnWeek(events, days)
	require.Len(t, matched, 2)
	assert.Equal(t, "inside", matched[0].ID)
	assert.Equal(t, "spanning", matched[1].ID)
}

func TestVertical(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		hourHeight float64
		want       Box
	}{
		{
			name:  "one hour at nine",
			start: at(25, 9, 0), end: at(25, 10, 0),
			hourHeight: 48,
			want:       Box{TopPx: 432, HeightPx: 48},
		},
		{
			name:  "half past offset",
			start: at(25, 9, 30), end: at(25, 11, 0),
			hourHeight: 48,
			want:       Box{TopPx: 456, HeightPx: 72},
		},
		{
			name:  "fifteen minutes clamps to half hour",
			start: at(25, 9, 0), end: at(25, 9, 15),
			hourHeight: 48,
			want:       Box{TopPx: 432, HeightPx: 24},
		},
		{
			name:  "zero duration clamps",
			start: at(25, 9, 0), end: at(25, 9, 0),
			hourHeight: 64,
			want:       Box{TopPx: 576, HeightPx: 32},
		},
		{
			name:  "inverted range clamps instead of rejecting",
			start: at(25, 9, 0), end: at(25, 8, 0),
			hourHeight: 48,
			want:       Box{TopPx: 432, HeightPx: 24},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := models.Event{StartDate: tc.start, EndDate: tc.end}
			got := Vertical(event, tc.hourHeight)
			assert.InDelta(t, tc.want.TopPx, got.TopPx, 1e-9)
			assert.InDelta(t, tc.want.HeightPx, got.HeightPx, 1e-9)
		})
	}
}
