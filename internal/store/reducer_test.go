package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calview/calview-api/internal/models"
)

var fixedNow = time.Date(2025, time.June, 25, 12, 0, 0, 0, time.Local)

func testDeps() Deps {
	counter := 0
	return Deps{
		Now: func() time.Time { return fixedNow },
		NewID: func() string {
			counter++
			return "id-" + string(rune('a'+counter-1))
		},
		PickColor: func() string { return "#1a73e8" },
	}
}

func seededState() models.CalendarState {
	return models.CalendarState{
		CurrentDate: fixedNow,
		View:        models.ViewMonth,
		Events: []models.Event{
			{
				ID:        "seed-1",
				Title:     "Team Meeting",
				StartDate: time.Date(2025, time.June, 25, 10, 0, 0, 0, time.Local),
				EndDate:   time.Date(2025, time.June, 25, 11, 0, 0, 0, time.Local),
				Color:     "#1a73e8",
			},
			{
				ID:        "seed-2",
				Title:     "Project Review",
				StartDate: time.Date(2025, time.June, 27, 14, 0, 0, 0, time.Local),
				EndDate:   time.Date(2025, time.June, 27, 15, 30, 0, 0, time.Local),
				Color:     "#d93025",
			},
		},
	}
}

func TestReduceSetView(t *testing.T) {
	state := seededState()

	next := Reduce(state, SetView{View: models.ViewWeek}, testDeps())
	assert.Equal(t, models.ViewWeek, next.View)

	unchanged := Reduce(next, SetView{View: models.View("quarter")}, testDeps())
	assert.Equal(t, next, unchanged)
}

func TestReduceSetDate(t *testing.T) {
	target := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local)
	next := Reduce(seededState(), SetDate{Date: target}, testDeps())
	assert.Equal(t, target, next.CurrentDate)

	unchanged := Reduce(next, SetDate{}, testDeps())
	assert.Equal(t, next, unchanged)
}

func TestReduceNavigateByView(t *testing.T) {
	cases := []struct {
		name      string
		view      models.View
		direction models.Direction
		want      time.Time
	}{
		{"month next", models.ViewMonth, models.DirectionNext, time.Date(2025, time.July, 25, 12, 0, 0, 0, time.Local)},
		{"month prev", models.ViewMonth, models.DirectionPrev, time.Date(2025, time.May, 25, 12, 0, 0, 0, time.Local)},
		{"week next", models.ViewWeek, models.DirectionNext, time.Date(2025, time.July, 2, 12, 0, 0, 0, time.Local)},
		{"week prev", models.ViewWeek, models.DirectionPrev, time.Date(2025, time.June, 18, 12, 0, 0, 0, time.Local)},
		{"day next", models.ViewDay, models.DirectionNext, time.Date(2025, time.June, 26, 12, 0, 0, 0, time.Local)},
		{"day prev", models.ViewDay, models.DirectionPrev, time.Date(2025, time.June, 24, 12, 0, 0, 0, time.Local)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := seededState()
			state.View = tc.view
			next := Reduce(state, Navigate{Direction: tc.direction}, testDeps())
			assert.Equal(t, tc.want, next.CurrentDate)
			assert.Equal(t, state.Events, next.Events, "navigation must not touch events")
		})
	}
}

func TestReduceNavigateMonthEndOfMonthClamp(t *testing.T) {
	state := seededState()
	state.CurrentDate = time.Date(2025, time.January, 31, 0, 0, 0, 0, time.Local)

	next := Reduce(state, Navigate{Direction: models.DirectionNext}, testDeps())
	assert.Equal(t, time.February, next.CurrentDate.Month(), "Jan 31 + 1 month must not skip to March")
	assert.Equal(t, 28, next.CurrentDate.Day())
}

func TestReduceNavigateToday(t *testing.T) {
	state := seededState()
	state.CurrentDate = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local)

	next := Reduce(state, Navigate{Direction: models.DirectionToday}, testDeps())
	assert.Equal(t, fixedNow, next.CurrentDate)
}

func TestReduceNavigateUnknownDirection(t *testing.T) {
	state := seededState()
	next := Reduce(state, Navigate{Direction: models.Direction("sideways")}, testDeps())
	assert.Equal(t, state, next)
}

func TestReduceAddEvent(t *testing.T) {
	state := seededState()
	state.IsEventModalOpen = true

	start := time.Date(2025, time.June, 28, 9, 0, 0, 0, time.Local)
	next := Reduce(state, AddEvent{
		Title:     "X",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}, testDeps())

	require.Len(t, next.Events, 3)
	added := next.Events[2]
	assert.NotEmpty(t, added.ID)
	for _, existing := range state.Events {
		assert.NotEqual(t, existing.ID, added.ID)
	}
	assert.Equal(t, "X", added.Title)
	assert.Equal(t, "#1a73e8", added.Color)
	assert.False(t, next.IsEventModalOpen)
	assert.Nil(t, next.SelectedEvent)

	// the original state's slice is untouched
	assert.Len(t, state.Events, 2)
}

func TestReduceUpdateEventPreservesPosition(t *testing.T) {
	state := seededState()
	updated := state.Events[0]
	updated.Title = "Team Meeting (moved)"
	updated.StartDate = updated.StartDate.Add(time.Hour)

	next := Reduce(state, UpdateEvent{Event: updated}, testDeps())
	require.Len(t, next.Events, 2)
	assert.Equal(t, "Team Meeting (moved)", next.Events[0].Title)
	assert.Equal(t, "seed-1", next.Events[0].ID)
	assert.Equal(t, "seed-2", next.Events[1].ID)
	assert.Nil(t, next.SelectedEvent)
	assert.False(t, next.IsEventModalOpen)
}

func TestReduceUpdateEventMissingIDLeavesCollection(t *testing.T) {
	state := seededState()
	next := Reduce(state, UpdateEvent{Event: models.Event{ID: "ghost", Title: "?"}}, testDeps())
	assert.Equal(t, state.Events, next.Events)
}

func TestReduceDeleteEvent(t *testing.T) {
	state := seededState()
	next := Reduce(state, DeleteEvent{ID: "seed-1"}, testDeps())
	require.Len(t, next.Events, 1)
	assert.Equal(t, "seed-2", next.Events[0].ID)
	assert.Nil(t, next.SelectedEvent)
	assert.False(t, next.IsEventModalOpen)
}

func TestReduceDeleteEventMissingIDIsNoOp(t *testing.T) {
	state := seededState()
	next := Reduce(state, DeleteEvent{ID: "ghost"}, testDeps())
	assert.Equal(t, state.Events, next.Events)
}

func TestReduceSelectAndToggle(t *testing.T) {
	state := seededState()
	event := state.Events[0]

	selected := Reduce(state, SelectEvent{Event: &event}, testDeps())
	require.NotNil(t, selected.SelectedEvent)
	assert.Equal(t, "seed-1", selected.SelectedEvent.ID)
	assert.False(t, selected.IsEventModalOpen, "selection alone does not open the modal")

	opened := Reduce(selected, ToggleEventModal{Open: true}, testDeps())
	assert.True(t, opened.IsEventModalOpen)
	require.NotNil(t, opened.SelectedEvent, "opening keeps whatever selection the caller set")

	closed := Reduce(opened, ToggleEventModal{Open: false}, testDeps())
	assert.False(t, closed.IsEventModalOpen)
	assert.Nil(t, closed.SelectedEvent, "closing clears the selection")
}

func TestReduceToggleModalCloseIsIdempotent(t *testing.T) {
	state := seededState()
	once := Reduce(state, ToggleEventModal{Open: false}, testDeps())
	twice := Reduce(once, ToggleEventModal{Open: false}, testDeps())
	assert.Equal(t, once, twice)
}

func TestReduceSelectThenOpenThenDelete(t *testing.T) {
	state := seededState()
	event := state.Events[0]
	deps := testDeps()

	state = Reduce(state, SelectEvent{Event: &event}, deps)
	state = Reduce(state, ToggleEventModal{Open: true}, deps)
	state = Reduce(state, DeleteEvent{ID: event.ID}, deps)

	_, found := state.FindEvent(event.ID)
	assert.False(t, found)
	assert.Nil(t, state.SelectedEvent)
	assert.False(t, state.IsEventModalOpen)
}

func TestReduceNilActionIsIdentity(t *testing.T) {
	state := seededState()
	assert.Equal(t, state, Reduce(state, nil, testDeps()))
}

func TestModalClosedImpliesNoSelection(t *testing.T) {
	deps := testDeps()
	state := seededState()
	event := state.Events[1]

	actions := []Action{
		SelectEvent{Event: &event},
		ToggleEventModal{Open: true},
		SetView{View: models.ViewDay},
		Navigate{Direction: models.DirectionNext},
		ToggleEventModal{Open: false},
		AddEvent{Title: "Y", StartDate: fixedNow, EndDate: fixedNow.Add(time.Hour)},
		DeleteEvent{ID: "seed-2"},
		ToggleEventModal{Open: false},
	}

	for _, action := range actions {
		state = Reduce(state, action, deps)
		if !state.IsEventModalOpen {
			assert.Nil(t, state.SelectedEvent, "after %s", ActionName(action))
		}
	}
}
