package store

import (
	"time"

	"github.com/calview/calview-api/internal/dategrid"
	"github.com/calview/calview-api/internal/eventops"
	"github.com/calview/calview-api/internal/models"
)

// Deps supplies the reducer's impure inputs (clock, identity, color draw) so
// every transition stays deterministic under test.
type Deps struct {
	Now       func() time.Time
	NewID     func() string
	PickColor func() string
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.NewID == nil {
		d.NewID = eventops.NewID
	}
	if d.PickColor == nil {
		d.PickColor = eventops.RandomColor
	}
	return d
}

// Reduce maps (state, action) to the next state. It is total: every
// well-formed action produces a next state, malformed payloads and unknown
// actions degrade to the identity, and nothing here ever fails.
func Reduce(state models.CalendarState, action Action, deps Deps) models.CalendarState {
	deps = deps.withDefaults()

	switch a := action.(type) {
	case SetView:
		return reduceSetView(state, a)
	case SetDate:
		return reduceSetDate(state, a)
	case Navigate:
		return reduceNavigate(state, a, deps.Now)
	case AddEvent:
		return reduceAddEvent(state, a, deps.NewID, deps.PickColor)
	case UpdateEvent:
		return reduceUpdateEvent(state, a)
	case DeleteEvent:
		return reduceDeleteEvent(state, a)
	case SelectEvent:
		return reduceSelectEvent(state, a)
	case ToggleEventModal:
		return reduceToggleEventModal(state, a)
	default:
		return state
	}
}

func reduceSetView(state models.CalendarState, a SetView) models.CalendarState {
	if !a.View.Valid() {
		return state
	}
	state.View = a.View
	return state
}

func reduceSetDate(state models.CalendarState, a SetDate) models.CalendarState {
	if a.Date.IsZero() {
		return state
	}
	state.CurrentDate = a.Date
	return state
}

func reduceNavigate(state models.CalendarState, a Navigate, now func() time.Time) models.CalendarState {
	switch a.Direction {
	case models.DirectionToday:
		state.CurrentDate = now()
		return state
	case models.DirectionPrev, models.DirectionNext:
		step := 1
		if a.Direction == models.DirectionPrev {
			step = -1
		}
		switch state.View {
		case models.ViewMonth:
			state.CurrentDate = dategrid.AddMonths(state.CurrentDate, step)
		case models.ViewWeek:
			state.CurrentDate = dategrid.AddDays(state.CurrentDate, 7*step)
		case models.ViewDay:
			state.CurrentDate = dategrid.AddDays(state.CurrentDate, step)
		}
		return state
	default:
		return state
	}
}

func reduceAddEvent(state models.CalendarState, a AddEvent, newID func() string, pickColor func() string) models.CalendarState {
	event := models.Event{
		ID:          newID(),
		Title:       a.Title,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		Description: a.Description,
		Color:       pickColor(),
	}

	events := make([]models.Event, len(state.Events), len(state.Events)+1)
	copy(events, state.Events)
	state.Events = append(events, event)
	state.SelectedEvent = nil
	state.IsEventModalOpen = false
	return state
}

func reduceUpdateEvent(state models.CalendarState, a UpdateEvent) models.CalendarState {
	events := make([]models.Event, len(state.Events))
	copy(events, state.Events)
	for i, event := range events {
		if event.ID == a.Event.ID {
			events[i] = a.Event
			break
		}
	}
	state.Events = events
	state.SelectedEvent = nil
	state.IsEventModalOpen = false
	return state
}

func reduceDeleteEvent(state models.CalendarState, a DeleteEvent) models.CalendarState {
	events := make([]models.Event, 0, len(state.Events))
	for _, event := range state.Events {
		if event.ID != a.ID {
			events = append(events, event)
		}
	}
	state.Events = events
	state.SelectedEvent = nil
	state.IsEventModalOpen = false
	return state
}

func reduceSelectEvent(state models.CalendarState, a SelectEvent) models.CalendarState {
	if a.Event == nil {
		state.SelectedEvent = nil
		return state
	}
	selected := *a.Event
	state.SelectedEvent = &selected
	return state
}

func reduceToggleEventModal(state models.CalendarState, a ToggleEventModal) models.CalendarState {
	state.IsEventModalOpen = a.Open
	if !a.Open {
		state.SelectedEvent = nil
	}
	return state
}
