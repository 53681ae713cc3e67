package models

import "time"

// View is the calendar's display granularity.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// Valid reports whether the view is one of the known granularities.
func (v View) Valid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	default:
		return false
	}
}

// Direction identifies a navigation move relative to the active view.
type Direction string

const (
	DirectionPrev  Direction = "prev"
	DirectionNext  Direction = "next"
	DirectionToday Direction = "today"
)

// Valid reports whether the direction is a known navigation move.
func (d Direction) Valid() bool {
	switch d {
	case DirectionPrev, DirectionNext, DirectionToday:
		return true
	default:
		return false
	}
}

// Event represents a user-created calendar entry.
type Event struct {
	ID          string    `json:"id" yaml:"id"`
	Title       string    `json:"title" yaml:"title"`
	StartDate   time.Time `json:"start_date" yaml:"start"`
	EndDate     time.Time `json:"end_date" yaml:"end"`
	Description string    `json:"description" yaml:"description"`
	Color       string    `json:"color" yaml:"color"`
}

// CalendarState is the single state value owned by the store. Events are held
// in insertion order; SelectedEvent is a transient editing reference, never a
// second source of truth.
type CalendarState struct {
	CurrentDate      time.Time `json:"current_date"`
	View             View      `json:"view"`
	Events           []Event   `json:"events"`
	SelectedEvent    *Event    `json:"selected_event,omitempty"`
	IsEventModalOpen bool      `json:"is_event_modal_open"`
}

// Clone returns a deep copy so callers never alias the owned event slice.
func (s CalendarState) Clone() CalendarState {
	out := s
	if s.Events != nil {
		out.Events = make([]Event, len(s.Events))
		copy(out.Events, s.Events)
	}
	if s.SelectedEvent != nil {
		selected := *s.SelectedEvent
		out.SelectedEvent = &selected
	}
	return out
}

// FindEvent returns the event with the given id, or false when absent.
func (s CalendarState) FindEvent(id string) (Event, bool) {
	for _, event := range s.Events {
		if event.ID == id {
			return event, true
		}
	}
	return Event{}, false
}
