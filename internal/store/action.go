package store

import (
	"time"

	"github.com/calview/calview-api/internal/models"
)

// Action is the closed set of state transitions the store accepts. Each
// variant is its own type so the reducer's transition table is checked at
// compile time instead of dispatching on string tags.
type Action interface {
	name() string
}

// SetView switches the active display granularity.
type SetView struct {
	View models.View
}

// SetDate anchors the visible period to a specific day.
type SetDate struct {
	Date time.Time
}

// Navigate shifts the current date by one unit of the active view, or jumps
// back to today.
type Navigate struct {
	Direction models.Direction
}

// AddEvent appends a new event built from the user's form input. Identity and
// color are assigned during the transition.
type AddEvent struct {
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	Description string
}

// UpdateEvent replaces the entry whose id matches, preserving its position.
type UpdateEvent struct {
	Event models.Event
}

// DeleteEvent removes the entry with the given id, if present.
type DeleteEvent struct {
	ID string
}

// SelectEvent marks an event as open for editing; nil clears the selection.
// It does not itself open or close the modal.
type SelectEvent struct {
	Event *models.Event
}

// ToggleEventModal shows or hides the event modal. Hiding also clears the
// selection, which is where the modal-closed invariant is enforced.
type ToggleEventModal struct {
	Open bool
}

func (SetView) name() string          { return "SET_VIEW" }
func (SetDate) name() string          { return "SET_DATE" }
func (Navigate) name() string         { return "NAVIGATE" }
func (AddEvent) name() string         { return "ADD_EVENT" }
func (UpdateEvent) name() string      { return "UPDATE_EVENT" }
func (DeleteEvent) name() string      { return "DELETE_EVENT" }
func (SelectEvent) name() string      { return "SELECT_EVENT" }
func (ToggleEventModal) name() string { return "TOGGLE_EVENT_MODAL" }

// ActionName reports the wire-style name of an action, used for logging and
// metrics labels. Nil or foreign actions report as unknown.
func ActionName(action Action) string {
	if action == nil {
		return "UNKNOWN"
	}
	return action.name()
}
