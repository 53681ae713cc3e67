package dto

import (
	"time"

	"github.com/calview/calview-api/internal/models"
)

// SetViewRequest switches the active view.
type SetViewRequest struct {
	View string `json:"view" validate:"required,oneof=month week day"`
}

// SetDateRequest anchors the visible period.
type SetDateRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

// NavigateRequest moves the current date relative to the active view.
type NavigateRequest struct {
	Direction string `json:"direction" validate:"required,oneof=prev next today"`
}

// CreateEventRequest describes the event-form payload for a new event.
// Identity and color are assigned server-side.
type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Description string    `json:"description"`
}

// UpdateEventRequest describes the event-form payload for an edit. The id
// comes from the URL; color is preserved from the stored event.
type UpdateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Description string    `json:"description"`
}

// SelectEventRequest marks an event as open for editing; a null id clears
// the selection.
type SelectEventRequest struct {
	EventID *string `json:"event_id"`
}

// ToggleModalRequest shows or hides the event modal.
type ToggleModalRequest struct {
	Open bool `json:"open"`
}

// GridDay is one cell of a month or week grid.
type GridDay struct {
	Date    time.Time `json:"date"`
	Label   string    `json:"label"`
	InMonth bool      `json:"in_month"`
	Today   bool      `json:"today"`
}

// PlacedEvent pairs an event with its pixel box in a time-grid column.
type PlacedEvent struct {
	models.Event
	TopPx    float64 `json:"top_px"`
	HeightPx float64 `json:"height_px"`
}

// DayEventsResponse lists a day's events with placement for the requested
// hour height.
type DayEventsResponse struct {
	Date         time.Time     `json:"date"`
	HourHeightPx float64       `json:"hour_height_px"`
	TimeSlots    []string      `json:"time_slots"`
	Events       []PlacedEvent `json:"events"`
}
