package export

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/calview/calview-api/internal/models"
)

// ICSExporter serializes calendar events into an iCalendar (RFC 5545)
// document that other calendar tools can import.
type ICSExporter struct {
	prodID string
}

// NewICSExporter constructs an ICS exporter.
func NewICSExporter() *ICSExporter {
	return &ICSExporter{prodID: "-//calview//calview-api//EN"}
}

// Render builds a VCALENDAR with one VEVENT per event. The event's display
// color travels in the RFC 7986 COLOR property.
func (e *ICSExporter) Render(name string, events []models.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(e.prodID)
	if name != "" {
		cal.SetXWRCalName(name)
	}

	stamp := time.Now().UTC()
	for _, event := range events {
		if event.ID == "" {
			return nil, fmt.Errorf("ics: event %q has no id", event.Title)
		}
		ve := cal.AddEvent(event.ID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(event.Title)
		ve.SetStartAt(event.StartDate)
		ve.SetEndAt(event.EndDate)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Color != "" {
			ve.SetProperty(ical.ComponentProperty("COLOR"), event.Color)
		}
	}

	return []byte(cal.Serialize()), nil
}
