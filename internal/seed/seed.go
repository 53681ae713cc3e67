// Package seed loads the initial event collection: either a YAML file the
// operator points at, or the built-in demo pair used for development.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/calview/calview-api/internal/eventops"
	"github.com/calview/calview-api/internal/models"
)

type file struct {
	Events []models.Event `yaml:"events"`
}

// Load reads seed events from a YAML file. Missing ids and colors are filled
// in; entries without a title or start date are rejected so a bad seed file
// fails loudly at startup instead of producing half-formed state.
func Load(path string) ([]models.Event, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	events := make([]models.Event, 0, len(f.Events))
	for i, event := range f.Events {
		if event.Title == "" {
			return nil, fmt.Errorf("seed event %d: missing title", i)
		}
		if event.StartDate.IsZero() {
			return nil, fmt.Errorf("seed event %d (%s): missing start", i, event.Title)
		}
		if event.EndDate.IsZero() {
			event.EndDate = event.StartDate
		}
		if event.ID == "" {
			event.ID = eventops.NewID()
		}
		if event.Color == "" {
			event.Color = eventops.DefaultColor
		}
		events = append(events, event)
	}
	return events, nil
}

// DemoEvents returns the two sample entries shown on first launch.
func DemoEvents() []models.Event {
	return []models.Event{
		{
			ID:          eventops.NewID(),
			Title:       "Team Meeting",
			StartDate:   time.Date(2025, time.June, 25, 10, 0, 0, 0, time.Local),
			EndDate:     time.Date(2025, time.June, 25, 11, 0, 0, 0, time.Local),
			Description: "Weekly team sync",
			Color:       "#1a73e8",
		},
		{
			ID:          eventops.NewID(),
			Title:       "Project Review",
			StartDate:   time.Date(2025, time.June, 27, 14, 0, 0, 0, time.Local),
			EndDate:     time.Date(2025, time.June, 27, 15, 30, 0, 0, time.Local),
			Description: "Quarterly project review meeting",
			Color:       "#d93025",
		},
	}
}
