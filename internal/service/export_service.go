package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/calview/calview-api/internal/dategrid"
	"github.com/calview/calview-api/internal/models"
	"github.com/calview/calview-api/pkg/errors"
	"github.com/calview/calview-api/pkg/export"
)

type stateProvider interface {
	State() models.CalendarState
}

// ExportService renders the event collection as downloadable agenda files.
// It always reads the canonical state snapshot, never a cached copy.
type ExportService struct {
	state  stateProvider
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	ics    *export.ICSExporter
	logger *zap.Logger
}

// NewExportService constructs the service.
func NewExportService(state stateProvider, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		state:  state,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
		ics:    export.NewICSExporter(),
		logger: logger,
	}
}

// ICS renders the events as an iCalendar document, optionally bounded to the
// month containing the given date.
func (s *ExportService) ICS(month *time.Time) ([]byte, error) {
	events, label := s.eventsFor(month)
	data, err := s.ics.Render(label, events)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal.Code, errors.ErrInternal.Status, "failed to render ics")
	}
	s.logger.Info("agenda exported", zap.String("format", "ics"), zap.Int("events", len(events)))
	return data, nil
}

// CSV renders the events as a CSV table.
func (s *ExportService) CSV(month *time.Time) ([]byte, error) {
	events, _ := s.eventsFor(month)
	data, err := s.csv.Render(s.dataset(events))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal.Code, errors.ErrInternal.Status, "failed to render csv")
	}
	s.logger.Info("agenda exported", zap.String("format", "csv"), zap.Int("events", len(events)))
	return data, nil
}

// PDF renders the events as a tabular PDF agenda.
func (s *ExportService) PDF(month *time.Time) ([]byte, error) {
	events, label := s.eventsFor(month)
	data, err := s.pdf.Render(s.dataset(events), label)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal.Code, errors.ErrInternal.Status, "failed to render pdf")
	}
	s.logger.Info("agenda exported", zap.String("format", "pdf"), zap.Int("events", len(events)))
	return data, nil
}

func (s *ExportService) eventsFor(month *time.Time) ([]models.Event, string) {
	state := s.state.State()
	if month == nil {
		return state.Events, "Calendar agenda"
	}

	monthStart := dategrid.StartOfMonth(*month)
	monthEnd := dategrid.EndOfDay(dategrid.EndOfMonth(*month))

	var filtered []models.Event
	for _, event := range state.Events {
		if event.EndDate.Before(monthStart) || event.StartDate.After(monthEnd) {
			continue
		}
		filtered = append(filtered, event)
	}

	label, _ := dategrid.Format(*month, dategrid.PatternMonthYear)
	return filtered, "Agenda for " + label
}

func (s *ExportService) dataset(events []models.Event) export.Dataset {
	rows := make([]map[string]string, len(events))
	for i, event := range events {
		startDay, _ := dategrid.Format(event.StartDate, dategrid.PatternISODate)
		startTime, _ := dategrid.Format(event.StartDate, dategrid.PatternTime24)
		endDay, _ := dategrid.Format(event.EndDate, dategrid.PatternISODate)
		endTime, _ := dategrid.Format(event.EndDate, dategrid.PatternTime24)
		rows[i] = map[string]string{
			"Title":       event.Title,
			"Start":       startDay + " " + startTime,
			"End":         endDay + " " + endTime,
			"Description": event.Description,
			"Color":       event.Color,
		}
	}
	return export.Dataset{
		Headers: []string{"Title", "Start", "End", "Description", "Color"},
		Rows:    rows,
	}
}
