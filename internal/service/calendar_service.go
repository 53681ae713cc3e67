package service

import (
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/calview/calview-api/internal/dategrid"
	"github.com/calview/calview-api/internal/dto"
	"github.com/calview/calview-api/internal/models"
	"github.com/calview/calview-api/internal/placement"
	"github.com/calview/calview-api/internal/store"
	"github.com/calview/calview-api/pkg/config"
	appErrors "github.com/calview/calview-api/pkg/errors"
)

// CalendarService is the boundary between the HTTP surface and the state
// store. Payload validation happens here so the reducer itself can stay
// permissive, mirroring a form layer that validates before dispatching.
type CalendarService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	cfg       config.CalendarConfig
}

// NewCalendarService constructs the service.
func NewCalendarService(st *store.Store, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cfg config.CalendarConfig) *CalendarService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WeekHourHeight <= 0 {
		cfg.WeekHourHeight = 48
	}
	if cfg.DayHourHeight <= 0 {
		cfg.DayHourHeight = 64
	}
	return &CalendarService{store: st, validator: validate, logger: logger, metrics: metrics, cfg: cfg}
}

func (s *CalendarService) dispatch(action store.Action) models.CalendarState {
	s.metrics.CountAction(store.ActionName(action))
	return s.store.Dispatch(action)
}

// State returns the current calendar state.
func (s *CalendarService) State() models.CalendarState {
	return s.store.State()
}

// SetView switches the active display granularity.
func (s *CalendarService) SetView(req dto.SetViewRequest) (models.CalendarState, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.CalendarState{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid view")
	}
	return s.dispatch(store.SetView{View: models.View(req.View)}), nil
}

// SetDate anchors the visible period to the given day.
func (s *CalendarService) SetDate(req dto.SetDateRequest) (models.CalendarState, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.CalendarState{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid date")
	}
	return s.dispatch(store.SetDate{Date: req.Date}), nil
}

// Navigate shifts the current date by one unit of the active view.
func (s *CalendarService) Navigate(req dto.NavigateRequest) (models.CalendarState, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.CalendarState{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid direction")
	}
	return s.dispatch(store.Navigate{Direction: models.Direction(req.Direction)}), nil
}

// CreateEvent validates the form payload and appends a new event. Inverted
// date ranges are rejected here; the core itself would store them.
func (s *CalendarService) CreateEvent(req dto.CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_date must be on or after start_date")
	}

	next := s.dispatch(store.AddEvent{
		Title:       req.Title,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
	})
	created := next.Events[len(next.Events)-1]
	s.logger.Info("event created", zap.String("event_id", created.ID), zap.String("title", created.Title))
	return &created, nil
}

// UpdateEvent merges the form payload into the stored event. The stored color
// and id survive the merge.
func (s *CalendarService) UpdateEvent(id string, req dto.UpdateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "end_date must be on or after start_date")
	}

	existing, ok := s.store.State().FindEvent(id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
	}
	existing.Title = req.Title
	existing.StartDate = req.StartDate
	existing.EndDate = req.EndDate
	existing.Description = req.Description

	s.dispatch(store.UpdateEvent{Event: existing})
	return &existing, nil
}

// DeleteEvent removes the event with the given id. Deleting an absent id is
// a no-op, so the call is idempotent.
func (s *CalendarService) DeleteEvent(id string) {
	s.dispatch(store.DeleteEvent{ID: id})
}

// SelectEvent marks an event for editing; a nil id clears the selection. An
// unknown id degrades to a silent no-op.
func (s *CalendarService) SelectEvent(req dto.SelectEventRequest) models.CalendarState {
	if req.EventID == nil {
		return s.dispatch(store.SelectEvent{})
	}
	event, ok := s.store.State().FindEvent(*req.EventID)
	if !ok {
		s.logger.Debug("select ignored, unknown event", zap.String("event_id", *req.EventID))
		return s.store.State()
	}
	return s.dispatch(store.SelectEvent{Event: &event})
}

// ToggleModal shows or hides the event modal.
func (s *CalendarService) ToggleModal(req dto.ToggleModalRequest) models.CalendarState {
	return s.dispatch(store.ToggleEventModal{Open: req.Open})
}

// MonthGrid returns the cells of the month grid containing the given date.
func (s *CalendarService) MonthGrid(date time.Time) []dto.GridDay {
	return s.gridDays(dategrid.MonthGrid(date, s.cfg.WeekStart), date)
}

// WeekGrid returns the 7 cells of the week containing the given date.
func (s *CalendarService) WeekGrid(date time.Time) []dto.GridDay {
	return s.gridDays(dategrid.WeekGrid(date, s.cfg.WeekStart), date)
}

func (s *CalendarService) gridDays(days []time.Time, ref time.Time) []dto.GridDay {
	cells := make([]dto.GridDay, len(days))
	for i, day := range days {
		label, _ := dategrid.Format(day, dategrid.PatternDayOfMonth)
		cells[i] = dto.GridDay{
			Date:    day,
			Label:   label,
			InMonth: dategrid.IsSameMonth(day, ref),
			Today:   dategrid.IsToday(day),
		}
	}
	return cells
}

// DayEvents returns the events occurring on the given day with their pixel
// placement for a column of the given hour height. A non-positive hour height
// falls back to the configured day-view height.
func (s *CalendarService) DayEvents(day time.Time, hourHeightPx float64) dto.DayEventsResponse {
	if hourHeightPx <= 0 {
		hourHeightPx = s.cfg.DayHourHeight
	}

	events := placement.EventsOnDay(s.store.State().Events, day)
	placed := make([]dto.PlacedEvent, len(events))
	for i, event := range events {
		box := placement.Vertical(event, hourHeightPx)
		placed[i] = dto.PlacedEvent{Event: event, TopPx: box.TopPx, HeightPx: box.HeightPx}
	}

	return dto.DayEventsResponse{
		Date:         dategrid.StartOfDay(day),
		HourHeightPx: hourHeightPx,
		TimeSlots:    dategrid.TimeSlots(),
		Events:       placed,
	}
}
