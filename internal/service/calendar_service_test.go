package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calview/calview-api/internal/dto"
	"github.com/calview/calview-api/internal/models"
	"github.com/calview/calview-api/internal/store"
	"github.com/calview/calview-api/pkg/config"
	appErrors "github.com/calview/calview-api/pkg/errors"
)

var testNow = time.Date(2025, time.June, 25, 12, 0, 0, 0, time.Local)

func newTestService(t *testing.T, events []models.Event) (*CalendarService, *store.Store) {
	t.Helper()
	st := store.New(
		models.CalendarState{CurrentDate: testNow, Events: events},
		store.Deps{Now: func() time.Time { return testNow }},
		nil,
	)
	svc := NewCalendarService(st, nil, nil, nil, config.CalendarConfig{WeekStart: time.Sunday})
	return svc, st
}

func seedEvents() []models.Event {
	return []models.Event{
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
	}
}

func TestCalendarServiceSetViewRejectsUnknown(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.SetView(dto.SetViewRequest{View: "quarter"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	state, err := svc.SetView(dto.SetViewRequest{View: "week"})
	require.NoError(t, err)
	assert.Equal(t, models.ViewWeek, state.View)
}

func TestCalendarServiceNavigateMonth(t *testing.T) {
	svc, _ := newTestService(t, seedEvents())

	state, err := svc.Navigate(dto.NavigateRequest{Direction: "next"})
	require.NoError(t, err)
	assert.Equal(t, time.July, state.CurrentDate.Month())
	assert.Equal(t, 2025, state.CurrentDate.Year())
	assert.Len(t, state.Events, 2, "navigation must not touch events")

	_, err = svc.Navigate(dto.NavigateRequest{Direction: "sideways"})
	require.Error(t, err)
}

func TestCalendarServiceCreateEvent(t *testing.T) {
	svc, st := newTestService(t, seedEvents())

	created, err := svc.CreateEvent(dto.CreateEventRequest{
		Title:     "X",
		StartDate: testNow,
		EndDate:   testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Color)

	state := st.State()
	require.Len(t, state.Events, 3)
	assert.False(t, state.IsEventModalOpen)
	assert.Equal(t, created.ID, state.Events[2].ID)
}

func TestCalendarServiceCreateEventValidation(t *testing.T) {
	svc, st := newTestService(t, nil)

	cases := []struct {
		name string
		req  dto.CreateEventRequest
	}{
		{"missing title", dto.CreateEventRequest{StartDate: testNow, EndDate: testNow.Add(time.Hour)}},
		{"missing dates", dto.CreateEventRequest{Title: "X"}},
		{"inverted range", dto.CreateEventRequest{Title: "X", StartDate: testNow, EndDate: testNow.Add(-time.Hour)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEvent(tc.req)
			require.Error(t, err)
			assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
		})
	}
	assert.Empty(t, st.State().Events, "rejected payloads must not reach the store")
}

func TestCalendarServiceUpdateEventPreservesColor(t *testing.T) {
	svc, st := newTestService(t, seedEvents())

	updated, err := svc.UpdateEvent("seed-1", dto.UpdateEventRequest{
		Title:     "Team Meeting (moved)",
		StartDate: testNow,
		EndDate:   testNow.Add(time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "#1a73e8", updated.Color)
	assert.Equal(t, "seed-1", updated.ID)

	state := st.State()
	assert.Equal(t, "Team Meeting (moved)", state.Events[0].Title)
	assert.Equal(t, "seed-2", state.Events[1].ID)
}

func TestCalendarServiceUpdateEventNotFound(t *testing.T) {
	svc, _ := newTestService(t, seedEvents())

	_, err := svc.UpdateEvent("ghost", dto.UpdateEventRequest{
		Title:     "X",
		StartDate: testNow,
		EndDate:   testNow.Add(time.Hour),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCalendarServiceDeleteEventIdempotent(t *testing.T) {
	svc, st := newTestService(t, seedEvents())

	svc.DeleteEvent("seed-1")
	require.Len(t, st.State().Events, 1)

	svc.DeleteEvent("seed-1")
	assert.Len(t, st.State().Events, 1)
}

func TestCalendarServiceSelectUnknownIsNoOp(t *testing.T) {
	svc, _ := newTestService(t, seedEvents())

	ghost := "ghost"
	state := svc.SelectEvent(dto.SelectEventRequest{EventID: &ghost})
	assert.Nil(t, state.SelectedEvent)

	id := "seed-2"
	state = svc.SelectEvent(dto.SelectEventRequest{EventID: &id})
	require.NotNil(t, state.SelectedEvent)
	assert.Equal(t, "seed-2", state.SelectedEvent.ID)
}

func TestCalendarServiceModalFlow(t *testing.T) {
	svc, _ := newTestService(t, seedEvents())

	id := "seed-1"
	svc.SelectEvent(dto.SelectEventRequest{EventID: &id})
	state := svc.ToggleModal(dto.ToggleModalRequest{Open: true})
	assert.True(t, state.IsEventModalOpen)
	require.NotNil(t, state.SelectedEvent)

	state = svc.ToggleModal(dto.ToggleModalRequest{Open: false})
	assert.False(t, state.IsEventModalOpen)
	assert.Nil(t, state.SelectedEvent)
}

func TestCalendarServiceGrids(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ref := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.Local)

	month := svc.MonthGrid(ref)
	require.NotEmpty(t, month)
	assert.Zero(t, len(month)%7)
	inMonth := 0
	for _, cell := range month {
		if cell.InMonth {
			inMonth++
		}
		assert.NotEmpty(t, cell.Label)
	}
	assert.Equal(t, 30, inMonth)

	week := svc.WeekGrid(ref)
	require.Len(t, week, 7)
	assert.Equal(t, time.Sunday, week[0].Date.Weekday())
}

func TestCalendarServiceDayEvents(t *testing.T) {
	svc, _ := newTestService(t, seedEvents())
	day := time.Date(2025, time.June, 25, 0, 0, 0, 0, time.Local)

	resp := svc.DayEvents(day, 48)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "seed-1", resp.Events[0].ID)
	assert.InDelta(t, 480, resp.Events[0].TopPx, 1e-9)
	assert.InDelta(t, 48, resp.Events[0].HeightPx, 1e-9)
	assert.Len(t, resp.TimeSlots, 24)

	// zero hour height falls back to the configured day-view height
	resp = svc.DayEvents(day, 0)
	assert.InDelta(t, 64, resp.HourHeightPx, 1e-9)
}
