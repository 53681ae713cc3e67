package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/calview/calview-api/internal/dto"
	"github.com/calview/calview-api/internal/models"
	appErrors "github.com/calview/calview-api/pkg/errors"
	"github.com/calview/calview-api/pkg/response"
)

type calendarService interface {
	State() models.CalendarState
	SetView(req dto.SetViewRequest) (models.CalendarState, error)
	SetDate(req dto.SetDateRequest) (models.CalendarState, error)
	Navigate(req dto.NavigateRequest) (models.CalendarState, error)
	MonthGrid(date time.Time) []dto.GridDay
	WeekGrid(date time.Time) []dto.GridDay
	DayEvents(day time.Time, hourHeightPx float64) dto.DayEventsResponse
}

// CalendarHandler exposes the state store and the grid queries.
type CalendarHandler struct {
	service calendarService
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(service calendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// GetState godoc
// @Summary Current calendar state
// @Tags Calendar
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /calendar/state [get]
func (h *CalendarHandler) GetState(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.State())
}

// SetView godoc
// @Summary Switch the active view
// @Tags Calendar
// @Accept json
// @Produce json
// @Router /calendar/view [put]
func (h *CalendarHandler) SetView(c *gin.Context) {
	var req dto.SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	state, err := h.service.SetView(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// SetDate godoc
// @Summary Anchor the visible period to a date
// @Tags Calendar
// @Accept json
// @Produce json
// @Router /calendar/date [put]
func (h *CalendarHandler) SetDate(c *gin.Context) {
	var req dto.SetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	state, err := h.service.SetDate(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// Navigate godoc
// @Summary Move to the previous/next period, or jump to today
// @Tags Calendar
// @Accept json
// @Produce json
// @Router /calendar/navigate [post]
func (h *CalendarHandler) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	state, err := h.service.Navigate(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, state)
}

// MonthGrid godoc
// @Summary Days of the month grid containing a date
// @Tags Calendar
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to the current date"
// @Router /calendar/grid/month [get]
func (h *CalendarHandler) MonthGrid(c *gin.Context) {
	date, err := h.refDate(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.service.MonthGrid(date))
}

// WeekGrid godoc
// @Summary Days of the week grid containing a date
// @Tags Calendar
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to the current date"
// @Router /calendar/grid/week [get]
func (h *CalendarHandler) WeekGrid(c *gin.Context) {
	date, err := h.refDate(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, h.service.WeekGrid(date))
}

// DayEvents godoc
// @Summary Events on a day with time-grid placement
// @Tags Calendar
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param hour_height query number false "Pixel height of one hour"
// @Router /calendar/days/{date}/events [get]
func (h *CalendarHandler) DayEvents(c *gin.Context) {
	day, err := parseDate(c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	hourHeight := 0.0
	if raw := c.Query("hour_height"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "hour_height must be a positive number"))
			return
		}
		hourHeight = parsed
	}

	response.JSON(c, http.StatusOK, h.service.DayEvents(day, hourHeight))
}

func (h *CalendarHandler) refDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return h.service.State().CurrentDate, nil
	}
	return parseDate(raw)
}

func parseDate(raw string) (time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid date, expected YYYY-MM-DD")
	}
	return parsed, nil
}
