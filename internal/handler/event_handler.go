package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/calview/calview-api/internal/dto"
	"github.com/calview/calview-api/internal/models"
	appErrors "github.com/calview/calview-api/pkg/errors"
	"github.com/calview/calview-api/pkg/response"
)

type eventService interface {
	CreateEvent(req dto.CreateEventRequest) (*models.Event, error)
	UpdateEvent(id string, req dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(id string)
	SelectEvent(req dto.SelectEventRequest) models.CalendarState
	ToggleModal(req dto.ToggleModalRequest) models.CalendarState
}

// EventHandler exposes event CRUD plus selection and modal state.
type EventHandler struct {
	service eventService
}

// NewEventHandler constructs the handler.
func NewEventHandler(service eventService) *EventHandler {
	return &EventHandler{service: service}
}

// Create godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	event, err := h.service.CreateEvent(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	event, err := h.service.UpdateEvent(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags Events
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *gin.Context) {
	h.service.DeleteEvent(c.Param("id"))
	response.NoContent(c)
}

// Select godoc
// @Summary Select an event for editing, or clear the selection
// @Tags Events
// @Accept json
// @Produce json
// @Router /calendar/selection [post]
func (h *EventHandler) Select(c *gin.Context) {
	var req dto.SelectEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.SelectEvent(req))
}

// ToggleModal godoc
// @Summary Open or close the event modal
// @Tags Events
// @Accept json
// @Produce json
// @Router /calendar/modal [put]
func (h *EventHandler) ToggleModal(c *gin.Context) {
	var req dto.ToggleModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}
	response.JSON(c, http.StatusOK, h.service.ToggleModal(req))
}
