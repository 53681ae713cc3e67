package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/calview/calview-api/pkg/errors"
	"github.com/calview/calview-api/pkg/response"
)

type exportService interface {
	ICS(month *time.Time) ([]byte, error)
	CSV(month *time.Time) ([]byte, error)
	PDF(month *time.Time) ([]byte, error)
}

// ExportHandler streams agenda downloads.
type ExportHandler struct {
	service exportService
}

// NewExportHandler constructs the handler.
func NewExportHandler(service exportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// ICS godoc
// @Summary Export events as iCalendar
// @Tags Export
// @Produce text/calendar
// @Param month query string false "Month filter (YYYY-MM)"
// @Router /export/ics [get]
func (h *ExportHandler) ICS(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.service.ICS(month)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calendar.ics"`)
	c.Data(http.StatusOK, "text/calendar", data)
}

// CSV godoc
// @Summary Export events as CSV
// @Tags Export
// @Produce text/csv
// @Param month query string false "Month filter (YYYY-MM)"
// @Router /export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.service.CSV(month)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calendar.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// PDF godoc
// @Summary Export events as a PDF agenda
// @Tags Export
// @Produce application/pdf
// @Param month query string false "Month filter (YYYY-MM)"
// @Router /export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	data, err := h.service.PDF(month)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="calendar.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func parseMonth(c *gin.Context) (*time.Time, error) {
	raw := c.Query("month")
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01", raw, time.Local)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid month, expected YYYY-MM")
	}
	return &parsed, nil
}
