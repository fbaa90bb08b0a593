package handler

import (
	"time"

	reportapp "github.com/bizdash/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// ReportHandler handles dashboard report endpoints
type ReportHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(dashboardService *reportapp.DashboardService) *ReportHandler {
	return &ReportHandler{dashboardService: dashboardService}
}

// Dashboard returns the aggregate numbers behind the dashboard home
// page. Without from/to it covers the trailing twelve months.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	summary, err := h.dashboardService.Summary(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// parseDateRange reads optional from/to query parameters, defaulting to
// the trailing twelve months ending today
func parseDateRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	to := now
	from := now.AddDate(-1, 0, 0)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDate("from")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDate("to")
		}
		// Include the whole end day
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, errRange{}
	}
	return from, to, nil
}

type errRange struct{}

func (errRange) Error() string { return "'to' must not be before 'from'" }

type errInvalidDate string

func (e errInvalidDate) Error() string {
	return "Query parameter '" + string(e) + "' must be a YYYY-MM-DD date"
}
