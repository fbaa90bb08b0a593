package handler

import (
	"net/http"

	exportapp "github.com/bizdash/backend/internal/application/export"
	"github.com/gin-gonic/gin"
)

// ExportHandler serves CSV downloads of the record tables
type ExportHandler struct {
	BaseHandler
	exporter *exportapp.Exporter
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exporter *exportapp.Exporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// Invoices downloads invoices in a date range as CSV
func (h *ExportHandler) Invoices(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.exporter.Invoices(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	serveCSV(c, result)
}

// Expenses downloads expense records in a date range as CSV
func (h *ExportHandler) Expenses(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.exporter.Expenses(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	serveCSV(c, result)
}

// Income downloads income records in a date range as CSV
func (h *ExportHandler) Income(c *gin.Context) {
	from, to, err := parseDateRange(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.exporter.Income(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	serveCSV(c, result)
}

// Salaries downloads salary payments of one month as CSV
func (h *ExportHandler) Salaries(c *gin.Context) {
	month := c.Query("month")
	if !monthPattern.MatchString(month) {
		h.BadRequest(c, "Query parameter 'month' must be in YYYY-MM format")
		return
	}

	result, err := h.exporter.Salaries(c.Request.Context(), month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	serveCSV(c, result)
}

// serveCSV writes an export result as a file download
func serveCSV(c *gin.Context, result *exportapp.Result) {
	c.Header("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", result.Data)
}
