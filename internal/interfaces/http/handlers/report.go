// internal/interfaces/http/handlers/report.go
package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/your-org/pos-backend/internal/domain/report"
)

// ReportHandler handles sales reporting endpoints
type ReportHandler struct {
	reports *report.Service
}

// NewReportHandler creates a new report handler
func NewReportHandler(reports *report.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// DailyReport handles GET /reports/daily
func (h *ReportHandler) DailyReport(c *gin.Context) {
	day := time.Now()
	if dateParam := c.Query("date"); dateParam != "" {
		parsed, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "date must be in YYYY-MM-DD format",
			})
			return
		}
		day = parsed
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Daily report generated successfully",
		"data":    h.reports.Daily(day),
	})
}

// ExportSalesCSV handles GET /reports/sales.csv
func (h *ReportHandler) ExportSalesCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.reports.ExportCSV(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to export sales history",
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=sales.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
