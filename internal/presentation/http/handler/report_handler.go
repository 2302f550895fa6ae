package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okalang/dinebill-api/internal/application/service"
	"github.com/okalang/dinebill-api/internal/domain/enum"
	"github.com/okalang/dinebill-api/internal/presentation/http/dto/response"
	"github.com/okalang/dinebill-api/pkg/export"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary handles GET /reports/summary?period=
func (h *ReportHandler) Summary(c *gin.Context) {
	period, err := enum.ParsePeriod(c.DefaultQuery("period", "today"))
	if err != nil {
		response.BadRequest(c, "Period must be today, week, month or all")
		return
	}

	summary, err := h.reportService.GetSummary(c.Request.Context(), period, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales summary retrieved", summary)
}

// Export handles GET /reports/export?period= and streams an xlsx workbook
// covering every bill in the period, not just the listing cap.
func (h *ReportHandler) Export(c *gin.Context) {
	period, err := enum.ParsePeriod(c.DefaultQuery("period", "all"))
	if err != nil {
		response.BadRequest(c, "Period must be today, week, month or all")
		return
	}

	bills, err := h.reportService.GetBillsForExport(c.Request.Context(), period, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	workbook, err := export.BillsWorkbook(bills)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer workbook.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(period.String())))
	c.Header("Content-Type", xlsxContentType)
	if err := workbook.Write(c.Writer); err != nil {
		// Headers are already out; all we can do is abort the stream.
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}
