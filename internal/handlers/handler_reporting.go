package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizbooks/bizbooks_backend/internal/core/ports/services"
	"github.com/bizbooks/bizbooks_backend/internal/dto"
	"github.com/bizbooks/bizbooks_backend/internal/middleware"
)

// reportingHandler handles HTTP requests for derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes for reports and the day book.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/profit-and-loss", h.getProfitAndLoss)
	}

	daybook := rg.Group("/daybook")
	{
		daybook.GET("", h.getDayBook)
		daybook.GET("/export", h.exportDayBook)
	}
}

// getTrialBalance godoc
// @Summary Get the trial balance
// @Description Lists every non-zero ledger balance split into debit and credit columns
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 500 {object} map[string]string "Failed to generate trial balance"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for trial balance")

	rows, err := h.reportingService.TrialBalance(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate trial balance"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows))
}

// getProfitAndLoss godoc
// @Summary Get the profit and loss summary
// @Description Aggregates revenue, cost of goods and direct expenses across the whole journal
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 500 {object} map[string]string "Failed to generate profit and loss"
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request for profit and loss")

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate profit and loss", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate profit and loss"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getDayBook godoc
// @Summary Get the day book
// @Description Lists the vouchers recorded on one calendar day, defaulting to today
// @Tags daybook
// @Produce  json
// @Param   date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.DayBookResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to generate day book"
// @Router /daybook [get]
func (h *reportingHandler) getDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date, err := resolveReportDate(c.Query("date"))
	if err != nil {
		logger.Warn("Invalid day book date", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Received request for day book", slog.String("date", date.Format("2006-01-02")))

	entries, err := h.reportingService.DayBook(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to generate day book", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate day book"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDayBookResponse(date, entries))
}

// exportDayBook godoc
// @Summary Export the day book as a workbook
// @Description Renders one day's vouchers as an XLSX attachment with GST amounts on Sales and Purchase rows
// @Tags daybook
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   date query string false "Date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to export day book"
// @Router /daybook/export [get]
func (h *reportingHandler) exportDayBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	date, err := resolveReportDate(c.Query("date"))
	if err != nil {
		logger.Warn("Invalid day book export date", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.Info("Received request to export day book", slog.String("date", date.Format("2006-01-02")))

	workbook, err := h.reportingService.DayBookWorkbook(c.Request.Context(), date)
	if err != nil {
		logger.Error("Failed to export day book", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export day book"})
		return
	}

	filename := fmt.Sprintf("daybook_%s.xlsx", date.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

// resolveReportDate parses a YYYY-MM-DD query value, defaulting to today.
func resolveReportDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %s", raw)
	}
	return date, nil
}
