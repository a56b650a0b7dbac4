package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/FinHubBR/finhub_backend/internal/core/ports/services"
	"github.com/FinHubBR/finhub_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes for the derived reports under the
// profile group.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/dre", h.getDRE)
		reportingGroup.GET("/dre/export", h.exportDRE)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/budgets", h.getBudgetUsage)
		reportingGroup.GET("/projections", h.getProjection)
		reportingGroup.GET("/cards", h.getCardUsage)
		reportingGroup.GET("/distribution", h.getDistribution)
		reportingGroup.GET("/summary", h.getMonthlySummary)
		reportingGroup.GET("/stack", h.getStackCosts)
		reportingGroup.GET("/goals", h.getGoalProgress)
	}
}

// reportContext extracts the identity and report window shared by every
// report endpoint. It writes the error response itself when invalid.
func (h *reportingHandler) reportContext(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

// getDashboard godoc
// @Summary Dashboard KPIs
// @Description Returns consolidated balance, month flows, provisions, runway and recent transactions.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.Dashboard(c.Request.Context(), userID, kind, month, year)
	if err != nil {
		respondMutationError(c, err, "generate dashboard")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getDRE godoc
// @Summary Income statement
// @Description Generates the month's income-statement waterfall with vertical analysis.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} domain.DRE
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/dre [get]
func (h *reportingHandler) getDRE(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.DRE(c.Request.Context(), userID, kind, month, year)
	if err != nil {
		respondMutationError(c, err, "generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// exportDRE godoc
// @Summary Export income statement as CSV
// @Tags reports
// @Produce text/csv
// @Param profile path string true "Profile (PJ or PF)"
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {string} string "CSV payload"
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/dre/export [get]
func (h *reportingHandler) exportDRE(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	filename := fmt.Sprintf("dre_%s_%04d-%02d.csv", kind, year, month)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.reportingService.ExportDRECSV(c.Request.Context(), userID, kind, month, year, c.Writer); err != nil {
		// Headers may already be written; log and drop the connection state.
		logger.Error("Failed to export income statement", slog.String("error", err.Error()))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// getBalanceSheet godoc
// @Summary Balance sheet
// @Description Generates the all-time assets and liabilities snapshot.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Success 200 {object} domain.BalanceSheet
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), userID, kind)
	if err != nil {
		respondMutationError(c, err, "generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBudgetUsage godoc
// @Summary Budget usage
// @Description Generates budget-vs-actual rows for the month, sorted by usage.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {array} domain.BudgetUsage
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/budgets [get]
func (h *reportingHandler) getBudgetUsage(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BudgetUsage(c.Request.Context(), userID, kind, month, year)
	if err != nil {
		respondMutationError(c, err, "generate budget usage")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getProjection godoc
// @Summary Cash-flow projection
// @Description Generates average flows, projected balance, runway and FIRE progress.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Success 200 {object} domain.Projection
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/projections [get]
func (h *reportingHandler) getProjection(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	report, err := h.reportingService.Projection(c.Request.Context(), userID, kind)
	if err != nil {
		respondMutationError(c, err, "generate projection")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getCardUsage godoc
// @Summary Credit card invoices
// @Description Generates per-card spend, limit usage and warning flags for the month.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {array} domain.CardUsage
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/cards [get]
func (h *reportingHandler) getCardUsage(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.CardUsage(c.Request.Context(), userID, kind, month, year)
	if err != nil {
		respondMutationError(c, err, "generate card usage")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getDistribution godoc
// @Summary Distribution simulation
// @Description Simulates the month's income split across the distribution rules.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} domain.Distribution
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/distribution [get]
func (h *reportingHandler) getDistribution(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.Distribution(c.Request.Context(), userID, kind, month, year)
	if err != nil {
		respondMutationError(c, err, "generate distribution")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getMonthlySummary godoc
// @Summary Monthly summary
// @Description Generates the month's per-category income and expense breakdown.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Param month query int false "Month (1-12)" default(current month)
// @Param year query int false "Year" default(current year)
// @Success 200 {object} domain.MonthlySummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/summary [get]
func (h *reportingHandler) getMonthlySummary(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}
	month, year, ok := monthYearFromQuery(c)
	if !ok {
		return
	}

	report, err := h.reportingService.MonthlySummary(c.Request.Context(), userID, kind, month, year)
	if err != nil {
		respondMutationError(c, err, "generate summary")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getStackCosts godoc
// @Summary Stack cost rollup
// @Description Generates monthly and yearly totals for the subscription stack.
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Success 200 {object} domain.StackCosts
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/stack [get]
func (h *reportingHandler) getStackCosts(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	report, err := h.reportingService.StackCosts(c.Request.Context(), userID, kind)
	if err != nil {
		respondMutationError(c, err, "generate stack costs")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getGoalProgress godoc
// @Summary Goal progress
// @Description Generates per-goal completion ratios clamped to [0,1].
// @Tags reports
// @Produce json
// @Param profile path string true "Profile (PJ or PF)"
// @Success 200 {array} domain.GoalProgress
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /profiles/{profile}/reports/goals [get]
func (h *reportingHandler) getGoalProgress(c *gin.Context) {
	userID, ok := h.reportContext(c)
	if !ok {
		return
	}
	kind, ok := profileKindFromPath(c)
	if !ok {
		return
	}

	report, err := h.reportingService.GoalProgress(c.Request.Context(), userID, kind)
	if err != nil {
		respondMutationError(c, err, "generate goal progress")
		return
	}
	c.JSON(http.StatusOK, report)
}
