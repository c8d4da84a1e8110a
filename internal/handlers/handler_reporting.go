package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
)

// reportingHandler handles HTTP requests for the read-only reports and the
// dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the report and dashboard routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/bank-payments", h.bankPaymentReport)
		reports.GET("/exits", h.exitReport)
		reports.GET("/stock-ledger", h.stockLedger)
		reports.GET("/cashier-summary", h.cashierSummary)
	}

	rg.GET("/dashboard", h.dashboard)
}

// bankPaymentReport godoc
// @Summary Bank payment report
// @Description Groups the payments of a range into the bank / payment-mode / records tree with totals at every level
// @Tags reports
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param bankID query string false "Bank filter"
// @Param cashierID query string false "Cashier filter"
// @Success 200 {array} domain.BankReportGroup
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/bank-payments [get]
func (h *reportingHandler) bankPaymentReport(c *gin.Context) {
	var req dto.BankReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	groups, err := h.reportingService.BankPaymentReport(c.Request.Context(), from, to, req.BankID, req.CashierID)
	if err != nil {
		respondServiceError(c, err, "Failed to build bank payment report")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// exitReport godoc
// @Summary Stock exit report
// @Description Groups the stock exits of a range by destination
// @Tags reports
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param storeID query string false "Store filter"
// @Success 200 {array} domain.DestinationGroup
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/exits [get]
func (h *reportingHandler) exitReport(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	groups, err := h.reportingService.ExitReport(c.Request.Context(), from, to, req.StoreID)
	if err != nil {
		respondServiceError(c, err, "Failed to build exit report")
		return
	}
	c.JSON(http.StatusOK, groups)
}

// stockLedger godoc
// @Summary Fiche de stock
// @Description Builds the running-balance stock ledger of one article over a range
// @Tags reports
// @Produce json
// @Param articleID query string true "Article ID"
// @Param storeID query string true "Store ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} domain.StockLedger
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Article not found"
// @Security BearerAuth
// @Router /reports/stock-ledger [get]
func (h *reportingHandler) stockLedger(c *gin.Context) {
	var req dto.StockLedgerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	ledger, err := h.reportingService.StockLedger(c.Request.Context(), req.ArticleID, req.StoreID, from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to build stock ledger")
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// cashierSummary godoc
// @Summary Cashier summary of a day
// @Description Totals one day's receipts per cashier and payment mode
// @Tags reports
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} domain.CashierSummaryRow
// @Security BearerAuth
// @Router /reports/cashier-summary [get]
func (h *reportingHandler) cashierSummary(c *gin.Context) {
	var req dto.DayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.CashierSummary(c.Request.Context(), parseDay(req.Day))
	if err != nil {
		respondServiceError(c, err, "Failed to build cashier summary")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// dashboard godoc
// @Summary Dashboard snapshot
// @Description Loads the landing-page sections concurrently. Failed sections are listed in the response instead of failing the request.
// @Tags reports
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} domain.DashboardSnapshot
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	var req dto.DayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	snapshot, err := h.reportingService.Dashboard(c.Request.Context(), parseDay(req.Day))
	if err != nil {
		respondServiceError(c, err, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
