package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
	"github.com/agrm/agrm_backend/internal/middleware"
)

// treasuryHandler handles HTTP requests related to payments, surpluses and
// daily closures.
type treasuryHandler struct {
	treasuryService portssvc.TreasuryService
}

func newTreasuryHandler(ts portssvc.TreasuryService) *treasuryHandler {
	return &treasuryHandler{treasuryService: ts}
}

// RegisterTreasuryRoutes registers routes related to the cashier module.
// Exported so handler tests can mount the routes on their own router.
func RegisterTreasuryRoutes(rg *gin.RouterGroup, treasuryService portssvc.TreasuryService) {
	h := newTreasuryHandler(treasuryService)

	payments := rg.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.GET("/:id", h.getPayment)
		payments.PUT("/:id", h.updatePayment)
		payments.DELETE("/:id", h.deletePayment)
	}

	surpluses := rg.Group("/surpluses")
	{
		surpluses.POST("", h.createSurplus)
		surpluses.GET("", h.listSurpluses)
		surpluses.DELETE("/:id", h.deleteSurplus)
	}

	closures := rg.Group("/closures")
	{
		closures.POST("/run", h.runClosure)
		closures.GET("", h.getClosure)
	}
}

func parseDay(value string) time.Time {
	if value == "" {
		return time.Now().Truncate(24 * time.Hour)
	}
	day, _ := time.Parse("2006-01-02", value)
	return day
}

// createPayment godoc
// @Summary Record a payment
// @Description Records a settled transaction for the authenticated cashier
// @Tags treasury
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} domain.PaymentRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Receipt reference already used"
// @Security BearerAuth
// @Router /payments [post]
func (h *treasuryHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.treasuryService.RecordPayment(c.Request.Context(), req.ToDomainPayment(cashierID))
	if err != nil {
		logger.Warn("Failed to record payment", slog.String("error", err.Error()))
		respondServiceError(c, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// listPayments godoc
// @Summary List payments
// @Description Lists payments of a date range with optional bank and cashier filters, keyset-paginated
// @Tags treasury
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param bankID query string false "Bank filter"
// @Param cashierID query string false "Cashier filter"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Continuation token"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payments [get]
func (h *treasuryHandler) listPayments(c *gin.Context) {
	var req dto.ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	payments, nextToken, err := h.treasuryService.ListPayments(c.Request.Context(), from, to, req.BankID, req.CashierID, req.Limit, req.NextToken)
	if err != nil {
		respondServiceError(c, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: payments, NextToken: nextToken})
}

// getPayment godoc
// @Summary Get a payment by ID
// @Tags treasury
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} domain.PaymentRecord
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [get]
func (h *treasuryHandler) getPayment(c *gin.Context) {
	payment, err := h.treasuryService.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve payment")
		return
	}
	c.JSON(http.StatusOK, payment)
}

// updatePayment godoc
// @Summary Correct a payment
// @Tags treasury
// @Accept json
// @Produce json
// @Param id path string true "Payment ID"
// @Param payment body dto.UpdatePaymentRequest true "Corrected payment"
// @Success 200 {object} domain.PaymentRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *treasuryHandler) updatePayment(c *gin.Context) {
	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.treasuryService.UpdatePayment(c.Request.Context(), req.ToDomainPayment(c.Param("id")))
	if err != nil {
		respondServiceError(c, err, "Failed to update payment")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deletePayment godoc
// @Summary Delete a payment
// @Tags treasury
// @Param id path string true "Payment ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *treasuryHandler) deletePayment(c *gin.Context) {
	if err := h.treasuryService.DeletePayment(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete payment")
		return
	}
	c.Status(http.StatusNoContent)
}

// createSurplus godoc
// @Summary Record an excédent
// @Description Splits the gross amount into net and VAT and records the surplus entry
// @Tags treasury
// @Accept json
// @Produce json
// @Param surplus body dto.CreateSurplusRequest true "Surplus details"
// @Success 201 {object} domain.Surplus
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /surpluses [post]
func (h *treasuryHandler) createSurplus(c *gin.Context) {
	var req dto.CreateSurplusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.treasuryService.RecordSurplus(c.Request.Context(), req.ToDomainSurplus(cashierID))
	if err != nil {
		respondServiceError(c, err, "Failed to record surplus")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listSurpluses godoc
// @Summary List excédents of a range
// @Tags treasury
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} domain.Surplus
// @Security BearerAuth
// @Router /surpluses [get]
func (h *treasuryHandler) listSurpluses(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	surpluses, err := h.treasuryService.ListSurpluses(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list surpluses")
		return
	}
	c.JSON(http.StatusOK, surpluses)
}

// deleteSurplus godoc
// @Summary Delete an excédent
// @Tags treasury
// @Param id path string true "Surplus ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Surplus not found"
// @Security BearerAuth
// @Router /surpluses/{id} [delete]
func (h *treasuryHandler) deleteSurplus(c *gin.Context) {
	if err := h.treasuryService.DeleteSurplus(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete surplus")
		return
	}
	c.Status(http.StatusNoContent)
}

// runClosure godoc
// @Summary Run the daily closure
// @Description Computes and persists per-cashier totals for a day, replacing a previous run
// @Tags treasury
// @Produce json
// @Param day query string false "Day to close (YYYY-MM-DD), defaults to today"
// @Success 200 {array} domain.DailyClosure
// @Security BearerAuth
// @Router /closures/run [post]
func (h *treasuryHandler) runClosure(c *gin.Context) {
	var req dto.DayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	closures, err := h.treasuryService.RunDailyClosure(c.Request.Context(), parseDay(req.Day))
	if err != nil {
		respondServiceError(c, err, "Failed to run daily closure")
		return
	}
	c.JSON(http.StatusOK, closures)
}

// getClosure godoc
// @Summary Get the closure rows of a day
// @Tags treasury
// @Produce json
// @Param day query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {array} domain.DailyClosure
// @Security BearerAuth
// @Router /closures [get]
func (h *treasuryHandler) getClosure(c *gin.Context) {
	var req dto.DayRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	closures, err := h.treasuryService.GetDailyClosure(c.Request.Context(), parseDay(req.Day))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve closure")
		return
	}
	c.JSON(http.StatusOK, closures)
}
