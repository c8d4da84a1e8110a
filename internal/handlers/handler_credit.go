package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
	"github.com/agrm/agrm_backend/internal/middleware"
)

// creditHandler handles HTTP requests related to loans, repayments and
// guarantees.
type creditHandler struct {
	creditService portssvc.CreditService
}

func newCreditHandler(cs portssvc.CreditService) *creditHandler {
	return &creditHandler{creditService: cs}
}

// registerCreditRoutes registers routes related to the loan module.
func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditService) {
	h := newCreditHandler(creditService)

	loans := rg.Group("/loans")
	{
		loans.POST("", h.openLoan)
		loans.GET("", h.listLoans)
		loans.GET("/:id", h.getLoan)
		loans.GET("/:id/balance", h.getLoanBalance)
		loans.POST("/:id/repayments", h.createRepayment)
		loans.GET("/:id/repayments", h.listRepayments)
		loans.POST("/:id/guarantees", h.createGuarantee)
		loans.GET("/:id/guarantees", h.listGuarantees)
	}

	rg.DELETE("/guarantees/:id", h.deleteGuarantee)
}

// openLoan godoc
// @Summary Open a loan
// @Description Opens an active loan for a client
// @Tags credit
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} domain.Loan
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /loans [post]
func (h *creditHandler) openLoan(c *gin.Context) {
	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.creditService.OpenLoan(c.Request.Context(), req.ToDomainLoan(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to open loan")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listLoans godoc
// @Summary List loans
// @Tags credit
// @Produce json
// @Param clientID query string false "Client filter"
// @Success 200 {array} domain.Loan
// @Security BearerAuth
// @Router /loans [get]
func (h *creditHandler) listLoans(c *gin.Context) {
	loans, err := h.creditService.ListLoans(c.Request.Context(), c.Query("clientID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list loans")
		return
	}
	c.JSON(http.StatusOK, loans)
}

// getLoan godoc
// @Summary Get a loan by ID
// @Tags credit
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} domain.Loan
// @Failure 404 {object} map[string]string "Loan not found"
// @Security BearerAuth
// @Router /loans/{id} [get]
func (h *creditHandler) getLoan(c *gin.Context) {
	loan, err := h.creditService.GetLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve loan")
		return
	}
	c.JSON(http.StatusOK, loan)
}

// getLoanBalance godoc
// @Summary Get the outstanding balance of a loan
// @Description Recomputes the balance from the repayment history
// @Tags credit
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanBalanceResponse
// @Failure 404 {object} map[string]string "Loan not found"
// @Security BearerAuth
// @Router /loans/{id}/balance [get]
func (h *creditHandler) getLoanBalance(c *gin.Context) {
	loanID := c.Param("id")
	balance, err := h.creditService.GetLoanBalance(c.Request.Context(), loanID)
	if err != nil {
		respondServiceError(c, err, "Failed to compute loan balance")
		return
	}
	c.JSON(http.StatusOK, dto.LoanBalanceResponse{LoanID: loanID, Balance: balance})
}

// createRepayment godoc
// @Summary Record a repayment
// @Description Records a repayment and settles the loan when the total reaches principal plus interest
// @Tags credit
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param repayment body dto.CreateRepaymentRequest true "Repayment details"
// @Success 201 {object} domain.Repayment
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Loan not found"
// @Security BearerAuth
// @Router /loans/{id}/repayments [post]
func (h *creditHandler) createRepayment(c *gin.Context) {
	var req dto.CreateRepaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.creditService.RecordRepayment(c.Request.Context(), req.ToDomainRepayment(c.Param("id"), userID))
	if err != nil {
		respondServiceError(c, err, "Failed to record repayment")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listRepayments godoc
// @Summary List the repayments of a loan
// @Tags credit
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {array} domain.Repayment
// @Security BearerAuth
// @Router /loans/{id}/repayments [get]
func (h *creditHandler) listRepayments(c *gin.Context) {
	repayments, err := h.creditService.ListRepaymentsByLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list repayments")
		return
	}
	c.JSON(http.StatusOK, repayments)
}

// createGuarantee godoc
// @Summary Pledge a guarantee against a loan
// @Tags credit
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param guarantee body dto.CreateGuaranteeRequest true "Guarantee details"
// @Success 201 {object} domain.Guarantee
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Loan not found"
// @Security BearerAuth
// @Router /loans/{id}/guarantees [post]
func (h *creditHandler) createGuarantee(c *gin.Context) {
	var req dto.CreateGuaranteeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.creditService.AddGuarantee(c.Request.Context(), req.ToDomainGuarantee(c.Param("id"), userID))
	if err != nil {
		respondServiceError(c, err, "Failed to record guarantee")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listGuarantees godoc
// @Summary List the guarantees of a loan
// @Tags credit
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {array} domain.Guarantee
// @Security BearerAuth
// @Router /loans/{id}/guarantees [get]
func (h *creditHandler) listGuarantees(c *gin.Context) {
	guarantees, err := h.creditService.ListGuaranteesByLoan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to list guarantees")
		return
	}
	c.JSON(http.StatusOK, guarantees)
}

// deleteGuarantee godoc
// @Summary Delete a guarantee
// @Tags credit
// @Param id path string true "Guarantee ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Guarantee not found"
// @Security BearerAuth
// @Router /guarantees/{id} [delete]
func (h *creditHandler) deleteGuarantee(c *gin.Context) {
	if err := h.creditService.DeleteGuarantee(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete guarantee")
		return
	}
	c.Status(http.StatusNoContent)
}
