package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
	"github.com/agrm/agrm_backend/internal/middleware"
)

// stockHandler handles HTTP requests related to stock movements and
// weighbridge tickets.
type stockHandler struct {
	stockService portssvc.StockService
}

func newStockHandler(ss portssvc.StockService) *stockHandler {
	return &stockHandler{stockService: ss}
}

// registerStockRoutes registers routes related to the warehouse module.
func registerStockRoutes(rg *gin.RouterGroup, stockService portssvc.StockService) {
	h := newStockHandler(stockService)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.GET("/:id", h.getMovement)
		movements.DELETE("/:id", h.deleteMovement)
	}

	tickets := rg.Group("/weighbridge-tickets")
	{
		tickets.POST("", h.createTicket)
		tickets.GET("", h.listTickets)
		tickets.GET("/:id", h.getTicket)
		tickets.DELETE("/:id", h.deleteTicket)
	}
}

// createMovement godoc
// @Summary Record a stock movement
// @Tags stock
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Movement details"
// @Success 201 {object} domain.StockMovement
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /movements [post]
func (h *stockHandler) createMovement(c *gin.Context) {
	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.stockService.RecordMovement(c.Request.Context(), req.ToDomainMovement(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to record movement")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listMovements godoc
// @Summary List stock movements of a range
// @Tags stock
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param storeID query string false "Store filter"
// @Success 200 {array} domain.StockMovement
// @Security BearerAuth
// @Router /movements [get]
func (h *stockHandler) listMovements(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	movements, err := h.stockService.ListMovements(c.Request.Context(), from, to, req.StoreID)
	if err != nil {
		respondServiceError(c, err, "Failed to list movements")
		return
	}
	c.JSON(http.StatusOK, movements)
}

// getMovement godoc
// @Summary Get a stock movement by ID
// @Tags stock
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} domain.StockMovement
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{id} [get]
func (h *stockHandler) getMovement(c *gin.Context) {
	movement, err := h.stockService.GetMovement(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve movement")
		return
	}
	c.JSON(http.StatusOK, movement)
}

// deleteMovement godoc
// @Summary Delete a stock movement
// @Tags stock
// @Param id path string true "Movement ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Movement not found"
// @Security BearerAuth
// @Router /movements/{id} [delete]
func (h *stockHandler) deleteMovement(c *gin.Context) {
	if err := h.stockService.DeleteMovement(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete movement")
		return
	}
	c.Status(http.StatusNoContent)
}

// createTicket godoc
// @Summary Record a weighbridge ticket
// @Description Derives the net weight from the two weighings and records the ticket
// @Tags stock
// @Accept json
// @Produce json
// @Param ticket body dto.CreateTicketRequest true "Ticket details"
// @Success 201 {object} domain.WeighbridgeTicket
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /weighbridge-tickets [post]
func (h *stockHandler) createTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.stockService.RecordTicket(c.Request.Context(), req.ToDomainTicket(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to record ticket")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listTickets godoc
// @Summary List weighbridge tickets of a range
// @Tags stock
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {array} domain.WeighbridgeTicket
// @Security BearerAuth
// @Router /weighbridge-tickets [get]
func (h *stockHandler) listTickets(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	from, _ := time.Parse("2006-01-02", req.From)
	to, _ := time.Parse("2006-01-02", req.To)

	tickets, err := h.stockService.ListTickets(c.Request.Context(), from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to list tickets")
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// getTicket godoc
// @Summary Get a weighbridge ticket by ID
// @Tags stock
// @Produce json
// @Param id path string true "Ticket ID"
// @Success 200 {object} domain.WeighbridgeTicket
// @Failure 404 {object} map[string]string "Ticket not found"
// @Security BearerAuth
// @Router /weighbridge-tickets/{id} [get]
func (h *stockHandler) getTicket(c *gin.Context) {
	ticket, err := h.stockService.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve ticket")
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// deleteTicket godoc
// @Summary Delete a weighbridge ticket
// @Tags stock
// @Param id path string true "Ticket ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Ticket not found"
// @Security BearerAuth
// @Router /weighbridge-tickets/{id} [delete]
func (h *stockHandler) deleteTicket(c *gin.Context) {
	if err := h.stockService.DeleteTicket(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete ticket")
		return
	}
	c.Status(http.StatusNoContent)
}
