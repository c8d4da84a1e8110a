package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agrm/agrm_backend/internal/core/domain"
	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
	"github.com/agrm/agrm_backend/internal/middleware"
)

// maintenanceHandler handles HTTP requests related to vehicle requisitions.
type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceService
}

func newMaintenanceHandler(ms portssvc.MaintenanceService) *maintenanceHandler {
	return &maintenanceHandler{maintenanceService: ms}
}

// RegisterMaintenanceRoutes registers routes related to the garage module.
// Exported so handler tests can mount the routes on their own router.
func RegisterMaintenanceRoutes(rg *gin.RouterGroup, maintenanceService portssvc.MaintenanceService) {
	h := newMaintenanceHandler(maintenanceService)

	requisitions := rg.Group("/requisitions")
	{
		requisitions.POST("", h.createRequisition)
		requisitions.GET("", h.listRequisitions)
		requisitions.GET("/:id", h.getRequisition)
		requisitions.PUT("/:id", h.updateRequisition)
		requisitions.PATCH("/:id/status", h.updateRequisitionStatus)
		requisitions.DELETE("/:id", h.deleteRequisition)
	}
}

// createRequisition godoc
// @Summary Open a requisition
// @Description Opens a pending requisition and derives the consumption figures from the meter readings
// @Tags maintenance
// @Accept json
// @Produce json
// @Param requisition body dto.CreateRequisitionRequest true "Requisition details"
// @Success 201 {object} domain.Requisition
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /requisitions [post]
func (h *maintenanceHandler) createRequisition(c *gin.Context) {
	var req dto.CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.maintenanceService.CreateRequisition(c.Request.Context(), req.ToDomainRequisition(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create requisition")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listRequisitions godoc
// @Summary List requisitions
// @Tags maintenance
// @Produce json
// @Param vehicleID query string false "Vehicle filter"
// @Success 200 {array} domain.Requisition
// @Security BearerAuth
// @Router /requisitions [get]
func (h *maintenanceHandler) listRequisitions(c *gin.Context) {
	requisitions, err := h.maintenanceService.ListRequisitions(c.Request.Context(), c.Query("vehicleID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list requisitions")
		return
	}
	c.JSON(http.StatusOK, requisitions)
}

// getRequisition godoc
// @Summary Get a requisition by ID
// @Tags maintenance
// @Produce json
// @Param id path string true "Requisition ID"
// @Success 200 {object} domain.Requisition
// @Failure 404 {object} map[string]string "Requisition not found"
// @Security BearerAuth
// @Router /requisitions/{id} [get]
func (h *maintenanceHandler) getRequisition(c *gin.Context) {
	requisition, err := h.maintenanceService.GetRequisition(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve requisition")
		return
	}
	c.JSON(http.StatusOK, requisition)
}

// updateRequisition godoc
// @Summary Correct a requisition
// @Description Rewrites the requisition details, rederiving the consumption figures. The workflow status is untouched.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "Requisition ID"
// @Param requisition body dto.CreateRequisitionRequest true "Corrected requisition"
// @Success 200 {object} domain.Requisition
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Requisition not found"
// @Security BearerAuth
// @Router /requisitions/{id} [put]
func (h *maintenanceHandler) updateRequisition(c *gin.Context) {
	var req dto.CreateRequisitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	requisition := req.ToDomainRequisition(userID)
	requisition.RequisitionID = c.Param("id")

	updated, err := h.maintenanceService.UpdateRequisition(c.Request.Context(), requisition)
	if err != nil {
		respondServiceError(c, err, "Failed to update requisition")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// updateRequisitionStatus godoc
// @Summary Advance the workflow status of a requisition
// @Description Moves the requisition forward in the EN_ATTENTE, APPROUVEE, TERMINEE workflow. Backward moves are rejected.
// @Tags maintenance
// @Accept json
// @Param id path string true "Requisition ID"
// @Param status body dto.UpdateRequisitionStatusRequest true "Target status"
// @Success 204 "Status updated"
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 404 {object} map[string]string "Requisition not found"
// @Security BearerAuth
// @Router /requisitions/{id}/status [patch]
func (h *maintenanceHandler) updateRequisitionStatus(c *gin.Context) {
	var req dto.UpdateRequisitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.maintenanceService.UpdateRequisitionStatus(c.Request.Context(), c.Param("id"), domain.RequisitionStatus(req.Status), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update requisition status")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteRequisition godoc
// @Summary Delete a requisition
// @Tags maintenance
// @Param id path string true "Requisition ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Requisition not found"
// @Security BearerAuth
// @Router /requisitions/{id} [delete]
func (h *maintenanceHandler) deleteRequisition(c *gin.Context) {
	if err := h.maintenanceService.DeleteRequisition(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete requisition")
		return
	}
	c.Status(http.StatusNoContent)
}
