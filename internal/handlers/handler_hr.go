package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
	"github.com/agrm/agrm_backend/internal/middleware"
)

// hrHandler handles HTTP requests related to absences, attendance and
// deductions.
type hrHandler struct {
	hrService portssvc.HRService
}

func newHRHandler(hs portssvc.HRService) *hrHandler {
	return &hrHandler{hrService: hs}
}

// registerHRRoutes registers routes related to the HR module.
func registerHRRoutes(rg *gin.RouterGroup, hrService portssvc.HRService) {
	h := newHRHandler(hrService)

	absences := rg.Group("/absences")
	{
		absences.POST("", h.createAbsence)
		absences.GET("/:id", h.getAbsence)
		absences.DELETE("/:id", h.deleteAbsence)
	}

	attendance := rg.Group("/attendance")
	{
		attendance.POST("", h.createAttendance)
		attendance.DELETE("/:id", h.deleteAttendance)
	}

	deductions := rg.Group("/deductions")
	{
		deductions.POST("", h.createDeduction)
		deductions.DELETE("/:id", h.deleteDeduction)
	}

	employees := rg.Group("/employees/:employeeID")
	{
		employees.GET("/absences", h.listAbsences)
		employees.GET("/attendance", h.listAttendance)
		employees.GET("/deductions", h.listDeductions)
	}
}

// createAbsence godoc
// @Summary Record an absence
// @Description Derives the inclusive end date from the start date and day count
// @Tags hr
// @Accept json
// @Produce json
// @Param absence body dto.CreateAbsenceRequest true "Absence details"
// @Success 201 {object} domain.Absence
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /absences [post]
func (h *hrHandler) createAbsence(c *gin.Context) {
	var req dto.CreateAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.hrService.RecordAbsence(c.Request.Context(), req.ToDomainAbsence(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to record absence")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getAbsence godoc
// @Summary Get an absence by ID
// @Tags hr
// @Produce json
// @Param id path string true "Absence ID"
// @Success 200 {object} domain.Absence
// @Failure 404 {object} map[string]string "Absence not found"
// @Security BearerAuth
// @Router /absences/{id} [get]
func (h *hrHandler) getAbsence(c *gin.Context) {
	absence, err := h.hrService.GetAbsence(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve absence")
		return
	}
	c.JSON(http.StatusOK, absence)
}

// deleteAbsence godoc
// @Summary Delete an absence
// @Tags hr
// @Param id path string true "Absence ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Absence not found"
// @Security BearerAuth
// @Router /absences/{id} [delete]
func (h *hrHandler) deleteAbsence(c *gin.Context) {
	if err := h.hrService.DeleteAbsence(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete absence")
		return
	}
	c.Status(http.StatusNoContent)
}

// listAbsences godoc
// @Summary List the absences of an employee
// @Tags hr
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {array} domain.Absence
// @Security BearerAuth
// @Router /employees/{employeeID}/absences [get]
func (h *hrHandler) listAbsences(c *gin.Context) {
	absences, err := h.hrService.ListAbsencesByEmployee(c.Request.Context(), c.Param("employeeID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list absences")
		return
	}
	c.JSON(http.StatusOK, absences)
}

// createAttendance godoc
// @Summary Record a pointage
// @Description Derives worked and overtime hours from the clock times
// @Tags hr
// @Accept json
// @Produce json
// @Param attendance body dto.CreateAttendanceRequest true "Attendance details"
// @Success 201 {object} domain.Attendance
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /attendance [post]
func (h *hrHandler) createAttendance(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.hrService.RecordAttendance(c.Request.Context(), req.ToDomainAttendance(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to record attendance")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listAttendance godoc
// @Summary List the pointage rows of an employee for a month
// @Tags hr
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {array} domain.Attendance
// @Security BearerAuth
// @Router /employees/{employeeID}/attendance [get]
func (h *hrHandler) listAttendance(c *gin.Context) {
	rows, err := h.hrService.ListAttendance(c.Request.Context(), c.Param("employeeID"), c.Query("month"))
	if err != nil {
		respondServiceError(c, err, "Failed to list attendance")
		return
	}
	c.JSON(http.StatusOK, rows)
}

// deleteAttendance godoc
// @Summary Delete a pointage row
// @Tags hr
// @Param id path string true "Attendance ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Attendance not found"
// @Security BearerAuth
// @Router /attendance/{id} [delete]
func (h *hrHandler) deleteAttendance(c *gin.Context) {
	if err := h.hrService.DeleteAttendance(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete attendance")
		return
	}
	c.Status(http.StatusNoContent)
}

// createDeduction godoc
// @Summary Record a retenue
// @Tags hr
// @Accept json
// @Produce json
// @Param deduction body dto.CreateDeductionRequest true "Deduction details"
// @Success 201 {object} domain.Deduction
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /deductions [post]
func (h *hrHandler) createDeduction(c *gin.Context) {
	var req dto.CreateDeductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	created, err := h.hrService.AddDeduction(c.Request.Context(), req.ToDomainDeduction(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to record deduction")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listDeductions godoc
// @Summary List the retenues of an employee
// @Tags hr
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {array} domain.Deduction
// @Security BearerAuth
// @Router /employees/{employeeID}/deductions [get]
func (h *hrHandler) listDeductions(c *gin.Context) {
	deductions, err := h.hrService.ListDeductionsByEmployee(c.Request.Context(), c.Param("employeeID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list deductions")
		return
	}
	c.JSON(http.StatusOK, deductions)
}

// deleteDeduction godoc
// @Summary Delete a retenue
// @Tags hr
// @Param id path string true "Deduction ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Deduction not found"
// @Security BearerAuth
// @Router /deductions/{id} [delete]
func (h *hrHandler) deleteDeduction(c *gin.Context) {
	if err := h.hrService.DeleteDeduction(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete deduction")
		return
	}
	c.Status(http.StatusNoContent)
}
