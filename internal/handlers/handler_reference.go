package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/agrm/agrm_backend/internal/core/ports/services"
	"github.com/agrm/agrm_backend/internal/dto"
	"github.com/agrm/agrm_backend/internal/middleware"
)

// referenceHandler handles HTTP requests for reference data backing the
// dropdowns of every module.
type referenceHandler struct {
	referenceService portssvc.ReferenceService
}

func newReferenceHandler(rs portssvc.ReferenceService) *referenceHandler {
	return &referenceHandler{referenceService: rs}
}

// registerReferenceRoutes registers the reference-data routes.
func registerReferenceRoutes(rg *gin.RouterGroup, referenceService portssvc.ReferenceService) {
	h := newReferenceHandler(referenceService)

	banks := rg.Group("/banks")
	{
		banks.GET("", h.listBanks)
		banks.POST("", h.createBank)
		banks.DELETE("/:id", h.deleteBank)
	}

	rg.GET("/payment-modes", h.listPaymentModes)
	rg.POST("/payment-modes", h.createPaymentMode)

	rg.GET("/stores", h.listStores)
	rg.POST("/stores", h.createStore)

	rg.GET("/articles", h.listArticles)
	rg.POST("/articles", h.createArticle)

	rg.GET("/clients", h.listClients)
	rg.POST("/clients", h.createClient)

	rg.GET("/employees", h.listEmployees)
	rg.POST("/employees", h.createEmployee)
	rg.GET("/employees/by-code/:code", h.getEmployeeByCode)

	rg.GET("/vehicles", h.listVehicles)
	rg.POST("/vehicles", h.createVehicle)
}

func (h *referenceHandler) creatorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return userID, ok
}

// listBanks godoc
// @Summary List banks
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Bank
// @Security BearerAuth
// @Router /banks [get]
func (h *referenceHandler) listBanks(c *gin.Context) {
	banks, err := h.referenceService.ListBanks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list banks")
		return
	}
	c.JSON(http.StatusOK, banks)
}

// createBank godoc
// @Summary Register a bank
// @Tags reference
// @Accept json
// @Produce json
// @Param bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} domain.Bank
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /banks [post]
func (h *referenceHandler) createBank(c *gin.Context) {
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := h.creatorID(c)
	if !ok {
		return
	}
	created, err := h.referenceService.CreateBank(c.Request.Context(), req.ToDomainBank(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create bank")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// deleteBank godoc
// @Summary Delete a bank
// @Tags reference
// @Param id path string true "Bank ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Bank not found"
// @Security BearerAuth
// @Router /banks/{id} [delete]
func (h *referenceHandler) deleteBank(c *gin.Context) {
	if err := h.referenceService.DeleteBank(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete bank")
		return
	}
	c.Status(http.StatusNoContent)
}

// listPaymentModes godoc
// @Summary List payment modes
// @Tags reference
// @Produce json
// @Success 200 {array} domain.PaymentMode
// @Security BearerAuth
// @Router /payment-modes [get]
func (h *referenceHandler) listPaymentModes(c *gin.Context) {
	modes, err := h.referenceService.ListPaymentModes(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list payment modes")
		return
	}
	c.JSON(http.StatusOK, modes)
}

// createPaymentMode godoc
// @Summary Register a payment mode
// @Tags reference
// @Accept json
// @Produce json
// @Param mode body dto.CreatePaymentModeRequest true "Payment mode details"
// @Success 201 {object} domain.PaymentMode
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /payment-modes [post]
func (h *referenceHandler) createPaymentMode(c *gin.Context) {
	var req dto.CreatePaymentModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := h.creatorID(c)
	if !ok {
		return
	}
	created, err := h.referenceService.CreatePaymentMode(c.Request.Context(), req.ToDomainPaymentMode(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create payment mode")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listStores godoc
// @Summary List magasins
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Store
// @Security BearerAuth
// @Router /stores [get]
func (h *referenceHandler) listStores(c *gin.Context) {
	stores, err := h.referenceService.ListStores(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list stores")
		return
	}
	c.JSON(http.StatusOK, stores)
}

// createStore godoc
// @Summary Register a magasin
// @Tags reference
// @Accept json
// @Produce json
// @Param store body dto.CreateStoreRequest true "Store details"
// @Success 201 {object} domain.Store
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /stores [post]
func (h *referenceHandler) createStore(c *gin.Context) {
	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := h.creatorID(c)
	if !ok {
		return
	}
	created, err := h.referenceService.CreateStore(c.Request.Context(), req.ToDomainStore(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create store")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listArticles godoc
// @Summary List articles
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Article
// @Security BearerAuth
// @Router /articles [get]
func (h *referenceHandler) listArticles(c *gin.Context) {
	articles, err := h.referenceService.ListArticles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list articles")
		return
	}
	c.JSON(http.StatusOK, articles)
}

// createArticle godoc
// @Summary Register an article
// @Tags reference
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} domain.Article
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /articles [post]
func (h *referenceHandler) createArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := h.creatorID(c)
	if !ok {
		return
	}
	created, err := h.referenceService.CreateArticle(c.Request.Context(), req.ToDomainArticle(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create article")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listClients godoc
// @Summary List clients
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Client
// @Security BearerAuth
// @Router /clients [get]
func (h *referenceHandler) listClients(c *gin.Context) {
	clients, err := h.referenceService.ListClients(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// createClient godoc
// @Summary Register a client
// @Tags reference
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} domain.Client
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /clients [post]
func (h *referenceHandler) createClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := h.creatorID(c)
	if !ok {
		return
	}
	created, err := h.referenceService.CreateClient(c.Request.Context(), req.ToDomainClient(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create client")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listEmployees godoc
// @Summary List employees
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Employee
// @Security BearerAuth
// @Router /employees [get]
func (h *referenceHandler) listEmployees(c *gin.Context) {
	employees, err := h.referenceService.ListEmployees(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// createEmployee godoc
// @Summary Register an employee
// @Tags reference
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /employees [post]
func (h *referenceHandler) createEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := h.creatorID(c)
	if !ok {
		return
	}
	created, err := h.referenceService.CreateEmployee(c.Request.Context(), req.ToDomainEmployee(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// getEmployeeByCode godoc
// @Summary Look up an employee by matricule
// @Tags reference
// @Produce json
// @Param code path string true "Employee code"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/by-code/{code} [get]
func (h *referenceHandler) getEmployeeByCode(c *gin.Context) {
	employee, err := h.referenceService.GetEmployeeByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// listVehicles godoc
// @Summary List engins
// @Tags reference
// @Produce json
// @Success 200 {array} domain.Vehicle
// @Security BearerAuth
// @Router /vehicles [get]
func (h *referenceHandler) listVehicles(c *gin.Context) {
	vehicles, err := h.referenceService.ListVehicles(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// createVehicle godoc
// @Summary Register an engin
// @Tags reference
// @Accept json
// @Produce json
// @Param vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} domain.Vehicle
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *referenceHandler) createVehicle(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := h.creatorID(c)
	if !ok {
		return
	}
	created, err := h.referenceService.CreateVehicle(c.Request.Context(), req.ToDomainVehicle(userID))
	if err != nil {
		respondServiceError(c, err, "Failed to create vehicle")
		return
	}
	c.JSON(http.StatusCreated, created)
}
