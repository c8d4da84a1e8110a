package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/agrm/agrm_backend/cmd/docs"
	"github.com/agrm/agrm_backend/internal/core/services"
	"github.com/agrm/agrm_backend/internal/middleware"
	"github.com/agrm/agrm_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	svcs *services.Container,
	authLimiter *limiter.Limiter,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", homeHandler)

	// Public authentication routes, rate limited per client IP
	registerAuthRoutes(r.Group("/", middleware.RateLimit(authLimiter)), svcs.Auth)

	setupAPIV1Routes(r, cfg, svcs)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the module route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	svcs *services.Container,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, svcs.User)
	RegisterTreasuryRoutes(v1, svcs.Treasury)
	registerStockRoutes(v1, svcs.Stock)
	registerHRRoutes(v1, svcs.HR)
	registerCreditRoutes(v1, svcs.Credit)
	RegisterMaintenanceRoutes(v1, svcs.Maintenance)
	registerReferenceRoutes(v1, svcs.Reference)
	registerReportingRoutes(v1, svcs.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
