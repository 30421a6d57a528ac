package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "idscan/docs" // registers the OpenAPI spec with swag
	"idscan/internal/config"
	"idscan/internal/handler"
	"idscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	analyzeH *handler.AnalyzeHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = cfg.Upload.MaxMemoryMB << 20

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.POST("/analyze-id", analyzeH.AnalyzeID)

	if !cfg.Server.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
