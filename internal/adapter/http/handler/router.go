package handler

import (
	"withdrawal-service/internal/adapter/http/middleware"
	"withdrawal-service/internal/core/ports"
	"withdrawal-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	QuerySvc       ports.QueryService
	CommandSvc     ports.CommandService
	UploadSvc      ports.UploadService
	Facade         ports.StateFacade
	MaxUploadFiles int
	Collector      *metrics.Collector // nil = metrics disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(12 << 20)) // multipart uploads cap at 10 MB per file
	if deps.Collector != nil {
		r.Use(middleware.Metrics(deps.Collector))
	}

	// Health check
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Metrics endpoint
	if deps.Collector != nil {
		r.GET("/metrics", gin.WrapH(deps.Collector.Handler()))
	}

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	withdrawalHandler := NewWithdrawalHandler(deps.QuerySvc, deps.CommandSvc, deps.Collector)
	withdrawals := v1.Group("/withdrawals")
	{
		withdrawals.GET("", withdrawalHandler.List)
		withdrawals.GET("/stats", withdrawalHandler.Stats)
		withdrawals.GET("/:id", withdrawalHandler.Get)
		withdrawals.POST("", withdrawalHandler.Create)
	}

	uploadHandler := NewUploadHandler(deps.UploadSvc, deps.MaxUploadFiles, deps.Collector)
	v1.POST("/uploads", uploadHandler.Stage)

	v1.GET("/meta", Meta)

	if deps.Facade != nil {
		overviewHandler := NewOverviewHandler(deps.Facade)
		v1.GET("/overview", overviewHandler.Get)
	}

	return r
}
