package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nickjlamb/HushMap-sub001/internal/telemetry"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Label resolution endpoints
	v1 := app.router.Group("/v1")
	v1.GET("/location/label", app.handleResolveLabel)
	v1.GET("/tuning", app.handleGetTuning)
	v1.PUT("/tuning", app.handleUpdateTuning)
	v1.GET("/telemetry", app.handleGetTelemetry)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(telemetry.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
