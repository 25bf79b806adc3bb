// Package router sets up the HTTP routing for the local API.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	syncController        *controller.SyncController
	transactionController *controller.TransactionController
	dashboardController   *controller.DashboardController
	backupController      *controller.BackupController
	botController         *controller.BotController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	syncController *controller.SyncController,
	transactionController *controller.TransactionController,
	dashboardController *controller.DashboardController,
	backupController *controller.BackupController,
	botController *controller.BotController,
) *Router {
	return &Router{
		healthController:      healthController,
		syncController:        syncController,
		transactionController: transactionController,
		dashboardController:   dashboardController,
		backupController:      backupController,
		botController:         botController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	if environment != "test" {
		engine.Use(gin.Logger())
	}

	engine.GET("/health", r.healthController.Check)

	api := engine.Group("/api/v1")
	{
		sync := api.Group("/sync")
		{
			sync.POST("/trigger", r.syncController.Trigger)
			sync.GET("/status", r.syncController.Status)
		}

		transactions := api.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PUT("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}

		api.GET("/dashboard/balance", r.dashboardController.Balance)

		backup := api.Group("/backup")
		{
			backup.GET("/export", r.backupController.Export)
			backup.POST("/import", r.backupController.Import)
		}

		api.POST("/bot/intents", r.botController.ApplyIntent)
	}

	r.engine = engine
	return engine
}
