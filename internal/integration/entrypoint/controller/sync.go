package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/syncengine"
)

// SyncController handles sync trigger and status endpoints.
type SyncController struct {
	engine *syncengine.Engine
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(engine *syncengine.Engine) *SyncController {
	return &SyncController{engine: engine}
}

// Trigger handles POST /sync/trigger requests. The cycle runs detached from
// the request; the UI keeps reading local data while it does.
func (c *SyncController) Trigger(ctx *gin.Context) {
	go c.engine.SyncOnLoad(context.Background())
	ctx.JSON(http.StatusAccepted, gin.H{"status": "sync started"})
}

// Status handles GET /sync/status requests.
func (c *SyncController) Status(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.engine.Status())
}
