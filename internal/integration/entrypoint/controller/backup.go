package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/client/internal/application/usecase/backup"
	"github.com/finance-tracker/client/internal/integration/entrypoint/dto"
)

// BackupController handles snapshot export and import endpoints.
type BackupController struct {
	exportUseCase *backup.ExportSnapshotUseCase
	importUseCase *backup.ImportSnapshotUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	exportUseCase *backup.ExportSnapshotUseCase,
	importUseCase *backup.ImportSnapshotUseCase,
) *BackupController {
	return &BackupController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /backup/export requests.
func (c *BackupController) Export(ctx *gin.Context) {
	snapshot, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export snapshot",
		})
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

// Import handles POST /backup/import requests.
func (c *BackupController) Import(ctx *gin.Context) {
	var request dto.ImportSnapshotRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), backup.ImportSnapshotInput{
		Mode:     backup.ImportMode(request.Mode),
		Snapshot: request.Snapshot,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, backup.ErrInvalidImportMode) || errors.Is(err, backup.ErrSnapshotVersionMismatch) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.ImportSnapshotResponse{Imported: output.Imported})
}
