package dto

import (
	"github.com/finance-tracker/client/internal/application/usecase/backup"
)

// ImportSnapshotRequest represents the request body for a snapshot import.
type ImportSnapshotRequest struct {
	Mode     string          `json:"mode" binding:"required,oneof=replace merge"`
	Snapshot backup.Snapshot `json:"snapshot" binding:"required"`
}

// ImportSnapshotResponse represents the result of a snapshot import.
type ImportSnapshotResponse struct {
	Imported int `json:"imported"`
}
