// Package backup contains full-snapshot export and import use cases. Snapshots
// reuse the entity shapes and id-uniqueness invariant of the local store.
package backup

import (
	"time"

	"github.com/finance-tracker/client/internal/application/repository"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// Snapshot is a full export of all entity collections plus the profile and
// the schema version they were written at.
type Snapshot struct {
	SchemaVersion         int                           `json:"schemaVersion"`
	ExportedAt            time.Time                     `json:"exportedAt"`
	Profile               entity.UserProfile            `json:"profile"`
	Transactions          []entity.Transaction          `json:"transactions"`
	Categories            []entity.Category             `json:"categories"`
	Goals                 []entity.Goal                 `json:"goals"`
	RecurringTransactions []entity.RecurringTransaction `json:"recurringTransactions"`
	Assets                []entity.Asset                `json:"assets"`
}

// Repositories bundles the per-entity repositories the backup use cases read
// and write through.
type Repositories struct {
	Transactions *repository.TransactionRepository
	Categories   *repository.CategoryRepository
	Goals        *repository.GoalRepository
	Recurring    *repository.RecurringRepository
	Assets       *repository.AssetRepository
	Profile      *repository.ProfileRepository
}
