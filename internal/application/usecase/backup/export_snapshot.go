package backup

import (
	"context"
	"time"

	"github.com/finance-tracker/client/internal/application/migration"
)

// ExportSnapshotUseCase produces a full snapshot of the local store.
type ExportSnapshotUseCase struct {
	repos Repositories
}

// NewExportSnapshotUseCase creates a new ExportSnapshotUseCase instance.
func NewExportSnapshotUseCase(repos Repositories) *ExportSnapshotUseCase {
	return &ExportSnapshotUseCase{repos: repos}
}

// Execute exports every collection and the profile. Reads pass the validation
// gate, so an export never contains records the application itself would drop.
func (uc *ExportSnapshotUseCase) Execute(ctx context.Context) (*Snapshot, error) {
	transactions, err := uc.repos.Transactions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := uc.repos.Categories.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := uc.repos.Goals.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	recurring, err := uc.repos.Recurring.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := uc.repos.Assets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := uc.repos.Profile.Get(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		SchemaVersion:         migration.CurrentSchemaVersion,
		ExportedAt:            time.Now().UTC(),
		Profile:               profile,
		Transactions:          transactions,
		Categories:            categories,
		Goals:                 goals,
		RecurringTransactions: recurring,
		Assets:                assets,
	}, nil
}
