package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/migration"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// ImportMode selects how a snapshot is applied to the local store.
type ImportMode string

const (
	// ImportModeReplace wholesale-replaces the local collections.
	ImportModeReplace ImportMode = "replace"
	// ImportModeMerge merges snapshot records by id; an imported record wins
	// on id collision.
	ImportModeMerge ImportMode = "merge"
)

// ErrInvalidImportMode is returned when the mode is not replace or merge.
var ErrInvalidImportMode = errors.New("invalid import mode")

// ErrSnapshotVersionMismatch is returned when a replace import carries a
// schema version other than the current one. Replace writes the store
// directly, so older snapshots must be migrated by the app that produced them.
var ErrSnapshotVersionMismatch = errors.New("snapshot schema version mismatch")

// ImportSnapshotInput represents the input for a snapshot import.
type ImportSnapshotInput struct {
	Mode     ImportMode
	Snapshot Snapshot
}

// ImportSnapshotOutput represents the result of a snapshot import.
type ImportSnapshotOutput struct {
	Imported int
}

// ImportSnapshotUseCase applies an exported snapshot to the local store.
type ImportSnapshotUseCase struct {
	repos Repositories
	store adapter.KVStore
	keys  adapter.Keyspace
}

// NewImportSnapshotUseCase creates a new ImportSnapshotUseCase instance.
func NewImportSnapshotUseCase(repos Repositories, store adapter.KVStore, keys adapter.Keyspace) *ImportSnapshotUseCase {
	return &ImportSnapshotUseCase{
		repos: repos,
		store: store,
		keys:  keys,
	}
}

// Execute imports the snapshot. Merge mode goes through the repositories, so
// imported records are validated and enqueued for remote sync; replace mode
// restores the local collections wholesale without enqueueing.
func (uc *ImportSnapshotUseCase) Execute(ctx context.Context, input ImportSnapshotInput) (*ImportSnapshotOutput, error) {
	switch input.Mode {
	case ImportModeReplace:
		return uc.replace(ctx, input.Snapshot)
	case ImportModeMerge:
		return uc.merge(ctx, input.Snapshot)
	default:
		return nil, ErrInvalidImportMode
	}
}

func (uc *ImportSnapshotUseCase) replace(ctx context.Context, snap Snapshot) (*ImportSnapshotOutput, error) {
	if snap.SchemaVersion != migration.CurrentSchemaVersion {
		return nil, fmt.Errorf("%w: snapshot at %d, current is %d",
			ErrSnapshotVersionMismatch, snap.SchemaVersion, migration.CurrentSchemaVersion)
	}

	collections := map[entity.Kind]any{
		entity.KindTransaction: snap.Transactions,
		entity.KindCategory:    snap.Categories,
		entity.KindGoal:        snap.Goals,
		entity.KindRecurring:   snap.RecurringTransactions,
		entity.KindAsset:       snap.Assets,
	}

	imported := 0
	for _, kind := range entity.CollectionKinds() {
		encoded, err := json.Marshal(collections[kind])
		if err != nil {
			return nil, err
		}
		if err := uc.store.Set(ctx, uc.keys.ForKind(kind), encoded); err != nil {
			return nil, err
		}
	}
	imported += len(snap.Transactions) + len(snap.Categories) + len(snap.Goals) +
		len(snap.RecurringTransactions) + len(snap.Assets)

	encoded, err := json.Marshal(snap.Profile)
	if err != nil {
		return nil, err
	}
	if err := uc.store.Set(ctx, uc.keys.ForKind(entity.KindProfile), encoded); err != nil {
		return nil, err
	}

	return &ImportSnapshotOutput{Imported: imported}, nil
}

func (uc *ImportSnapshotUseCase) merge(ctx context.Context, snap Snapshot) (*ImportSnapshotOutput, error) {
	imported := 0

	n, err := mergeRecords(ctx, snap.Transactions,
		func(t entity.Transaction) string { return t.ID },
		uc.repos.Transactions.GetAll, uc.repos.Transactions.Add, uc.repos.Transactions.Update)
	if err != nil {
		return nil, err
	}
	imported += n

	n, err = mergeRecords(ctx, snap.Categories,
		func(c entity.Category) string { return c.ID },
		uc.repos.Categories.GetAll, uc.repos.Categories.Add, uc.repos.Categories.Update)
	if err != nil {
		return nil, err
	}
	imported += n

	n, err = mergeRecords(ctx, snap.Goals,
		func(g entity.Goal) string { return g.ID },
		uc.repos.Goals.GetAll, uc.repos.Goals.Add, uc.repos.Goals.Update)
	if err != nil {
		return nil, err
	}
	imported += n

	n, err = mergeRecords(ctx, snap.RecurringTransactions,
		func(r entity.RecurringTransaction) string { return r.ID },
		uc.repos.Recurring.GetAll, uc.repos.Recurring.Add, uc.repos.Recurring.Update)
	if err != nil {
		return nil, err
	}
	imported += n

	n, err = mergeRecords(ctx, snap.Assets,
		func(a entity.Asset) string { return a.ID },
		uc.repos.Assets.GetAll, uc.repos.Assets.Add, uc.repos.Assets.Update)
	if err != nil {
		return nil, err
	}
	imported += n

	if err := uc.repos.Profile.Save(ctx, snap.Profile); err != nil {
		return nil, err
	}

	return &ImportSnapshotOutput{Imported: imported}, nil
}

// mergeRecords merges records by id: existing ids are updated with the
// imported record, new ids are added.
func mergeRecords[T any](
	ctx context.Context,
	records []T,
	idOf func(T) string,
	getAll func(context.Context) ([]T, error),
	add func(context.Context, T) error,
	update func(context.Context, string, T) error,
) (int, error) {
	existing, err := getAll(ctx)
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(existing))
	for _, item := range existing {
		known[idOf(item)] = true
	}

	imported := 0
	for _, record := range records {
		id := idOf(record)
		if known[id] {
			if err := update(ctx, id, record); err != nil {
				return imported, err
			}
		} else {
			if err := add(ctx, record); err != nil {
				return imported, err
			}
		}
		imported++
	}
	return imported, nil
}
