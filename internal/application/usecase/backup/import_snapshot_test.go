package backup

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/migration"
	"github.com/finance-tracker/client/internal/application/repository"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/persistence"
)

type noopNotifier struct{}

func (noopNotifier) DroppedRecords(entity.Kind, int) {}
func (noopNotifier) ProfileReset()                   {}
func (noopNotifier) SyncDegraded(entity.Kind, int)   {}

type backupFixture struct {
	store  *persistence.MemoryStore
	queue  *syncqueue.Queue
	keys   adapter.Keyspace
	repos  Repositories
	export *ExportSnapshotUseCase
	imp    *ImportSnapshotUseCase
}

func newBackupFixture(t *testing.T) *backupFixture {
	t.Helper()
	store := persistence.NewMemoryStore()
	keys := adapter.NewKeyspace("local")
	queue, err := syncqueue.New(context.Background(), store, keys)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}
	notifier := noopNotifier{}
	repos := Repositories{
		Transactions: repository.NewTransactionRepository(store, queue, notifier, keys),
		Categories:   repository.NewCategoryRepository(store, queue, notifier, keys),
		Goals:        repository.NewGoalRepository(store, queue, notifier, keys),
		Recurring:    repository.NewRecurringRepository(store, queue, notifier, keys),
		Assets:       repository.NewAssetRepository(store, queue, notifier, keys),
		Profile:      repository.NewProfileRepository(store, queue, notifier, keys),
	}
	return &backupFixture{
		store:  store,
		queue:  queue,
		keys:   keys,
		repos:  repos,
		export: NewExportSnapshotUseCase(repos),
		imp:    NewImportSnapshotUseCase(repos, store, keys),
	}
}

func sampleTransaction(id string, amount int64) entity.Transaction {
	return entity.Transaction{
		ID:       id,
		Type:     entity.TransactionTypeExpense,
		Amount:   decimal.NewFromInt(amount),
		Category: "food",
		Date:     "2024-01-15",
	}
}

func TestExportSnapshotUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("exports all collections at the current schema version", func(t *testing.T) {
		f := newBackupFixture(t)
		if err := f.repos.Transactions.Add(ctx, sampleTransaction("t1", 50)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		snap, err := f.export.Execute(ctx)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		if snap.SchemaVersion != migration.CurrentSchemaVersion {
			t.Errorf("expected schema version %d, got %d", migration.CurrentSchemaVersion, snap.SchemaVersion)
		}
		if len(snap.Transactions) != 1 {
			t.Errorf("expected 1 transaction exported, got %d", len(snap.Transactions))
		}
		if snap.Profile.Currency != entity.DefaultCurrency {
			t.Errorf("expected default profile exported, got %+v", snap.Profile)
		}
		if snap.ExportedAt.IsZero() {
			t.Error("expected export timestamp set")
		}
	})
}

func TestImportSnapshotUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("replace mode restores collections wholesale", func(t *testing.T) {
		f := newBackupFixture(t)
		if err := f.repos.Transactions.Add(ctx, sampleTransaction("old", 10)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		out, err := f.imp.Execute(ctx, ImportSnapshotInput{
			Mode: ImportModeReplace,
			Snapshot: Snapshot{
				SchemaVersion: migration.CurrentSchemaVersion,
				Profile:       entity.DefaultProfile(),
				Transactions:  []entity.Transaction{sampleTransaction("new", 99)},
			},
		})
		if err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if out.Imported != 1 {
			t.Errorf("expected 1 record imported, got %d", out.Imported)
		}

		stored, err := f.repos.Transactions.GetAll(ctx)
		if err != nil {
			t.Fatalf("get all failed: %v", err)
		}
		if len(stored) != 1 || stored[0].ID != "new" {
			t.Errorf("expected only the snapshot record, got %+v", stored)
		}
	})

	t.Run("replace mode rejects a snapshot at another schema version", func(t *testing.T) {
		f := newBackupFixture(t)

		_, err := f.imp.Execute(ctx, ImportSnapshotInput{
			Mode: ImportModeReplace,
			Snapshot: Snapshot{
				SchemaVersion: migration.CurrentSchemaVersion - 1,
				Profile:       entity.DefaultProfile(),
			},
		})
		if !errors.Is(err, ErrSnapshotVersionMismatch) {
			t.Fatalf("expected ErrSnapshotVersionMismatch, got %v", err)
		}
	})

	t.Run("merge mode adds new ids and overwrites colliding ones", func(t *testing.T) {
		f := newBackupFixture(t)
		if err := f.repos.Transactions.Add(ctx, sampleTransaction("shared", 10)); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		out, err := f.imp.Execute(ctx, ImportSnapshotInput{
			Mode: ImportModeMerge,
			Snapshot: Snapshot{
				SchemaVersion: migration.CurrentSchemaVersion,
				Profile:       entity.DefaultProfile(),
				Transactions: []entity.Transaction{
					sampleTransaction("shared", 999),
					sampleTransaction("extra", 5),
				},
			},
		})
		if err != nil {
			t.Fatalf("import failed: %v", err)
		}
		if out.Imported != 2 {
			t.Errorf("expected 2 records imported, got %d", out.Imported)
		}

		stored, err := f.repos.Transactions.GetAll(ctx)
		if err != nil {
			t.Fatalf("get all failed: %v", err)
		}
		if len(stored) != 2 {
			t.Fatalf("expected 2 stored transactions, got %d", len(stored))
		}
		byID := map[string]entity.Transaction{}
		for _, tx := range stored {
			byID[tx.ID] = tx
		}
		if !byID["shared"].Amount.Equal(decimal.NewFromInt(999)) {
			t.Errorf("expected imported record to win on collision, got %s", byID["shared"].Amount)
		}
		if _, ok := byID["extra"]; !ok {
			t.Error("expected new record added")
		}
	})

	t.Run("merge mode enqueues sync mutations for imported records", func(t *testing.T) {
		f := newBackupFixture(t)

		_, err := f.imp.Execute(ctx, ImportSnapshotInput{
			Mode: ImportModeMerge,
			Snapshot: Snapshot{
				SchemaVersion: migration.CurrentSchemaVersion,
				Profile:       entity.DefaultProfile(),
				Transactions:  []entity.Transaction{sampleTransaction("t1", 5)},
			},
		})
		if err != nil {
			t.Fatalf("import failed: %v", err)
		}

		// One create for the transaction plus the profile update.
		if f.queue.Len() != 2 {
			t.Errorf("expected 2 queued mutations, got %d", f.queue.Len())
		}
	})

	t.Run("unknown mode is rejected", func(t *testing.T) {
		f := newBackupFixture(t)

		_, err := f.imp.Execute(ctx, ImportSnapshotInput{Mode: "sideload"})
		if !errors.Is(err, ErrInvalidImportMode) {
			t.Fatalf("expected ErrInvalidImportMode, got %v", err)
		}
	})
}
