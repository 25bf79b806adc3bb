package migration

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// Engine applies the registered migration steps to the local store. Run must
// be invoked exactly once per session, before any repository read.
type Engine struct {
	store    adapter.KVStore
	registry *Registry
	keys     adapter.Keyspace
}

// NewEngine creates a migration engine over the given store and registry.
func NewEngine(store adapter.KVStore, registry *Registry, keys adapter.Keyspace) *Engine {
	return &Engine{
		store:    store,
		registry: registry,
		keys:     keys,
	}
}

// Run migrates the store from its stored version up to the registry's current
// version. A failing step aborts the run without advancing the stored version,
// so the same migration is retried in full on the next startup; the
// application then continues against the pre-migration schema. Each step's
// output is persisted before the next step runs, which is safe because every
// step is self-idempotent.
func (e *Engine) Run(ctx context.Context) error {
	stored := e.storedVersion(ctx)
	current := e.registry.CurrentVersion()

	if stored >= current {
		return nil
	}

	slog.Info("Running schema migrations",
		"from_version", stored,
		"to_version", current,
	)

	snap, err := e.loadSnapshot(ctx)
	if err != nil {
		return domainerror.NewMigrationError(
			domainerror.ErrCodeMigrationStepFailed,
			stored,
			"failed to load store snapshot",
			err,
		)
	}

	for v := stored + 1; v <= current; v++ {
		step, ok := e.registry.Step(v)
		if !ok {
			return domainerror.NewMigrationError(
				domainerror.ErrCodeMigrationStepMissing,
				v,
				"no migration step registered for version "+strconv.Itoa(v),
				domainerror.ErrMigrationStepMissing,
			)
		}

		next, err := step(snap)
		if err != nil {
			slog.Error("Migration step failed, stored version not advanced",
				"target_version", v,
				"error", err,
			)
			return domainerror.NewMigrationError(
				domainerror.ErrCodeMigrationStepFailed,
				v,
				"migration step for version "+strconv.Itoa(v)+" failed",
				err,
			)
		}

		if err := e.persistSnapshot(ctx, next); err != nil {
			return domainerror.NewMigrationError(
				domainerror.ErrCodeMigrationStepFailed,
				v,
				"failed to persist migrated snapshot",
				err,
			)
		}
		snap = next
	}

	if err := e.store.Set(ctx, e.keys.SchemaVersion(), []byte(strconv.Itoa(current))); err != nil {
		return domainerror.NewMigrationError(
			domainerror.ErrCodeMigrationStepFailed,
			current,
			"failed to persist schema version",
			err,
		)
	}

	slog.Info("Schema migrations completed", "version", current)
	return nil
}

// storedVersion reads the schema version marker. A missing marker means
// pre-versioning legacy data; a malformed one is treated as missing.
func (e *Engine) storedVersion(ctx context.Context) int {
	raw, ok, err := e.store.Get(ctx, e.keys.SchemaVersion())
	if err != nil || !ok {
		return 0
	}

	var version int
	if err := json.Unmarshal(raw, &version); err != nil || version < 0 {
		slog.Warn("Malformed schema version marker, treating store as unversioned",
			"value", string(raw),
		)
		return 0
	}
	return version
}

// loadSnapshot reads every entity key present in the store.
func (e *Engine) loadSnapshot(ctx context.Context) (Snapshot, error) {
	snap := Snapshot{}

	kinds := append(entity.CollectionKinds(), entity.KindProfile)
	for _, kind := range kinds {
		key := e.keys.ForKind(kind)
		raw, ok, err := e.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if ok {
			snap[key] = raw
		}
	}
	return snap, nil
}

// persistSnapshot writes every key in the snapshot back to the store.
func (e *Engine) persistSnapshot(ctx context.Context, snap Snapshot) error {
	for key, value := range snap {
		if err := e.store.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}
