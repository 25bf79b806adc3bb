package migration

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/finance-tracker/client/internal/application/adapter"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
	"github.com/finance-tracker/client/internal/integration/persistence"
)

func testKeys() adapter.Keyspace {
	return adapter.NewKeyspace("local")
}

func seedStore(t *testing.T, store *persistence.MemoryStore, key string, value string) {
	t.Helper()
	if err := store.Set(context.Background(), key, []byte(value)); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
}

func storedJSON(t *testing.T, store *persistence.MemoryStore, key string) []byte {
	t.Helper()
	raw, ok, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("failed to read store: %v", err)
	}
	if !ok {
		t.Fatalf("expected key %s to be present", key)
	}
	return raw
}

func TestEngine_Run(t *testing.T) {
	ctx := context.Background()
	keys := testKeys()

	t.Run("rewrites legacy unexpected type and backfills the flag", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("transactions"),
			`[{"id":"1","type":"unexpected","amount":"50","category":"other","date":"2024-01-15"},`+
				`{"id":"2","type":"income","amount":"5000","category":"salary","date":"2024-01-01"}]`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		var got []transactionV1
		if err := json.Unmarshal(storedJSON(t, store, keys.ForKind("transactions")), &got); err != nil {
			t.Fatalf("failed to decode migrated transactions: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
		if got[0].Type != "expense" {
			t.Errorf("expected legacy type rewritten to expense, got %s", got[0].Type)
		}
		if !got[0].IsUnexpected {
			t.Error("expected isUnexpected true on rewritten record")
		}
		if got[1].Type != "income" {
			t.Errorf("expected income record untouched, got %s", got[1].Type)
		}
		if got[1].IsUnexpected {
			t.Error("expected isUnexpected backfilled as false on untouched record")
		}
	})

	t.Run("sets the version marker to the current version", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		engine := NewEngine(store, DefaultRegistry(keys), keys)

		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		raw := storedJSON(t, store, keys.SchemaVersion())
		if string(raw) != "2" {
			t.Errorf("expected version marker 2, got %s", raw)
		}
	})

	t.Run("is a no-op when the store is already current", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.SchemaVersion(), "2")
		seedStore(t, store, keys.ForKind("transactions"),
			`[{"id":"1","type":"unexpected","amount":"50","category":"other","date":"2024-01-15"}]`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		// The legacy record must be untouched: no step ran.
		raw := storedJSON(t, store, keys.ForKind("transactions"))
		var got []transactionV0
		if err := json.Unmarshal(raw, &got); err != nil {
			t.Fatalf("failed to decode transactions: %v", err)
		}
		if got[0].Type != "unexpected" {
			t.Errorf("expected record untouched at current version, got type %s", got[0].Type)
		}
	})

	t.Run("running twice yields the same store contents", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("transactions"),
			`[{"id":"1","type":"unexpected","amount":"50","category":"other","date":"2024-01-15"}]`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		first := string(storedJSON(t, store, keys.ForKind("transactions")))

		if err := engine.Run(ctx); err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		second := string(storedJSON(t, store, keys.ForKind("transactions")))

		if first != second {
			t.Errorf("expected identical contents after re-run\nfirst:  %s\nsecond: %s", first, second)
		}
	})

	t.Run("failing step does not advance the version marker", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		stepErr := errors.New("step exploded")

		registry := NewRegistry()
		registry.Register(1, func(snap Snapshot) (Snapshot, error) {
			return nil, stepErr
		})

		engine := NewEngine(store, registry, keys)
		err := engine.Run(ctx)
		if err == nil {
			t.Fatal("expected run to fail")
		}

		var migErr *domainerror.MigrationError
		if !errors.As(err, &migErr) {
			t.Fatalf("expected a MigrationError, got %T", err)
		}
		if migErr.Code != domainerror.ErrCodeMigrationStepFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMigrationStepFailed, migErr.Code)
		}

		_, ok, getErr := store.Get(ctx, keys.SchemaVersion())
		if getErr != nil {
			t.Fatalf("failed to read version marker: %v", getErr)
		}
		if ok {
			t.Error("expected version marker absent after failed run")
		}
	})

	t.Run("retries the full migration after a failed run", func(t *testing.T) {
		store := persistence.NewMemoryStore()

		calls := 0
		registry := NewRegistry()
		registry.Register(1, func(snap Snapshot) (Snapshot, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("transient")
			}
			return snap.Clone(), nil
		})

		engine := NewEngine(store, registry, keys)
		if err := engine.Run(ctx); err == nil {
			t.Fatal("expected first run to fail")
		}
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected retry to succeed, got %v", err)
		}
		if string(storedJSON(t, store, keys.SchemaVersion())) != "1" {
			t.Error("expected version marker advanced after successful retry")
		}
	})

	t.Run("missing registered step fails the run", func(t *testing.T) {
		store := persistence.NewMemoryStore()

		registry := NewRegistry()
		registry.Register(2, func(snap Snapshot) (Snapshot, error) {
			return snap.Clone(), nil
		})

		engine := NewEngine(store, registry, keys)
		err := engine.Run(ctx)
		if !errors.Is(err, domainerror.ErrMigrationStepMissing) {
			t.Fatalf("expected ErrMigrationStepMissing, got %v", err)
		}
	})

	t.Run("malformed version marker is treated as unversioned", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.SchemaVersion(), `"not-a-number"`)
		seedStore(t, store, keys.ForKind("transactions"),
			`[{"id":"1","type":"unexpected","amount":"50","category":"other","date":"2024-01-15"}]`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		var got []transactionV1
		if err := json.Unmarshal(storedJSON(t, store, keys.ForKind("transactions")), &got); err != nil {
			t.Fatalf("failed to decode transactions: %v", err)
		}
		if got[0].Type != "expense" {
			t.Error("expected migration to run from version 0 on malformed marker")
		}
		if string(storedJSON(t, store, keys.SchemaVersion())) != "2" {
			t.Error("expected version marker repaired to 2")
		}
	})

	t.Run("malformed transactions do not block the run", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("transactions"), `{"not":"an array`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		if string(storedJSON(t, store, keys.SchemaVersion())) != "2" {
			t.Error("expected version marker advanced to 2 despite malformed collection")
		}
		if string(storedJSON(t, store, keys.ForKind("transactions"))) != `{"not":"an array` {
			t.Error("expected malformed collection left untouched")
		}
	})
}

func TestStepNormalizeFrequenciesAndCurrency(t *testing.T) {
	ctx := context.Background()
	keys := testKeys()

	t.Run("maps legacy frequencies and keeps current ones", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("recurring_transactions"),
			`[{"id":"r1","type":"expense","amount":"10","category":"subs","frequency":"month","startDate":"2024-01-01"},`+
				`{"id":"r2","type":"expense","amount":"20","category":"subs","frequency":"weekly","startDate":"2024-01-01"},`+
				`{"id":"r3","type":"income","amount":"30","category":"other","frequency":"year","startDate":"2024-01-01"}]`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		var got []recurringV1
		if err := json.Unmarshal(storedJSON(t, store, keys.ForKind("recurring_transactions")), &got); err != nil {
			t.Fatalf("failed to decode recurring transactions: %v", err)
		}
		want := []string{"monthly", "weekly", "yearly"}
		for i, rule := range got {
			if rule.Frequency != want[i] {
				t.Errorf("rule %s: expected frequency %s, got %s", rule.ID, want[i], rule.Frequency)
			}
		}
	})

	t.Run("backfills missing profile currency", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("profile"), `{"name":"Ana"}`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		var got profileV1
		if err := json.Unmarshal(storedJSON(t, store, keys.ForKind("profile")), &got); err != nil {
			t.Fatalf("failed to decode profile: %v", err)
		}
		if got.Currency != "USD" {
			t.Errorf("expected currency backfilled to USD, got %q", got.Currency)
		}
		if got.Name != "Ana" {
			t.Errorf("expected name preserved, got %q", got.Name)
		}
	})

	t.Run("preserves an existing profile currency", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("profile"), `{"name":"Ana","currency":"BRL"}`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		var got profileV1
		if err := json.Unmarshal(storedJSON(t, store, keys.ForKind("profile")), &got); err != nil {
			t.Fatalf("failed to decode profile: %v", err)
		}
		if got.Currency != "BRL" {
			t.Errorf("expected currency preserved as BRL, got %q", got.Currency)
		}
	})

	t.Run("malformed recurring transactions are skipped, profile still migrates", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("recurring_transactions"), `not json at all`)
		seedStore(t, store, keys.ForKind("profile"), `{"name":"Ana"}`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		if string(storedJSON(t, store, keys.ForKind("recurring_transactions"))) != `not json at all` {
			t.Error("expected malformed recurring transactions left untouched")
		}
		var got profileV1
		if err := json.Unmarshal(storedJSON(t, store, keys.ForKind("profile")), &got); err != nil {
			t.Fatalf("failed to decode profile: %v", err)
		}
		if got.Currency != "USD" {
			t.Errorf("expected currency backfilled to USD, got %q", got.Currency)
		}
	})

	t.Run("malformed profile is skipped, not overwritten", func(t *testing.T) {
		store := persistence.NewMemoryStore()
		seedStore(t, store, keys.ForKind("profile"), `{"name":`)

		engine := NewEngine(store, DefaultRegistry(keys), keys)
		if err := engine.Run(ctx); err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}

		if string(storedJSON(t, store, keys.ForKind("profile"))) != `{"name":` {
			t.Error("expected malformed profile left untouched")
		}
		if string(storedJSON(t, store, keys.SchemaVersion())) != "2" {
			t.Error("expected version marker advanced to 2 despite malformed profile")
		}
	})
}
