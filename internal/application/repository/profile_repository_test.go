package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/persistence"
)

func newProfileFixture(t *testing.T) (*ProfileRepository, *persistence.MemoryStore, *syncqueue.Queue, *recordingNotifier, adapter.Keyspace) {
	t.Helper()
	store := persistence.NewMemoryStore()
	keys := adapter.NewKeyspace("local")
	queue, err := syncqueue.New(context.Background(), store, keys)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}
	notifier := newRecordingNotifier()
	return NewProfileRepository(store, queue, notifier, keys), store, queue, notifier, keys
}

func TestProfileRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the default when nothing is stored", func(t *testing.T) {
		repo, _, _, notifier, _ := newProfileFixture(t)

		profile, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if profile.Currency != entity.DefaultCurrency {
			t.Errorf("expected default currency, got %q", profile.Currency)
		}
		if notifier.resets != 0 {
			t.Error("absence is not corruption, expected no reset notification")
		}
	})

	t.Run("returns the stored profile when valid", func(t *testing.T) {
		repo, store, _, _, keys := newProfileFixture(t)
		seed := `{"name":"Ana","currency":"BRL","monthlyBudget":"2500"}`
		if err := store.Set(ctx, keys.ForKind(entity.KindProfile), []byte(seed)); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}

		profile, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if profile.Name != "Ana" || profile.Currency != "BRL" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("replaces an invalid stored profile with the default and notifies", func(t *testing.T) {
		repo, store, _, notifier, keys := newProfileFixture(t)
		seed := `{"name":"Ana","currency":"","monthlyBudget":"100"}`
		if err := store.Set(ctx, keys.ForKind(entity.KindProfile), []byte(seed)); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}

		profile, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if profile.Currency != entity.DefaultCurrency {
			t.Errorf("expected default currency after reset, got %q", profile.Currency)
		}
		if notifier.resets != 1 {
			t.Errorf("expected 1 reset notification, got %d", notifier.resets)
		}

		// The default must be persisted back wholesale.
		raw, ok, _ := store.Get(ctx, keys.ForKind(entity.KindProfile))
		if !ok {
			t.Fatal("expected profile persisted")
		}
		again, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("second get failed: %v", err)
		}
		if again.Currency != entity.DefaultCurrency {
			t.Errorf("expected persisted default on re-read, got %q (raw %s)", again.Currency, raw)
		}
	})
}

func TestProfileRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("persists and enqueues a profile update mutation", func(t *testing.T) {
		repo, _, queue, _, _ := newProfileFixture(t)

		profile := entity.UserProfile{
			Name:          "Ana",
			Currency:      "USD",
			MonthlyBudget: decimal.NewFromInt(3000),
		}
		if err := repo.Save(ctx, profile); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		got, err := repo.Get(ctx)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "Ana" {
			t.Errorf("expected saved profile, got %+v", got)
		}

		pending := queue.Pending()
		if len(pending) != 1 {
			t.Fatalf("expected 1 pending mutation, got %d", len(pending))
		}
		if pending[0].Kind != entity.KindProfile || pending[0].Op != entity.MutationOpUpdate {
			t.Errorf("unexpected mutation: kind=%s op=%s", pending[0].Kind, pending[0].Op)
		}
	})

	t.Run("rejects an invalid profile without enqueueing", func(t *testing.T) {
		repo, _, queue, _, _ := newProfileFixture(t)

		bad := entity.UserProfile{Currency: "", MonthlyBudget: decimal.NewFromInt(10)}
		if err := repo.Save(ctx, bad); err == nil {
			t.Fatal("expected validation error")
		}
		if queue.Len() != 0 {
			t.Errorf("expected no pending mutations, got %d", queue.Len())
		}
	})
}
