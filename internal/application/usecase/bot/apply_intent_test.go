package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/repository"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/application/usecase/dashboard"
	"github.com/finance-tracker/client/internal/application/usecase/transaction"
	"github.com/finance-tracker/client/internal/domain/entity"
	"github.com/finance-tracker/client/internal/integration/persistence"
)

type noopNotifier struct{}

func (noopNotifier) DroppedRecords(entity.Kind, int) {}
func (noopNotifier) ProfileReset()                   {}
func (noopNotifier) SyncDegraded(entity.Kind, int)   {}

func newApplyIntentFixture(t *testing.T) *ApplyIntentUseCase {
	t.Helper()
	store := persistence.NewMemoryStore()
	keys := adapter.NewKeyspace("local")
	queue, err := syncqueue.New(context.Background(), store, keys)
	if err != nil {
		t.Fatalf("failed to create queue: %v", err)
	}
	repo := repository.NewTransactionRepository(store, queue, noopNotifier{}, keys)
	return NewApplyIntentUseCase(
		transaction.NewCreateTransactionUseCase(repo),
		dashboard.NewGetBalanceUseCase(repo),
	)
}

func TestApplyIntentUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("add transaction intent creates a transaction", func(t *testing.T) {
		uc := newApplyIntentFixture(t)

		out, err := uc.Execute(ctx, Intent{
			Kind:        IntentAddTransaction,
			Type:        entity.TransactionTypeExpense,
			Amount:      decimal.NewFromInt(42),
			Category:    "food",
			Date:        "2024-01-15",
			Description: "lunch",
		})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if out.Transaction == nil || out.Transaction.ID == "" {
			t.Fatal("expected a created transaction")
		}
		if !out.Transaction.Amount.Equal(decimal.NewFromInt(42)) {
			t.Errorf("expected amount 42, got %s", out.Transaction.Amount)
		}
	})

	t.Run("query balance intent returns the derived balance", func(t *testing.T) {
		uc := newApplyIntentFixture(t)
		if _, err := uc.Execute(ctx, Intent{
			Kind:     IntentAddTransaction,
			Type:     entity.TransactionTypeIncome,
			Amount:   decimal.NewFromInt(100),
			Category: "salary",
			Date:     "2024-01-01",
		}); err != nil {
			t.Fatalf("seed intent failed: %v", err)
		}

		out, err := uc.Execute(ctx, Intent{Kind: IntentQueryBalance})
		if err != nil {
			t.Fatalf("execute failed: %v", err)
		}
		if out.Balance == nil {
			t.Fatal("expected a balance output")
		}
		if !out.Balance.Balance.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected balance 100, got %s", out.Balance.Balance)
		}
	})

	t.Run("unknown intents are rejected", func(t *testing.T) {
		uc := newApplyIntentFixture(t)

		_, err := uc.Execute(ctx, Intent{Kind: "set_reminder"})
		if !errors.Is(err, ErrUnknownIntent) {
			t.Fatalf("expected ErrUnknownIntent, got %v", err)
		}
	})
}
