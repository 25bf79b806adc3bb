package repository

import (
	"context"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// TransactionRepository provides CRUD access to the transaction collection.
type TransactionRepository struct {
	c *collection[entity.Transaction]
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(
	store adapter.KVStore,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
) *TransactionRepository {
	return &TransactionRepository{
		c: newCollection(store, queue, notifier, keys, entity.KindTransaction,
			func(t entity.Transaction) string { return t.ID }),
	}
}

// GetAll returns every valid stored transaction.
func (r *TransactionRepository) GetAll(ctx context.Context) ([]entity.Transaction, error) {
	return r.c.load(ctx)
}

// Add persists a new transaction and enqueues a create mutation.
func (r *TransactionRepository) Add(ctx context.Context, transaction entity.Transaction) error {
	return r.c.add(ctx, transaction)
}

// Update replaces the transaction with the given id. No-op if the id is not found.
func (r *TransactionRepository) Update(ctx context.Context, id string, transaction entity.Transaction) error {
	return r.c.update(ctx, id, transaction)
}

// Delete removes the transaction with the given id. No-op if the id is not found.
func (r *TransactionRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
