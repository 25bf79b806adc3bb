package repository

import (
	"context"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// RecurringRepository provides CRUD access to the recurring transaction collection.
type RecurringRepository struct {
	c *collection[entity.RecurringTransaction]
}

// NewRecurringRepository creates a new recurring transaction repository instance.
func NewRecurringRepository(
	store adapter.KVStore,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
) *RecurringRepository {
	return &RecurringRepository{
		c: newCollection(store, queue, notifier, keys, entity.KindRecurring,
			func(r entity.RecurringTransaction) string { return r.ID }),
	}
}

// GetAll returns every valid stored recurring transaction.
func (r *RecurringRepository) GetAll(ctx context.Context) ([]entity.RecurringTransaction, error) {
	return r.c.load(ctx)
}

// Add persists a new recurring transaction and enqueues a create mutation.
func (r *RecurringRepository) Add(ctx context.Context, rule entity.RecurringTransaction) error {
	return r.c.add(ctx, rule)
}

// Update replaces the recurring transaction with the given id. No-op if the id is not found.
func (r *RecurringRepository) Update(ctx context.Context, id string, rule entity.RecurringTransaction) error {
	return r.c.update(ctx, id, rule)
}

// Delete removes the recurring transaction with the given id. No-op if the id is not found.
func (r *RecurringRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
