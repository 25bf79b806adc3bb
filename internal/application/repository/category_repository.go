package repository

import (
	"context"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// CategoryRepository provides CRUD access to the category collection.
type CategoryRepository struct {
	c *collection[entity.Category]
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(
	store adapter.KVStore,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
) *CategoryRepository {
	return &CategoryRepository{
		c: newCollection(store, queue, notifier, keys, entity.KindCategory,
			func(c entity.Category) string { return c.ID }),
	}
}

// GetAll returns every valid stored category.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]entity.Category, error) {
	return r.c.load(ctx)
}

// Add persists a new category and enqueues a create mutation.
func (r *CategoryRepository) Add(ctx context.Context, category entity.Category) error {
	return r.c.add(ctx, category)
}

// Update replaces the category with the given id. No-op if the id is not found.
func (r *CategoryRepository) Update(ctx context.Context, id string, category entity.Category) error {
	return r.c.update(ctx, id, category)
}

// Delete removes the category with the given id. No-op if the id is not found.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
