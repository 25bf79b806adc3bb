package repository

import (
	"context"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// GoalRepository provides CRUD access to the goal collection.
type GoalRepository struct {
	c *collection[entity.Goal]
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(
	store adapter.KVStore,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
) *GoalRepository {
	return &GoalRepository{
		c: newCollection(store, queue, notifier, keys, entity.KindGoal,
			func(g entity.Goal) string { return g.ID }),
	}
}

// GetAll returns every valid stored goal.
func (r *GoalRepository) GetAll(ctx context.Context) ([]entity.Goal, error) {
	return r.c.load(ctx)
}

// Add persists a new goal and enqueues a create mutation.
func (r *GoalRepository) Add(ctx context.Context, goal entity.Goal) error {
	return r.c.add(ctx, goal)
}

// Update replaces the goal with the given id. No-op if the id is not found.
func (r *GoalRepository) Update(ctx context.Context, id string, goal entity.Goal) error {
	return r.c.update(ctx, id, goal)
}

// Delete removes the goal with the given id. No-op if the id is not found.
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
