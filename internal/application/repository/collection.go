// Package repository provides typed CRUD façades over the local store, one
// per entity kind. Repositories are the only component that reads or writes
// the store directly; every read passes the validation gate and every
// successful write enqueues a matching pending mutation.
package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/application/validation"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// deleteRef is the payload of a delete mutation.
type deleteRef struct {
	ID string `json:"id"`
}

// collection implements the shared read-modify-write cycle for one
// collection-valued entity kind. Whole-collection persistence is acceptable
// because collections are bounded to a single user's data and held fully in
// memory during a session.
type collection[T validation.Validatable] struct {
	store    adapter.KVStore
	queue    *syncqueue.Queue
	notifier adapter.Notifier
	kind     entity.Kind
	key      string
	idOf     func(T) string
}

func newCollection[T validation.Validatable](
	store adapter.KVStore,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
	kind entity.Kind,
	idOf func(T) string,
) *collection[T] {
	return &collection[T]{
		store:    store,
		queue:    queue,
		notifier: notifier,
		kind:     kind,
		key:      keys.ForKind(kind),
		idOf:     idOf,
	}
}

// load reads the collection through the validation gate. When invalid records
// were dropped, the filtered set is persisted back immediately (self-healing
// the stored data) and the drop is reported through the notifier.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []T{}, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		slog.Warn("Malformed stored collection, defaulting to empty",
			"kind", c.kind,
			"error", err,
		)
		return []T{}, nil
	}

	outcome := validation.Collection[T](elements)
	if outcome.InvalidCount > 0 {
		if err := c.persist(ctx, outcome.Valid); err != nil {
			slog.Warn("Failed to persist filtered collection",
				"kind", c.kind,
				"error", err,
			)
		}
		c.notifier.DroppedRecords(c.kind, outcome.InvalidCount)
	}
	return outcome.Valid, nil
}

func (c *collection[T]) persist(ctx context.Context, items []T) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key, encoded)
}

// add appends the item and enqueues a create mutation.
func (c *collection[T]) add(ctx context.Context, item T) error {
	if err := item.Validate(); err != nil {
		return err
	}

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	items = append(items, item)
	if err := c.persist(ctx, items); err != nil {
		return err
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.queue.Enqueue(ctx, c.kind, entity.MutationOpCreate, payload)
}

// update replaces the item with the given id and enqueues an update mutation.
// Unknown ids are a no-op and enqueue nothing.
func (c *collection[T]) update(ctx context.Context, id string, item T) error {
	if err := item.Validate(); err != nil {
		return err
	}

	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i := range items {
		if c.idOf(items[i]) == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	items[index] = item
	if err := c.persist(ctx, items); err != nil {
		return err
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.queue.Enqueue(ctx, c.kind, entity.MutationOpUpdate, payload)
}

// delete removes the item with the given id and enqueues a delete mutation.
// Unknown ids are a no-op and enqueue nothing.
func (c *collection[T]) delete(ctx context.Context, id string) error {
	items, err := c.load(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i := range items {
		if c.idOf(items[i]) == id {
			index = i
			break
		}
	}
	if index < 0 {
		return nil
	}

	items = append(items[:index], items[index+1:]...)
	if err := c.persist(ctx, items); err != nil {
		return err
	}

	payload, err := json.Marshal(deleteRef{ID: id})
	if err != nil {
		return err
	}
	return c.queue.Enqueue(ctx, c.kind, entity.MutationOpDelete, payload)
}
