// Package syncqueue holds pending local mutations until they are applied to
// the remote backend. Repositories append; the sync engine removes, and only
// after a confirmed remote apply.
package syncqueue

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// ApplyFunc applies one pending mutation against the remote backend. A nil
// return confirms the apply; any error leaves the mutation queued for the
// next drain. Delivery is at-least-once, so the remote apply must be idempotent.
type ApplyFunc func(ctx context.Context, mutation entity.PendingMutation) error

// DrainResult summarizes one drain pass.
type DrainResult struct {
	Succeeded int
	Failed    int
	Skipped   bool
}

// Queue is a durable FIFO of pending mutations. Overall FIFO order is a
// superset of the required guarantee: operations on the same entity id apply
// in the order they were enqueued.
type Queue struct {
	store adapter.KVStore
	key   string

	mu       sync.Mutex
	pending  []entity.PendingMutation
	draining bool
}

// New creates a queue backed by the store, restoring any mutations persisted
// by a previous session. A malformed persisted queue is treated as empty.
func New(ctx context.Context, store adapter.KVStore, keys adapter.Keyspace) (*Queue, error) {
	q := &Queue{
		store: store,
		key:   keys.PendingMutations(),
	}

	raw, ok, err := store.Get(ctx, q.key)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &q.pending); err != nil {
			slog.Warn("Malformed pending mutation queue, starting empty", "error", err)
			q.pending = nil
		}
	}
	return q, nil
}

// Enqueue records a local create, update or delete for later replay against
// the remote backend.
func (q *Queue) Enqueue(ctx context.Context, kind entity.Kind, op entity.MutationOp, payload json.RawMessage) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append(q.pending, entity.NewPendingMutation(kind, op, payload))
	return q.persistLocked(ctx)
}

// Pending returns a copy of the queued mutations in order.
func (q *Queue) Pending() []entity.PendingMutation {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]entity.PendingMutation, len(q.pending))
	copy(out, q.pending)
	return out
}

// Len returns the number of queued mutations.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain applies each pending mutation in order. Confirmed mutations are
// removed and persisted one at a time; failures stay queued in their original
// relative order for the next drain. There is no retry loop within a single
// drain. Once a mutation fails, later mutations targeting the same
// (kind, entity id) are not attempted in this pass: applying them would
// invert the per-entity order when the failed mutation is retried. A drain
// requested while one is active is skipped to avoid duplicate remote applies.
func (q *Queue) Drain(ctx context.Context, apply ApplyFunc) DrainResult {
	q.mu.Lock()
	if q.draining {
		q.mu.Unlock()
		return DrainResult{Skipped: true}
	}
	q.draining = true
	snapshot := make([]entity.PendingMutation, len(q.pending))
	copy(snapshot, q.pending)
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.draining = false
		q.mu.Unlock()
	}()

	var result DrainResult
	blocked := map[string]bool{}
	for _, mutation := range snapshot {
		target := entityKey(mutation)
		if blocked[target] {
			slog.Debug("Mutation held back behind an earlier failure for the same entity",
				"kind", mutation.Kind,
				"op", mutation.Op,
				"entity_id", mutation.EntityID(),
			)
			result.Failed++
			continue
		}
		if err := apply(ctx, mutation); err != nil {
			slog.Debug("Mutation apply failed, leaving queued",
				"kind", mutation.Kind,
				"op", mutation.Op,
				"entity_id", mutation.EntityID(),
				"error", err,
			)
			blocked[target] = true
			result.Failed++
			continue
		}
		q.remove(ctx, mutation.ID)
		result.Succeeded++
	}
	return result
}

// entityKey identifies the entity a mutation targets for per-entity ordering.
func entityKey(m entity.PendingMutation) string {
	return string(m.Kind) + "/" + m.EntityID()
}

// remove deletes one confirmed mutation by its queue id and persists the
// shrunken queue so a crash cannot replay it.
func (q *Queue) remove(ctx context.Context, id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, m := range q.pending {
		if m.ID == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			break
		}
	}
	if err := q.persistLocked(ctx); err != nil {
		slog.Warn("Failed to persist mutation queue after remove", "error", err)
	}
}

func (q *Queue) persistLocked(ctx context.Context) error {
	encoded, err := json.Marshal(q.pending)
	if err != nil {
		return err
	}
	return q.store.Set(ctx, q.key, encoded)
}
