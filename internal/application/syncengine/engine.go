// Package syncengine orchestrates pull-then-push reconciliation between the
// local store and the remote backend. It is the only component that talks to
// the remote backend on the write path.
package syncengine

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
	domainerror "github.com/finance-tracker/client/internal/domain/error"
)

// State names the phase a sync cycle is in.
type State string

const (
	StateIdle     State = "idle"
	StatePulling  State = "pulling"
	StateMerging  State = "merging"
	StateDraining State = "draining"
)

// degradedThreshold is the consecutive-failure count per entity kind at which
// a soft notification is raised.
const degradedThreshold = 3

// Status is a point-in-time view of the engine for the status surface.
type Status struct {
	State        State     `json:"state"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
	LastError    string    `json:"lastError,omitempty"`
	PendingCount int       `json:"pendingCount"`
}

// Engine runs sync cycles: Pull remote state, Merge it into the local store,
// Drain the mutation queue. Push and pull degrade independently; no failure
// in either blocks the UI from reading local data.
type Engine struct {
	store    adapter.KVStore
	remote   adapter.RemoteGateway
	queue    *syncqueue.Queue
	notifier adapter.Notifier
	keys     adapter.Keyspace
	interval time.Duration
	timeout  time.Duration

	mu        sync.Mutex
	state     State
	lastSync  time.Time
	lastError error
	failures  map[entity.Kind]int
}

// NewEngine creates a sync engine. interval is the background cadence for
// Start; timeout bounds each remote call.
func NewEngine(
	store adapter.KVStore,
	remote adapter.RemoteGateway,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
	interval time.Duration,
	timeout time.Duration,
) *Engine {
	return &Engine{
		store:    store,
		remote:   remote,
		queue:    queue,
		notifier: notifier,
		keys:     keys,
		interval: interval,
		timeout:  timeout,
		state:    StateIdle,
		failures: map[entity.Kind]int{},
	}
}

// SyncOnLoad runs one best-effort sync cycle. It never fails in a way that
// blocks local reads: a pull failure leaves the store stale but consistent
// and never blocks the draining phase; remote apply failures leave their
// mutations queued for the next cycle.
func (e *Engine) SyncOnLoad(ctx context.Context) {
	e.setState(StatePulling)

	pullCtx, cancel := context.WithTimeout(ctx, e.timeout)
	snapshot, err := e.remote.Pull(pullCtx)
	cancel()

	if err != nil {
		syncErr := domainerror.NewSyncError(
			domainerror.ErrCodeRemotePullFailed,
			"remote pull failed, keeping local state",
			err,
		)
		slog.Warn("Remote pull failed", "error", err)
		e.recordError(syncErr)
	} else {
		e.setState(StateMerging)
		if err := e.merge(ctx, snapshot); err != nil {
			slog.Warn("Merge failed", "error", err)
			e.recordError(err)
		}
	}

	e.setState(StateDraining)
	result := e.queue.Drain(ctx, e.applyMutation)
	if result.Skipped {
		slog.Debug("Drain skipped, another drain in progress")
	} else if result.Failed > 0 {
		slog.Info("Sync cycle left mutations queued",
			"succeeded", result.Succeeded,
			"failed", result.Failed,
		)
	}

	e.mu.Lock()
	e.state = StateIdle
	e.lastSync = time.Now().UTC()
	e.mu.Unlock()
}

// Start begins the recurring background sync cadence. It returns immediately;
// the loop stops when ctx is cancelled. Cycles started here and on-demand
// cycles may overlap; the queue's drain guard prevents duplicate applies.
func (e *Engine) Start(ctx context.Context) {
	if e.interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(e.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				e.SyncOnLoad(ctx)
			}
		}
	}()
}

// Queue is a pass-through to the mutation queue, scoped per entity kind.
func (e *Engine) Queue(ctx context.Context, kind entity.Kind, op entity.MutationOp, payload json.RawMessage) error {
	return e.queue.Enqueue(ctx, kind, op, payload)
}

// Status returns the engine's current status.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	status := Status{
		State:        e.state,
		LastSyncedAt: e.lastSync,
		PendingCount: e.queue.Len(),
	}
	if e.lastError != nil {
		status.LastError = e.lastError.Error()
	}
	return status
}

// merge unions the remote snapshot into the local store by id. Remote records
// absent locally are added; local records absent remotely are preserved, as
// they are either not-yet-pushed creations or remote deletions this client
// has not caught up to. Without tombstones those cases are indistinguishable;
// the merge favors not losing local data over strict remote authority.
func (e *Engine) merge(ctx context.Context, snapshot *adapter.RemoteSnapshot) error {
	for _, kind := range entity.CollectionKinds() {
		remoteRecords := snapshot.Collections[kind]
		if len(remoteRecords) == 0 {
			continue
		}
		if err := e.mergeCollection(ctx, kind, remoteRecords); err != nil {
			return err
		}
	}

	// The profile is taken from the remote only when nothing is stored
	// locally; a local profile always wins and pushes via its queued update.
	if len(snapshot.Profile) > 0 {
		key := e.keys.ForKind(entity.KindProfile)
		_, ok, err := e.store.Get(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			return e.store.Set(ctx, key, snapshot.Profile)
		}
	}
	return nil
}

func (e *Engine) mergeCollection(ctx context.Context, kind entity.Kind, remoteRecords []json.RawMessage) error {
	key := e.keys.ForKind(kind)

	var local []json.RawMessage
	raw, ok, err := e.store.Get(ctx, key)
	if err != nil {
		return err
	}
	if ok {
		if err := json.Unmarshal(raw, &local); err != nil {
			slog.Warn("Malformed local collection during merge, treating as empty",
				"kind", kind,
				"error", err,
			)
			local = nil
		}
	}

	seen := make(map[string]bool, len(local))
	for _, record := range local {
		if id := recordID(record); id != "" {
			seen[id] = true
		}
	}

	merged := local
	added := 0
	for _, record := range remoteRecords {
		id := recordID(record)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		merged = append(merged, record)
		added++
	}

	if added == 0 && ok {
		return nil
	}

	encoded, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	if err := e.store.Set(ctx, key, encoded); err != nil {
		return err
	}

	if added > 0 {
		slog.Debug("Merged remote records", "kind", kind, "added", added)
	}
	return nil
}

// applyMutation replays one pending mutation against the remote backend.
func (e *Engine) applyMutation(ctx context.Context, mutation entity.PendingMutation) error {
	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var err error
	switch mutation.Op {
	case entity.MutationOpDelete:
		id := mutation.EntityID()
		if id == "" {
			// A delete without an id can never succeed remotely; drop it
			// instead of blocking the queue forever.
			slog.Warn("Dropping delete mutation without entity id", "kind", mutation.Kind)
			return nil
		}
		err = e.remote.Delete(callCtx, mutation.Kind, id)
	default:
		err = e.remote.Upsert(callCtx, mutation.Kind, mutation.Payload)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err != nil {
		e.failures[mutation.Kind]++
		if e.failures[mutation.Kind] == degradedThreshold {
			e.notifier.SyncDegraded(mutation.Kind, e.failures[mutation.Kind])
		}
		return domainerror.NewSyncError(
			domainerror.ErrCodeRemoteApplyFailed,
			"remote apply failed",
			err,
		)
	}

	e.failures[mutation.Kind] = 0
	return nil
}

func (e *Engine) setState(state State) {
	e.mu.Lock()
	e.state = state
	e.mu.Unlock()
}

func (e *Engine) recordError(err error) {
	e.mu.Lock()
	e.lastError = err
	e.mu.Unlock()
}

// recordID extracts the id field from a raw stored record.
func recordID(record json.RawMessage) string {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(record, &ref); err != nil {
		return ""
	}
	return ref.ID
}
