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

// ProfileRepository provides access to the user profile singleton.
type ProfileRepository struct {
	store    adapter.KVStore
	queue    *syncqueue.Queue
	notifier adapter.Notifier
	key      string
}

// NewProfileRepository creates a new profile repository instance.
func NewProfileRepository(
	store adapter.KVStore,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
) *ProfileRepository {
	return &ProfileRepository{
		store:    store,
		queue:    queue,
		notifier: notifier,
		key:      keys.ForKind(entity.KindProfile),
	}
}

// Get returns the stored profile, or the default when none is stored. A
// stored profile that fails validation is replaced outright by the default,
// which is persisted back.
func (r *ProfileRepository) Get(ctx context.Context) (entity.UserProfile, error) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return entity.DefaultProfile(), err
	}
	if !ok {
		return entity.DefaultProfile(), nil
	}

	profile, valid := validation.Singleton(raw, entity.DefaultProfile())
	if !valid {
		if err := r.persist(ctx, profile); err != nil {
			slog.Warn("Failed to persist fallback profile", "error", err)
		}
		r.notifier.ProfileReset()
	}
	return profile, nil
}

// Save persists the profile and enqueues an update mutation.
func (r *ProfileRepository) Save(ctx context.Context, profile entity.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}
	if err := r.persist(ctx, profile); err != nil {
		return err
	}

	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.queue.Enqueue(ctx, entity.KindProfile, entity.MutationOpUpdate, payload)
}

func (r *ProfileRepository) persist(ctx context.Context, profile entity.UserProfile) error {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.key, encoded)
}
