package repository

import (
	"context"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/application/syncqueue"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// AssetRepository provides CRUD access to the portfolio asset collection.
type AssetRepository struct {
	c *collection[entity.Asset]
}

// NewAssetRepository creates a new asset repository instance.
func NewAssetRepository(
	store adapter.KVStore,
	queue *syncqueue.Queue,
	notifier adapter.Notifier,
	keys adapter.Keyspace,
) *AssetRepository {
	return &AssetRepository{
		c: newCollection(store, queue, notifier, keys, entity.KindAsset,
			func(a entity.Asset) string { return a.ID }),
	}
}

// GetAll returns every valid stored asset.
func (r *AssetRepository) GetAll(ctx context.Context) ([]entity.Asset, error) {
	return r.c.load(ctx)
}

// Add persists a new asset and enqueues a create mutation.
func (r *AssetRepository) Add(ctx context.Context, asset entity.Asset) error {
	return r.c.add(ctx, asset)
}

// Update replaces the asset with the given id. No-op if the id is not found.
func (r *AssetRepository) Update(ctx context.Context, id string, asset entity.Asset) error {
	return r.c.update(ctx, id, asset)
}

// Delete removes the asset with the given id. No-op if the id is not found.
func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(ctx, id)
}
