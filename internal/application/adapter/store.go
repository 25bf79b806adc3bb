// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// KVStore is the local durable key/value store holding serialized entity
// collections and the schema version marker. Values are UTF-8 JSON. It is the
// single shared mutable resource of the core; only entity repositories, the
// migration engine and the mutation queue write to it.
type KVStore interface {
	// Get retrieves the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every key currently present in the store.
	Keys(ctx context.Context) ([]string, error)
}
