package adapter

import (
	"context"
	"encoding/json"

	"github.com/finance-tracker/client/internal/domain/entity"
)

// RemoteSnapshot is the authoritative remote state for the current user,
// fetched during the pull phase of a sync cycle.
type RemoteSnapshot struct {
	Collections map[entity.Kind][]json.RawMessage
	Profile     json.RawMessage
}

// RemoteGateway is the remote persistence backend, consumed per entity kind as
// upsert-by-id and delete-by-id operations scoped to the authenticated user.
// Network errors, constraint violations and auth failures all collapse to a
// returned error; the sync engine treats every failure as retryable.
type RemoteGateway interface {
	// Pull fetches the remote collections and profile for the current user.
	Pull(ctx context.Context) (*RemoteSnapshot, error)

	// Upsert creates or replaces the record embedded in payload by its id.
	Upsert(ctx context.Context, kind entity.Kind, payload json.RawMessage) error

	// Delete removes the record with the given id.
	Delete(ctx context.Context, kind entity.Kind, id string) error
}
