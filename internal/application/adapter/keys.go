package adapter

import "github.com/finance-tracker/client/internal/domain/entity"

// Keyspace derives the store keys for a given user identity. All stored and
// synced data is scoped per user; the key names themselves are stable across
// the application's lifetime.
type Keyspace struct {
	userID string
}

// NewKeyspace creates a keyspace scoped to the given user identity.
func NewKeyspace(userID string) Keyspace {
	return Keyspace{userID: userID}
}

// UserID returns the identity this keyspace is scoped to.
func (k Keyspace) UserID() string {
	return k.userID
}

// ForKind returns the store key holding the collection (or singleton) for kind.
func (k Keyspace) ForKind(kind entity.Kind) string {
	return "u:" + k.userID + ":" + string(kind)
}

// SchemaVersion returns the key holding the schema version marker.
func (k Keyspace) SchemaVersion() string {
	return "u:" + k.userID + ":schema_version"
}

// PendingMutations returns the key holding the durable mutation queue.
func (k Keyspace) PendingMutations() string {
	return "u:" + k.userID + ":pending_mutations"
}
