package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MutationOp represents the kind of pending mutation.
type MutationOp string

const (
	MutationOpCreate MutationOp = "create"
	MutationOpUpdate MutationOp = "update"
	MutationOpDelete MutationOp = "delete"
)

// PendingMutation is a local write awaiting application to the remote backend.
// It is owned by the mutation queue and removed only after a confirmed remote apply.
type PendingMutation struct {
	ID         string          `json:"id"`
	Kind       Kind            `json:"entityKind"`
	Op         MutationOp      `json:"operationKind"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueuedAt"`
}

// NewPendingMutation creates a pending mutation for the given entity kind and operation.
func NewPendingMutation(kind Kind, op MutationOp, payload json.RawMessage) PendingMutation {
	return PendingMutation{
		ID:         uuid.New().String(),
		Kind:       kind,
		Op:         op,
		Payload:    payload,
		EnqueuedAt: time.Now().UTC(),
	}
}

// EntityID extracts the id of the entity the mutation targets.
// Delete payloads carry only the id; create and update carry the full record.
func (m PendingMutation) EntityID() string {
	var ref struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(m.Payload, &ref); err != nil {
		return ""
	}
	return ref.ID
}
