package adapter

import "github.com/finance-tracker/client/internal/domain/entity"

// Notifier surfaces non-blocking informational events to the user. The core
// only reports structured outcomes; how (or whether) they are shown is the
// implementation's decision.
type Notifier interface {
	// DroppedRecords reports that count invalid records of the given kind were
	// dropped on read. Implementations deduplicate per kind within a session.
	DroppedRecords(kind entity.Kind, count int)

	// ProfileReset reports that the stored profile failed validation and was
	// replaced by the default.
	ProfileReset()

	// SyncDegraded reports accumulated remote failures for the given kind.
	SyncDegraded(kind entity.Kind, failures int)
}
