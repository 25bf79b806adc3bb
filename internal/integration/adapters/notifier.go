package adapters

import (
	"log/slog"
	"sync"

	"github.com/finance-tracker/client/internal/application/adapter"
	"github.com/finance-tracker/client/internal/domain/entity"
)

// SlogNotifier surfaces core events through the structured log. Dropped-record
// warnings are deduplicated per entity kind for the lifetime of the notifier,
// which the injector constructs once per session; the session state is held
// here explicitly rather than in a package-level flag.
type SlogNotifier struct {
	mu       sync.Mutex
	reported map[entity.Kind]bool
}

// NewSlogNotifier creates a notifier with fresh session state.
func NewSlogNotifier() *SlogNotifier {
	return &SlogNotifier{reported: map[entity.Kind]bool{}}
}

// DroppedRecords warns once per session per entity kind about dropped records.
func (n *SlogNotifier) DroppedRecords(kind entity.Kind, count int) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.reported[kind] {
		return
	}
	n.reported[kind] = true

	slog.Warn("Dropped invalid records on read",
		"kind", kind,
		"count", count,
	)
}

// ProfileReset informs that the stored profile was replaced by the default.
func (n *SlogNotifier) ProfileReset() {
	slog.Warn("Stored profile failed validation, reset to default")
}

// SyncDegraded informs that remote failures are accumulating for a kind.
func (n *SlogNotifier) SyncDegraded(kind entity.Kind, failures int) {
	slog.Warn("Repeated remote sync failures",
		"kind", kind,
		"failures", failures,
	)
}

var _ adapter.Notifier = (*SlogNotifier)(nil)
