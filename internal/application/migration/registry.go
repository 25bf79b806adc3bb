// Package migration brings the local store contents from their on-disk
// schema version up to the version the current code expects. Migrations are
// forward-only and run before any repository performs its first read.
package migration

import (
	"encoding/json"
	"sort"
)

// Snapshot holds raw store contents keyed by store key. Steps transform a
// snapshot and must never mutate their input.
type Snapshot map[string]json.RawMessage

// Clone returns a shallow copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Step transforms a snapshot from version N-1 to version N. Steps must be
// safe to run more than once on their own output: a step that converts a
// legacy value must check before converting.
type Step func(Snapshot) (Snapshot, error)

// Registry is an ordered mapping from target schema version to the step that
// produces it. The engine is generic over the registry and does not hardcode
// the step count.
type Registry struct {
	steps map[int]Step
}

// NewRegistry creates an empty migration registry.
func NewRegistry() *Registry {
	return &Registry{steps: map[int]Step{}}
}

// Register adds the step producing the given target version.
func (r *Registry) Register(version int, step Step) {
	r.steps[version] = step
}

// Step returns the step producing the given target version.
func (r *Registry) Step(version int) (Step, bool) {
	step, ok := r.steps[version]
	return step, ok
}

// CurrentVersion returns the highest registered target version, or 0 when the
// registry is empty.
func (r *Registry) CurrentVersion() int {
	if len(r.steps) == 0 {
		return 0
	}
	versions := make([]int, 0, len(r.steps))
	for v := range r.steps {
		versions = append(versions, v)
	}
	sort.Ints(versions)
	return versions[len(versions)-1]
}
