// Package validation schema-validates records read from the local store
// against the current entity shapes. It runs on every read path, not just at
// boot: a record can be invalid even after migrations claim a version bump.
package validation

import (
	"encoding/json"
)

// Validatable is implemented by every entity the gate can check.
type Validatable interface {
	Validate() error
}

// Outcome partitions a raw collection into conforming records and a count of
// dropped ones. Invalid records are never kept and never partially repaired;
// callers are expected to persist Valid back to the store when InvalidCount
// is non-zero.
type Outcome[T Validatable] struct {
	Valid        []T
	InvalidCount int
}

// Collection checks each raw element independently against T's current shape.
// An element is invalid when it fails to decode or its Validate reports a
// missing or ill-typed required field or an unknown enum value.
func Collection[T Validatable](raw []json.RawMessage) Outcome[T] {
	outcome := Outcome[T]{Valid: make([]T, 0, len(raw))}

	for _, element := range raw {
		var record T
		if err := json.Unmarshal(element, &record); err != nil {
			outcome.InvalidCount++
			continue
		}
		if err := record.Validate(); err != nil {
			outcome.InvalidCount++
			continue
		}
		outcome.Valid = append(outcome.Valid, record)
	}
	return outcome
}

// Singleton checks a single stored value, returning the fallback when it
// fails decode or validation. Partial singleton corruption is
// indistinguishable from intentional absence, so the fallback replaces the
// stored value wholesale; the second return is false when that happened.
func Singleton[T Validatable](raw []byte, fallback T) (T, bool) {
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback, false
	}
	if err := value.Validate(); err != nil {
		return fallback, false
	}
	return value, true
}
