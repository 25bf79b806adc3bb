package error

import "errors"

// Local store errors.
var (
	// ErrStoreClosed is returned when the local store is used after Close.
	ErrStoreClosed = errors.New("local store is closed")

	// ErrMalformedStoredValue is returned when a known key holds unparseable JSON.
	// Callers recover by substituting the entity default; the value is never
	// propagated as a parse exception.
	ErrMalformedStoredValue = errors.New("malformed stored value")
)
