package error

import "errors"

// Sync errors. Every remote failure is retryable from the engine's point of
// view; the taxonomy below only feeds logs and the sync status surface.
var (
	// ErrRemotePullFailed is returned when the remote snapshot could not be fetched.
	ErrRemotePullFailed = errors.New("remote pull failed")

	// ErrRemoteApplyFailed is returned when a pending mutation was rejected or unreachable.
	ErrRemoteApplyFailed = errors.New("remote apply failed")

	// ErrDrainInProgress is returned when a drain is requested while one is active.
	ErrDrainInProgress = errors.New("drain already in progress")
)

// SyncErrorCode defines error codes for sync errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	ErrCodeRemotePullFailed  SyncErrorCode = "SYN-010001"
	ErrCodeRemoteApplyFailed SyncErrorCode = "SYN-010002"
	ErrCodeRemoteBadStatus   SyncErrorCode = "SYN-010003"
)

// SyncError represents a sync error with code and message.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
