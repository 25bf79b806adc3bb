package error

import "errors"

// Migration engine errors.
var (
	// ErrMigrationStepMissing is returned when no step is registered for a required version.
	ErrMigrationStepMissing = errors.New("migration step missing")

	// ErrMigrationStepFailed is returned when a registered step fails.
	// The stored version is not advanced and the full run is retried on next startup.
	ErrMigrationStepFailed = errors.New("migration step failed")
)

// MigrationErrorCode defines error codes for migration errors.
// Format: MIG-XXYYYY where XX is category and YYYY is specific error.
type MigrationErrorCode string

const (
	ErrCodeMigrationStepMissing MigrationErrorCode = "MIG-010001"
	ErrCodeMigrationStepFailed  MigrationErrorCode = "MIG-010002"
	ErrCodeMigrationVersionRead MigrationErrorCode = "MIG-010003"
)

// MigrationError represents a migration error with code and message.
type MigrationError struct {
	Code    MigrationErrorCode
	Version int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MigrationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MigrationError) Unwrap() error {
	return e.Err
}

// NewMigrationError creates a new MigrationError for the given target version.
func NewMigrationError(code MigrationErrorCode, version int, message string, err error) *MigrationError {
	return &MigrationError{
		Code:    code,
		Version: version,
		Message: message,
		Err:     err,
	}
}
