package store

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of error that occurred during a
// roster operation.
type ErrorType int

const (
	// ErrTypeStorageUnavailable indicates an I/O-level failure: the
	// target directory is missing, or the roster file cannot be read or
	// written (permissions, disk errors). Not retried automatically.
	ErrTypeStorageUnavailable ErrorType = iota
	// ErrTypeCorruptData indicates the roster file exists and is
	// readable but its contents do not parse into the expected array of
	// records. Never auto-repaired; the existing file is left untouched.
	ErrTypeCorruptData
)

// String returns a human-readable name for the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrTypeStorageUnavailable:
		return "Storage Unavailable"
	case ErrTypeCorruptData:
		return "Corrupt Data"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(et))
	}
}

// StoreError represents a failed roster operation.
type StoreError struct {
	Type ErrorType // Category of error
	Op   string    // Operation that failed: "init", "list", "create", "delete"
	Path string    // Roster file path
	Err  error     // Underlying error, if any
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s %s: %v", e.Type, e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s %s", e.Type, e.Op, e.Path)
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// newStorageError creates a StoreError for an I/O-level failure.
func newStorageError(op, path string, err error) *StoreError {
	return &StoreError{
		Type: ErrTypeStorageUnavailable,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// newCorruptError creates a StoreError for unparseable roster contents.
func newCorruptError(op, path string, err error) *StoreError {
	return &StoreError{
		Type: ErrTypeCorruptData,
		Op:   op,
		Path: path,
		Err:  err,
	}
}

// IsStorageUnavailable reports whether err (or any error it wraps) is a
// storage-unavailable store error.
func IsStorageUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Type == ErrTypeStorageUnavailable
}

// IsCorruptData reports whether err (or any error it wraps) is a
// corrupt-data store error.
func IsCorruptData(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Type == ErrTypeCorruptData
}
