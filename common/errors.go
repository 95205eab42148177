// Package common provides shared constants, types, and utilities
// used across the Network Profile Cleaner application.
package common

import "errors"

// Sentinel errors for registry and history operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Registry errors.
	ErrRegistryAccess      = errors.New("cannot access the registry")
	ErrElevationRequired   = errors.New("administrator rights required")
	ErrUnsupportedPlatform = errors.New("network profile registry is only available on Windows")

	// Selection errors.
	ErrNothingSelected = errors.New("no entries selected")
	ErrEntryNotFound   = errors.New("entry not found")
	ErrUnknownLocation = errors.New("unknown registry location")

	// History errors.
	ErrRecordNotFound  = errors.New("history record not found")
	ErrNotRestorable   = errors.New("history record has no value snapshot")
	ErrAlreadyRestored = errors.New("history record already restored")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
