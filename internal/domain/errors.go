package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgNothingToUndo   = "nothing to undo"

	// Snapshot errors
	ErrMsgSnapshotNotFound  = "snapshot not found"
	ErrMsgSnapshotsDisabled = "snapshots are disabled"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrItemNotFound is returned by registry lookups for unregistered identifiers.
	// The pouch core never recovers from it.
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrNothingToUndo   = errors.New(ErrMsgNothingToUndo)

	// Snapshot errors
	ErrSnapshotNotFound  = errors.New(ErrMsgSnapshotNotFound)
	ErrSnapshotsDisabled = errors.New(ErrMsgSnapshotsDisabled)

	ErrDatabase = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
