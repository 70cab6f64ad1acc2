package handler

// Generic HTTP error messages for client responses.
// Server-side failures never expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s"

	// Domain error messages
	ErrMsgSessionNotFoundError   = "Session not found"
	ErrMsgSnapshotNotFoundError  = "Snapshot not found"
	ErrMsgNothingToUndoError     = "Nothing to undo"
	ErrMsgSnapshotsDisabledError = "Snapshots are disabled on this server"
	ErrMsgItemNotFoundError      = "Item not found"
	ErrMsgUnknownItemType        = "Unknown item type '%s'"
)

// Operation names used in logs
const (
	OpCreateSession  = "Create session"
	OpGetSession     = "Get session"
	OpDeleteSession  = "Delete session"
	OpApplyCommands  = "Apply commands"
	OpUndo           = "Undo"
	OpBranch         = "Branch session"
	OpDisplay        = "Display session"
	OpSaveSnapshot   = "Save snapshot"
	OpRestore        = "Restore snapshot"
	OpListSnapshots  = "List snapshots"
	OpDeleteSnapshot = "Delete snapshot"
	OpGetItem        = "Get item"
)

// Log messages
const (
	LogMsgEncodeFailed   = "Failed to encode JSON response"
	LogMsgWriteFailed    = "Failed to write response buffer"
	LogMsgReadinessCheck = "Readiness check failed"
)

// Success messages for API responses
const (
	MsgSessionDeleted  = "Session deleted"
	MsgSnapshotDeleted = "Snapshot deleted"
)

// Query parameters
const (
	QueryParamAnimated   = "animated"
	QueryParamBrokenFrom = "broken_from"
	QueryParamLimit      = "limit"
	QueryParamType       = "type"
)

// Path parameters
const (
	PathParamID   = "id"
	PathParamName = "name"
)
