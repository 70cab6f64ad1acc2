package session

// Snapshot names
const (
	MaxSnapshotNameLength = 64
	DefaultSnapshotLimit  = 50
)

// Error messages
const (
	ErrMsgBuildPouch      = "failed to build pouch: %w"
	ErrFmtSessionNotFound = "%w: %s"
	ErrFmtSnapshotName    = "%w: snapshot name must be 1-%d characters"
	ErrMsgSaveSnapshot    = "failed to save snapshot: %w"
	ErrMsgGetSnapshot     = "failed to get snapshot: %w"
	ErrMsgListSnapshots   = "failed to list snapshots: %w"
	ErrMsgDeleteSnapshot  = "failed to delete snapshot: %w"
	ErrMsgRestoreSnapshot = "failed to restore snapshot %q: %w"
)

// Log messages
const (
	LogMsgSessionCreated   = "Session created"
	LogMsgSessionDeleted   = "Session deleted"
	LogMsgSessionExpired   = "Session evicted"
	LogMsgSessionBranched  = "Session branched"
	LogMsgCommandsApplied  = "Commands applied"
	LogMsgCommandsRejected = "Command batch rejected, pouch restored"
	LogMsgSessionUndone    = "Session undone"
	LogMsgSnapshotSaved    = "Snapshot saved"
	LogMsgSnapshotRestored = "Snapshot restored"
	LogMsgPublishFailed    = "Failed to publish session event"
)
