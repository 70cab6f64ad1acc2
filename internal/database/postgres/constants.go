package postgres

// Error messages
const (
	ErrMsgMarshalStacks   = "failed to marshal snapshot stacks: %w"
	ErrMsgUnmarshalStacks = "failed to unmarshal snapshot stacks: %w"
	ErrFmtSaveSnapshot    = "%w: failed to save snapshot %q: %v"
	ErrFmtGetSnapshot     = "%w: failed to get snapshot %q: %v"
	ErrFmtListSnapshots   = "%w: failed to list snapshots: %v"
	ErrFmtDeleteSnapshot  = "%w: failed to delete snapshot %q: %v"
	ErrFmtSnapshotMissing = "%w: %s"
)
