package pouch

const (
	// Unbounded stands for "no limit" wherever a limit or mCount is accepted;
	// the whole container is used instead.
	Unbounded = -1

	// NotFound is returned by ShootArrow when no equipped arrow can be resolved
	NotFound = -1
)

// Error format strings
const (
	ErrFmtRecordLookupFailed = "slot %d: %w"
)
