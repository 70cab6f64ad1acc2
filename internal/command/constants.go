package command

// Error messages
const (
	ErrMsgUnknownOp       = "unknown op %q"
	ErrMsgItemRequired    = "op %q requires an item"
	ErrMsgSlotRange       = "op %q: slot must be >= -1, got %d"
	ErrMsgPouchFull       = "op %q would grow the pouch to %d slots (max %d)"
	ErrFmtCommandAt       = "command %d (%s): %w"
	ErrMsgReadScenario    = "failed to read scenario file: %w"
	ErrMsgScenarioSchema  = "scenario %s: %w"
	ErrMsgParseScenario   = "failed to parse scenario: %w"
	ErrMsgScenarioInitial = "scenario initial pouch: %w"
)

// Log messages
const (
	LogMsgCommandApplied  = "Pouch command applied"
	LogMsgCommandRejected = "Pouch command rejected"
)

// Rejection reasons used as metric labels
const (
	ReasonInvalid     = "invalid"
	ReasonUnknownItem = "unknown_item"
	ReasonPouchFull   = "pouch_full"
)

// MaxPouchSlots caps how many slots commands may grow a pouch to. It matches
// the largest initial pouch the API accepts.
const MaxPouchSlots = 1000
