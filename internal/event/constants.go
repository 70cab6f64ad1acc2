package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

const (
	ErrMsgEncodePayload = "failed to encode event payload: %w"
	ErrMsgDecodePayload = "failed to decode event payload: %w"
)
