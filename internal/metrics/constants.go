package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Pouch metric names
const (
	MetricNamePouchOperations = "pouch_operations_total"
	MetricNamePouchRejected   = "pouch_commands_rejected_total"
	MetricNameSlotsAdded      = "pouch_slots_added_total"
	MetricNameSlotsRemoved    = "pouch_slots_removed_total"
	MetricNameArrowsShot      = "pouch_arrows_shot_total"
	MetricNamePouchLength     = "pouch_length_slots"
)

// Session metric names
const (
	MetricNameSessionsActive  = "sessions_active"
	MetricNameSessionsCreated = "sessions_created_total"
	MetricNameUndoTotal       = "session_undo_total"
	MetricNameSnapshotsTotal  = "snapshots_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

const (
	HelpTextPouchOperations = "Total number of pouch commands applied, by operation"
	HelpTextPouchRejected   = "Total number of pouch commands rejected, by reason"
	HelpTextSlotsAdded      = "Total number of slots created by pouch commands"
	HelpTextSlotsRemoved    = "Total number of slots removed by pouch commands"
	HelpTextArrowsShot      = "Total number of arrows consumed by shoot_arrow"
	HelpTextPouchLength     = "Pouch length after each applied command"
)

const (
	HelpTextSessionsActive  = "Current number of live sessions"
	HelpTextSessionsCreated = "Total number of sessions created, by origin"
	HelpTextUndoTotal       = "Total number of undo operations"
	HelpTextSnapshotsTotal  = "Total number of snapshot saves and restores"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelOp     = "op"
	LabelReason = "reason"
	LabelOrigin = "origin"
	LabelAction = "action"
)

// Label values
const (
	OriginNew     = "new"
	OriginBranch  = "branch"
	OriginRestore = "restore"

	ActionSave    = "save"
	ActionRestore = "restore"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets ranges from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PouchLengthBuckets covers an empty pouch up to a heavily duplicated one
var PouchLengthBuckets = []float64{0, 5, 10, 20, 40, 60, 80, 100, 150, 200, 300, 420}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded"
	LogMsgMetricsRecorded         = "Metrics recorded for event"
)
