package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Pouch Metrics
var (
	PouchOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePouchOperations,
			Help: HelpTextPouchOperations,
		},
		[]string{LabelOp},
	)

	PouchRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePouchRejected,
			Help: HelpTextPouchRejected,
		},
		[]string{LabelReason},
	)

	SlotsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsAdded,
			Help: HelpTextSlotsAdded,
		},
	)

	SlotsRemoved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlotsRemoved,
			Help: HelpTextSlotsRemoved,
		},
	)

	ArrowsShot = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameArrowsShot,
			Help: HelpTextArrowsShot,
		},
	)

	PouchLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNamePouchLength,
			Help:    HelpTextPouchLength,
			Buckets: PouchLengthBuckets,
		},
	)
)

// Session Metrics
var (
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSessionsActive,
			Help: HelpTextSessionsActive,
		},
	)

	SessionsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
		[]string{LabelOrigin},
	)

	UndoTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUndoTotal,
			Help: HelpTextUndoTotal,
		},
	)

	SnapshotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsTotal,
			Help: HelpTextSnapshotsTotal,
		},
		[]string{LabelAction},
	)
)
