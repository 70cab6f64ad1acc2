package metrics

import (
	"context"

	"github.com/osse101/PouchSim_Go/internal/event"
	"github.com/osse101/PouchSim_Go/internal/logger"
)

// EventMetricsCollector subscribes to session events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every session event type
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, t := range event.AllSessionTypes() {
		bus.Subscribe(t, e.HandleEvent)
	}
	return nil
}

// HandleEvent updates metrics for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if _, err := event.DecodePayload[event.SessionPayloadV1](evt.Payload); err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}

	switch evt.Type {
	case event.SessionCreated:
		SessionsActive.Inc()
		SessionsCreated.WithLabelValues(OriginNew).Inc()
	case event.SessionBranched:
		SessionsActive.Inc()
		SessionsCreated.WithLabelValues(OriginBranch).Inc()
	case event.SnapshotRestored:
		SessionsActive.Inc()
		SessionsCreated.WithLabelValues(OriginRestore).Inc()
		SnapshotsTotal.WithLabelValues(ActionRestore).Inc()
	case event.SessionDeleted, event.SessionExpired:
		SessionsActive.Dec()
	case event.SessionUndone:
		UndoTotal.Inc()
	case event.SnapshotSaved:
		SnapshotsTotal.WithLabelValues(ActionSave).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
