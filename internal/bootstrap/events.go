package bootstrap

import (
	"fmt"

	"github.com/osse101/PouchSim_Go/internal/event"
	"github.com/osse101/PouchSim_Go/internal/logger"
	"github.com/osse101/PouchSim_Go/internal/metrics"
	"github.com/osse101/PouchSim_Go/internal/sse"
)

// EventSystem is the session event bus and its subscribers
type EventSystem struct {
	Bus event.Bus
	Hub *sse.Hub
}

// InitializeEventSystem creates the session event bus, subscribes the
// metrics collector and starts the SSE hub that streams events to clients
func InitializeEventSystem() (*EventSystem, error) {
	bus := event.NewMemoryBus()

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	logger.Info(LogMsgMetricsCollectorRegistered)

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	logger.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllSessionTypes()))
	return &EventSystem{Bus: bus, Hub: hub}, nil
}
