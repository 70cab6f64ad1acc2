package sse

import (
	"context"

	"github.com/osse101/PouchSim_Go/internal/event"
	"github.com/osse101/PouchSim_Go/internal/logger"
)

// Subscriber bridges the session event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{hub: hub, bus: bus}
}

// Subscribe forwards every session event type
func (s *Subscriber) Subscribe() {
	types := event.AllSessionTypes()
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
	}
	logger.Info(LogMsgSubscribed, "types", len(types))
}

func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SessionPayloadV1](evt.Payload)
	if err != nil {
		// not worth failing the publisher over
		logger.FromContext(ctx).Warn(LogMsgBadPayload, "type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), payload.SessionID, payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast,
		"type", evt.Type,
		logger.AttrKeySessionID, payload.SessionID,
		"clients", s.hub.ClientCount())
	return nil
}
