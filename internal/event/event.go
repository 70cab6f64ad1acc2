package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"`
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Session lifecycle events
const (
	SessionCreated   Type = "session.created"
	SessionDeleted   Type = "session.deleted"
	SessionExpired   Type = "session.expired"
	SessionBranched  Type = "session.branched"
	CommandsApplied  Type = "session.commands_applied"
	CommandsRejected Type = "session.commands_rejected"
	SessionUndone    Type = "session.undone"
	SnapshotSaved    Type = "snapshot.saved"
	SnapshotRestored Type = "snapshot.restored"
)

// AllSessionTypes lists every type published by the session service
func AllSessionTypes() []Type {
	return []Type{
		SessionCreated, SessionDeleted, SessionExpired, SessionBranched,
		CommandsApplied, CommandsRejected, SessionUndone,
		SnapshotSaved, SnapshotRestored,
	}
}

// SessionPayloadV1 is the payload of every session event
type SessionPayloadV1 struct {
	SessionID string `json:"session_id"`
	ParentID  string `json:"parent_id,omitempty"`
	Snapshot  string `json:"snapshot,omitempty"`
	Commands  int    `json:"commands,omitempty"`
	Slots     int    `json:"slots"`
	Timestamp int64  `json:"timestamp"`
}

// NewSessionEvent creates a session event stamped with the current time
func NewSessionEvent(t Type, payload SessionPayloadV1) Event {
	payload.Timestamp = time.Now().Unix()
	return Event{
		Version: EventSchemaVersion,
		Type:    t,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus.
// Handlers run synchronously on the publishing goroutine.
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
