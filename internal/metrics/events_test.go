package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PouchSim_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	require.NoError(t, NewEventMetricsCollector().Register(bus))
	ctx := context.Background()

	activeBefore := testutil.ToFloat64(SessionsActive)
	branchedBefore := testutil.ToFloat64(SessionsCreated.WithLabelValues(OriginBranch))
	undoBefore := testutil.ToFloat64(UndoTotal)

	publish := func(typ event.Type) {
		require.NoError(t, bus.Publish(ctx, event.NewSessionEvent(typ, event.SessionPayloadV1{SessionID: "s"})))
	}
	publish(event.SessionCreated)
	publish(event.SessionBranched)
	publish(event.SessionDeleted)
	publish(event.SessionUndone)

	assert.Equal(t, activeBefore+1, testutil.ToFloat64(SessionsActive))
	assert.Equal(t, branchedBefore+1, testutil.ToFloat64(SessionsCreated.WithLabelValues(OriginBranch)))
	assert.Equal(t, undoBefore+1, testutil.ToFloat64(UndoTotal))
}

func TestEventMetricsCollector_BadPayload(t *testing.T) {
	collector := NewEventMetricsCollector()
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.SessionCreated)))
	activeBefore := testutil.ToFloat64(SessionsActive)

	err := collector.HandleEvent(context.Background(), event.Event{Type: event.SessionCreated, Payload: func() {}})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.SessionCreated))))
	assert.Equal(t, activeBefore, testutil.ToFloat64(SessionsActive))
}
