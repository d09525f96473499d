package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

func TestNewMetrics_GlobalNoop(t *testing.T) {
	m, err := NewMetrics()
	require.NoError(t, err)
	require.NotNil(t, m)
}

func TestMetrics_HandleEvent(t *testing.T) {
	m, err := NewMetricsWithMeter(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	r := events.NewRouter(events.NewEventQueue())
	r.Register(m)
	assert.Equal(t, 1, r.HandlerCount(events.EventActionRejected))

	assert.NotPanics(t, func() {
		m.HandleEvent(events.GameEvent{Type: events.EventUnitAttacked, Payload: &events.AttackPayload{Damage: 3}})
		m.HandleEvent(events.GameEvent{Type: events.EventUnitDied, Payload: &events.DeathPayload{Faction: core.FactionHuman}})
		m.HandleEvent(events.GameEvent{Type: events.EventTurnAdvanced, Payload: &events.TurnPayload{Recharged: true}})
		m.HandleEvent(events.GameEvent{Type: events.EventActionRejected, Payload: &events.RejectedPayload{Action: "move"}})
		m.HandleEvent(events.GameEvent{Type: events.EventSessionStarted})
	})
}

func TestActionFor(t *testing.T) {
	tests := map[events.EventType]string{
		events.EventSelectionChanged:   "select",
		events.EventUnitMoved:          "move",
		events.EventUnitAttacked:       "attack",
		events.EventInterceptorSpawned: "build",
		events.EventTurnAdvanced:       "end_turn",
	}
	for typ, want := range tests {
		got, ok := ActionFor(events.GameEvent{Type: typ})
		assert.True(t, ok, typ.String())
		assert.Equal(t, want, got)
	}

	_, ok := ActionFor(events.GameEvent{Type: events.EventUnitDied})
	assert.False(t, ok)
}
