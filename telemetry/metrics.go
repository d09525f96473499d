package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/papercraft/events"
)

// Metrics records game counters. Instruments come from the global OTel
// provider, which is a no-op unless the host installs an SDK.
type Metrics struct {
	actions  metric.Int64Counter
	rejected metric.Int64Counter
	damage   metric.Int64Counter
	deaths   metric.Int64Counter
	spawns   metric.Int64Counter
	turns    metric.Int64Counter
}

// NewMetrics creates the instruments on the global meter
func NewMetrics() (*Metrics, error) {
	return NewMetricsWithMeter(meter())
}

// NewMetricsWithMeter creates the instruments on m
func NewMetricsWithMeter(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	if mt.actions, err = m.Int64Counter(
		"papercraft.actions",
		metric.WithDescription("Resolved player actions"),
	); err != nil {
		return nil, fmt.Errorf("creating actions counter: %w", err)
	}
	if mt.rejected, err = m.Int64Counter(
		"papercraft.actions.rejected",
		metric.WithDescription("Actions ignored as illegal"),
	); err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}
	if mt.damage, err = m.Int64Counter(
		"papercraft.damage",
		metric.WithDescription("Total damage dealt"),
	); err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}
	if mt.deaths, err = m.Int64Counter(
		"papercraft.deaths",
		metric.WithDescription("Units removed by cleanup"),
	); err != nil {
		return nil, fmt.Errorf("creating deaths counter: %w", err)
	}
	if mt.spawns, err = m.Int64Counter(
		"papercraft.spawns",
		metric.WithDescription("Interceptors built"),
	); err != nil {
		return nil, fmt.Errorf("creating spawns counter: %w", err)
	}
	if mt.turns, err = m.Int64Counter(
		"papercraft.turns",
		metric.WithDescription("Turn advances"),
	); err != nil {
		return nil, fmt.Errorf("creating turns counter: %w", err)
	}

	return &mt, nil
}

// EventTypes returns the event types that feed a counter
func (m *Metrics) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventSelectionChanged,
		events.EventUnitMoved,
		events.EventUnitAttacked,
		events.EventInterceptorSpawned,
		events.EventUnitDied,
		events.EventTurnAdvanced,
		events.EventActionRejected,
	}
}

// HandleEvent increments the counters for ev
func (m *Metrics) HandleEvent(ev events.GameEvent) {
	ctx := context.Background()

	if action, ok := ActionFor(ev); ok {
		m.actions.Add(ctx, 1, metric.WithAttributes(attribute.String("action", action)))
	}

	switch p := ev.Payload.(type) {
	case *events.AttackPayload:
		m.damage.Add(ctx, int64(p.Damage), metric.WithAttributes(
			attribute.String("faction", p.AttackerFaction.String())))
	case *events.SpawnPayload:
		m.spawns.Add(ctx, 1, metric.WithAttributes(attribute.String("faction", p.Faction.String())))
	case *events.DeathPayload:
		m.deaths.Add(ctx, 1, metric.WithAttributes(attribute.String("faction", p.Faction.String())))
	case *events.TurnPayload:
		m.turns.Add(ctx, 1, metric.WithAttributes(
			attribute.String("to", p.To.String()),
			attribute.Bool("recharged", p.Recharged)))
	case *events.RejectedPayload:
		m.rejected.Add(ctx, 1, metric.WithAttributes(
			attribute.String("action", p.Action),
			attribute.String("reason", p.Reason)))
	}
}

// ActionFor names the player action an event resolves, if any
func ActionFor(ev events.GameEvent) (string, bool) {
	switch ev.Type {
	case events.EventSelectionChanged:
		return "select", true
	case events.EventUnitMoved:
		return "move", true
	case events.EventUnitAttacked:
		return "attack", true
	case events.EventInterceptorSpawned:
		return "build", true
	case events.EventTurnAdvanced:
		return "end_turn", true
	}
	return "", false
}
