package report

import (
	"fmt"

	"github.com/lixenwraith/papercraft/events"
)

// DefaultCapacity is the number of log lines kept
const DefaultCapacity = 64

// BattleLog keeps the most recent human-readable lines derived from game events
type BattleLog struct {
	lines    []string
	capacity int
}

// NewBattleLog creates a log holding at most capacity lines
func NewBattleLog(capacity int) *BattleLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &BattleLog{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
	}
}

// EventTypes returns the event types recorded in the log
func (b *BattleLog) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventUnitMoved,
		events.EventUnitAttacked,
		events.EventInterceptorSpawned,
		events.EventUnitDied,
		events.EventTurnAdvanced,
		events.EventSessionStarted,
	}
}

// HandleEvent appends the line describing ev
func (b *BattleLog) HandleEvent(ev events.GameEvent) {
	line, ok := Describe(ev)
	if !ok {
		return
	}
	if len(b.lines) == b.capacity {
		copy(b.lines, b.lines[1:])
		b.lines = b.lines[:len(b.lines)-1]
	}
	b.lines = append(b.lines, fmt.Sprintf("[R%d] %s", ev.Round, line))
}

// Lines returns a copy of the log, oldest first
func (b *BattleLog) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Describe renders one event as a log line
func Describe(ev events.GameEvent) (string, bool) {
	switch p := ev.Payload.(type) {
	case *events.MovePayload:
		return fmt.Sprintf("%s #%d moved (%d,%d) -> (%d,%d), %d moves left",
			p.Faction, p.Entity, p.From.X, p.From.Y, p.To.X, p.To.Y, p.MovesLeft), true
	case *events.AttackPayload:
		return fmt.Sprintf("%s #%d hit %s #%d for %d, hp now %d",
			p.AttackerFaction, p.Attacker, p.TargetFaction, p.Target, p.Damage, p.TargetHP), true
	case *events.SpawnPayload:
		return fmt.Sprintf("%s #%d launched interceptor #%d at (%d,%d), %d charges left",
			p.Faction, p.Spawner, p.Spawned, p.At.X, p.At.Y, p.ChargesLeft), true
	case *events.DeathPayload:
		return fmt.Sprintf("%s #%d '%c' destroyed at (%d,%d)",
			p.Faction, p.Entity, p.Glyph, p.At.X, p.At.Y), true
	case *events.TurnPayload:
		if p.Recharged {
			return fmt.Sprintf("turn %s -> %s, round %d begins, all units recharged", p.From, p.To, p.Round), true
		}
		return fmt.Sprintf("turn %s -> %s", p.From, p.To), true
	}
	if ev.Type == events.EventSessionStarted {
		return "battle started", true
	}
	return "", false
}
