package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
	"github.com/lixenwraith/papercraft/events"
)

func newTestRules(t *testing.T) (*RulesEngine, *engine.GameContext) {
	t.Helper()
	ctx := engine.NewTestGameContext()
	return NewRulesEngine(ctx), ctx
}

func place(t *testing.T, ctx *engine.GameContext, x, y int, cfg components.UnitConfig) core.Entity {
	t.Helper()
	e, err := ctx.World.Spawn(
		components.PositionComponent{X: x, Y: y},
		components.CellComponent{Glyph: 'x'},
		components.NewUnit(cfg),
	)
	require.NoError(t, err)
	return e
}

func unitOf(t *testing.T, ctx *engine.GameContext, e core.Entity) components.UnitComponent {
	t.Helper()
	u, ok := ctx.World.Units.Get(e)
	require.True(t, ok, "entity %d has no unit", e)
	return u
}

func posOf(t *testing.T, ctx *engine.GameContext, e core.Entity) core.Point {
	t.Helper()
	p, ok := ctx.World.Positions.Get(e)
	require.True(t, ok, "entity %d has no position", e)
	return p.Point()
}

func selectedCount(ctx *engine.GameContext) int {
	n := 0
	for _, snap := range ctx.World.Entities() {
		if snap.Cell.Selected {
			n++
		}
	}
	return n
}

func drain(ctx *engine.GameContext, t events.EventType) []events.GameEvent {
	var out []events.GameEvent
	for _, ev := range ctx.Events.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func click(p core.Point) engine.Input {
	return engine.Input{Pointer: p, ClickReleased: true}
}

func press(key core.Key) engine.Input {
	return engine.Input{Key: key}
}
