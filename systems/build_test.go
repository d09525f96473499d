package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

func carrierConfig(charges int) components.UnitConfig {
	cfg := components.DefaultUnitConfig(core.FactionBug)
	cfg.InterceptorCharges = charges
	return cfg
}

func TestBuild_Spawn(t *testing.T) {
	r, ctx := newTestRules(t)
	spawner := place(t, ctx, 5, 5, carrierConfig(2))
	ctx.World.Units.Mutate(spawner, func(u *components.UnitComponent) { u.Interceptors.Current = 1 })

	r.Select(core.Point{X: 5, Y: 5})
	ctx.State.Mode = core.ModeBuild

	r.Build(core.Point{X: 6, Y: 5})
	require.Equal(t, 2, ctx.World.Count())
	assert.Equal(t, 0, unitOf(t, ctx, spawner).Interceptors.Current)

	spawned, ok := ctx.World.EntityAt(core.Point{X: 6, Y: 5})
	require.True(t, ok)
	snap, _ := ctx.World.Get(spawned)
	assert.Equal(t, rune(components.InterceptorGlyph), snap.Cell.Glyph)
	assert.Equal(t, core.FactionBug, snap.Unit.Faction)
	assert.Equal(t, 1, snap.Unit.HP)
	assert.Equal(t, 2, snap.Unit.Moves.Max)
	assert.Equal(t, 2, snap.Unit.Attacks.Max)
	assert.Equal(t, 1, snap.Unit.AttackRange)
	require.NotNil(t, snap.Unit.Lifespan)
	assert.Equal(t, 2, *snap.Unit.Lifespan)

	// Second build in the same round produces nothing
	r.Build(core.Point{X: 7, Y: 5})
	assert.Equal(t, 2, ctx.World.Count())

	// Selection and mode unchanged
	sel, ok := ctx.World.Selected()
	require.True(t, ok)
	assert.Equal(t, spawner, sel)
	assert.Equal(t, core.ModeBuild, ctx.State.Mode)

	evs := drain(ctx, events.EventInterceptorSpawned)
	require.Len(t, evs, 1)
	payload := evs[0].Payload.(*events.SpawnPayload)
	assert.Equal(t, spawned, payload.Spawned)
	assert.Equal(t, 0, payload.ChargesLeft)
}

func TestBuild_OccupiedKeepsCharge(t *testing.T) {
	r, ctx := newTestRules(t)
	spawner := place(t, ctx, 5, 5, carrierConfig(1))
	place(t, ctx, 6, 5, components.DefaultUnitConfig(core.FactionHuman))

	r.Select(core.Point{X: 5, Y: 5})
	r.Build(core.Point{X: 6, Y: 5})

	assert.Equal(t, 2, ctx.World.Count())
	assert.Equal(t, 1, unitOf(t, ctx, spawner).Interceptors.Current)
}

func TestBuild_OutOfTurn(t *testing.T) {
	r, ctx := newTestRules(t)
	spawner := place(t, ctx, 5, 5, carrierConfig(1))
	ctx.State.Turn = core.FactionBionic

	r.Select(core.Point{X: 5, Y: 5})
	r.Build(core.Point{X: 6, Y: 5})

	assert.Equal(t, 1, ctx.World.Count())
	assert.Equal(t, 1, unitOf(t, ctx, spawner).Interceptors.Current)
}
