package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

func TestEndTurn_CycleRecharges(t *testing.T) {
	r, ctx := newTestRules(t)
	cfg := components.UnitConfig{
		Faction: core.FactionHuman, HP: 3, Moves: 2, Attacks: 2, InterceptorCharges: 2,
	}
	e := place(t, ctx, 0, 0, cfg)

	lifespan := 1
	ephemeral := place(t, ctx, 1, 0, components.UnitConfig{Faction: core.FactionBug, HP: 1, Lifespan: &lifespan})

	ctx.World.Units.Mutate(e, func(u *components.UnitComponent) {
		u.UseMove()
		u.UseAttack()
		u.UseAttack()
		u.Interceptors.Use()
	})

	r.EndTurn()
	r.EndTurn()
	// Not yet wrapped: budgets still spent
	assert.Equal(t, 1, unitOf(t, ctx, e).Moves.Current)
	assert.Equal(t, 1, unitOf(t, ctx, ephemeral).HP)
	assert.Equal(t, core.FactionBionic, ctx.State.Turn)

	r.EndTurn()
	assert.Equal(t, core.FactionBug, ctx.State.Turn)
	assert.Equal(t, 2, ctx.State.Round)

	u := unitOf(t, ctx, e)
	assert.Equal(t, u.Moves.Max, u.Moves.Current)
	assert.Equal(t, u.Attacks.Max, u.Attacks.Current)
	assert.Equal(t, u.Interceptors.Max, u.Interceptors.Current)

	assert.Equal(t, 0, unitOf(t, ctx, ephemeral).HP)
	assert.Equal(t, []core.Entity{ephemeral}, r.Cull())

	turns := drain(ctx, events.EventTurnAdvanced)
	require.Len(t, turns, 3)
	last := turns[2].Payload.(*events.TurnPayload)
	assert.True(t, last.Recharged)
	assert.Equal(t, core.FactionBionic, last.From)
	assert.Equal(t, core.FactionBug, last.To)
}

func TestHandleKey_ModeTransitions(t *testing.T) {
	r, ctx := newTestRules(t)
	place(t, ctx, 0, 0, components.DefaultUnitConfig(core.FactionBug))

	r.HandleKey(core.KeyAttack)
	assert.Equal(t, core.ModeSelect, ctx.State.Mode, "needs a selection")

	r.Select(core.Point{X: 0, Y: 0})
	r.HandleKey(core.KeyAttack)
	assert.Equal(t, core.ModeAttack, ctx.State.Mode)
	r.HandleKey(core.KeyBuild)
	assert.Equal(t, core.ModeBuild, ctx.State.Mode)
	r.HandleKey(core.KeyEscape)
	assert.Equal(t, core.ModeSelect, ctx.State.Mode)

	evs := drain(ctx, events.EventModeChanged)
	require.Len(t, evs, 3)
	assert.Equal(t, &events.ModePayload{From: core.ModeBuild, To: core.ModeSelect}, evs[2].Payload)
}
