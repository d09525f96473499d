package systems

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

// Build spawns an interceptor at p from the selected unit's charges.
// Selection and mode are unchanged whether or not the spawn succeeds.
func (r *RulesEngine) Build(p core.Point) {
	sel, ok := r.selected()
	if !ok {
		r.reject(ActionBuild, ReasonNothingSelected, p)
		return
	}
	if sel.Unit.Faction != r.ctx.State.Turn {
		r.reject(ActionBuild, ReasonOutOfTurn, p)
		return
	}
	// Checked before the charge is spent so a blocked cell costs nothing
	if r.ctx.World.Positions.Occupied(p) {
		r.reject(ActionBuild, ReasonOccupied, p)
		return
	}

	var (
		pos     components.PositionComponent
		cell    components.CellComponent
		unit    components.UnitComponent
		spawned bool
		charges int
	)
	r.ctx.World.Units.Mutate(sel.ID, func(u *components.UnitComponent) {
		pos, cell, unit, spawned = u.SpawnInterceptor(p)
		charges = u.Interceptors.Current
	})
	if !spawned {
		r.reject(ActionBuild, ReasonNoCharges, p)
		return
	}

	e, err := r.ctx.World.Spawn(pos, cell, unit)
	if err != nil {
		r.ctx.Log.Error().Err(err).Msg("interceptor spawn failed")
		return
	}

	r.ctx.PushEvent(events.EventInterceptorSpawned, &events.SpawnPayload{
		Spawner:     sel.ID,
		Spawned:     e,
		Faction:     unit.Faction,
		At:          p,
		ChargesLeft: charges,
	})
	r.ctx.Log.Debug().
		Uint64("spawner", uint64(sel.ID)).
		Uint64("interceptor", uint64(e)).
		Int("charges_left", charges).
		Msg("interceptor spawned")
}
