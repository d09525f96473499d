package systems

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

// Move relocates the selected unit to p when the unit owns the turn, has a
// move left, p is within its move distance and no entity stands on p.
// Its own cell counts as occupied.
// Exhausting the last move deselects the unit and reverts to Select.
func (r *RulesEngine) Move(p core.Point) {
	sel, ok := r.selected()
	if !ok {
		r.reject(ActionMove, ReasonNothingSelected, p)
		return
	}

	unit := sel.Unit
	from := sel.Position.Point()

	switch {
	case unit.Faction != r.ctx.State.Turn:
		r.reject(ActionMove, ReasonOutOfTurn, p)
		return
	case !unit.CanMove():
		r.reject(ActionMove, ReasonNoMoves, p)
		return
	case p == from:
		r.reject(ActionMove, ReasonSameCell, p)
		return
	case !core.Square(from, unit.MoveDistance).Contains(p):
		r.reject(ActionMove, ReasonOutOfRange, p)
		return
	}
	if r.ctx.World.Positions.Occupied(p) {
		r.reject(ActionMove, ReasonOccupied, p)
		return
	}

	if err := r.ctx.World.Positions.Move(sel.ID, components.At(p)); err != nil {
		// Unreachable after the occupancy check; keep the world unchanged
		r.ctx.Log.Error().Err(err).Uint64("entity", uint64(sel.ID)).Msg("move failed")
		return
	}

	var movesLeft int
	r.ctx.World.Units.Mutate(sel.ID, func(u *components.UnitComponent) {
		u.UseMove()
		movesLeft = u.Moves.Current
	})

	r.ctx.PushEvent(events.EventUnitMoved, &events.MovePayload{
		Entity:    sel.ID,
		Faction:   unit.Faction,
		From:      from,
		To:        p,
		MovesLeft: movesLeft,
	})
	r.ctx.Log.Debug().
		Uint64("entity", uint64(sel.ID)).
		Int("from_x", from.X).Int("from_y", from.Y).
		Int("to_x", p.X).Int("to_y", p.Y).
		Int("moves_left", movesLeft).
		Msg("unit moved")

	if movesLeft == 0 {
		r.ctx.World.Cells.Mutate(sel.ID, func(c *components.CellComponent) { c.Deselect() })
		r.ctx.State.Selected = false
		r.setMode(core.ModeSelect)
	}
}
