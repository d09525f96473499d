package systems

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

// Select makes the entity at p the only selected entity.
// With no entity at p every cell is deselected.
func (r *RulesEngine) Select(p core.Point) {
	target, found := r.ctx.World.EntityAt(p)

	r.ctx.World.EachCell(func(e core.Entity, c *components.CellComponent) {
		if found && e == target {
			c.Select()
		} else {
			c.Deselect()
		}
	})
	r.ctx.State.Selected = found

	payload := &events.SelectionPayload{At: p, Selected: found}
	if found {
		payload.Entity = target
	}
	r.ctx.PushEvent(events.EventSelectionChanged, payload)

	r.ctx.Log.Debug().
		Bool("selected", found).
		Uint64("entity", uint64(payload.Entity)).
		Int("x", p.X).Int("y", p.Y).
		Msg("select")
}
