package systems

import (
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
	"github.com/lixenwraith/papercraft/events"
)

// CullSystem removes entities whose hp dropped to zero or below
// It runs last in the cycle so every action has resolved before removal
type CullSystem struct {
	ctx *engine.GameContext
}

// NewCullSystem creates a new cull system
func NewCullSystem(ctx *engine.GameContext) *CullSystem {
	return &CullSystem{ctx: ctx}
}

// Update scans the whole world, then removes the dead in one batch.
// Returns the removed entities; a second call with no mutation in between removes nothing.
func (s *CullSystem) Update() []core.Entity {
	world := s.ctx.World

	var dead []core.Entity
	var selectedDied bool
	for _, snap := range world.Entities() {
		if snap.Unit.Alive() {
			continue
		}
		dead = append(dead, snap.ID)
		if snap.Cell.Selected {
			selectedDied = true
		}
		s.ctx.PushEvent(events.EventUnitDied, &events.DeathPayload{
			Entity:  snap.ID,
			Faction: snap.Unit.Faction,
			Glyph:   snap.Cell.Glyph,
			At:      snap.Position.Point(),
		})
		s.ctx.Log.Debug().
			Uint64("entity", uint64(snap.ID)).
			Stringer("faction", snap.Unit.Faction).
			Int("hp", snap.Unit.HP).
			Msg("unit died")
	}

	if len(dead) == 0 {
		return nil
	}
	world.RemoveBatch(dead)

	if selectedDied {
		s.ctx.State.Selected = false
		if s.ctx.State.Mode != core.ModeSelect {
			from := s.ctx.State.Mode
			s.ctx.State.Mode = core.ModeSelect
			s.ctx.PushEvent(events.EventModeChanged, &events.ModePayload{From: from, To: core.ModeSelect})
		}
	}
	return dead
}
