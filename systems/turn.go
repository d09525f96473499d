package systems

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
	"github.com/lixenwraith/papercraft/events"
)

// EndTurn advances the turn cursor. Wrapping from Bionic into Bug recharges
// every unit and starts a new round.
func (r *RulesEngine) EndTurn() {
	from := r.ctx.State.Turn
	next, wrapped := engine.AdvanceTurn(r.ctx.State)
	r.ctx.State = next

	if wrapped {
		r.ctx.World.EachUnit(func(_ core.Entity, u *components.UnitComponent) {
			u.Recharge()
		})
	}

	r.ctx.PushEvent(events.EventTurnAdvanced, &events.TurnPayload{
		From:      from,
		To:        next.Turn,
		Recharged: wrapped,
		Round:     next.Round,
	})
	r.ctx.Log.Info().
		Stringer("from", from).
		Stringer("to", next.Turn).
		Bool("recharged", wrapped).
		Int("round", next.Round).
		Msg("turn advanced")
}

// HandleKey applies a key press to the mode and session cursors
func (r *RulesEngine) HandleKey(key core.Key) {
	if key == core.KeyNone {
		return
	}

	prev := r.ctx.State
	next := engine.ApplyKey(prev, key)

	if prev.Session != next.Session {
		r.ctx.State.Session = next.Session
		r.ctx.PushEvent(events.EventSessionStarted, nil)
		r.ctx.Log.Info().Msg("session started")
	}
	r.setMode(next.Mode)
}
