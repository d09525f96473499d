package systems

import (
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
	"github.com/lixenwraith/papercraft/events"
)

// Action names carried by rejection events and metrics
const (
	ActionSelect = "select"
	ActionMove   = "move"
	ActionAttack = "attack"
	ActionBuild  = "build"
)

// Rejection reasons
const (
	ReasonNothingSelected = "nothing selected"
	ReasonOutOfTurn       = "out of turn"
	ReasonNoMoves         = "no moves left"
	ReasonNoAttacks       = "no attacks left"
	ReasonNoCharges       = "no interceptor charges"
	ReasonOutOfRange      = "out of range"
	ReasonOccupied        = "cell occupied"
	ReasonSameCell        = "already there"
	ReasonNoTarget        = "no enemy at target"
)

// RulesEngine owns the world for the duration of each interaction cycle.
// Every action is synchronous; illegal actions leave the world unchanged and
// emit EventActionRejected instead of returning an error.
type RulesEngine struct {
	ctx  *engine.GameContext
	cull *CullSystem
}

// NewRulesEngine creates a rules engine bound to the game context
func NewRulesEngine(ctx *engine.GameContext) *RulesEngine {
	return &RulesEngine{
		ctx:  ctx,
		cull: NewCullSystem(ctx),
	}
}

// Context returns the game context the engine mutates
func (r *RulesEngine) Context() *engine.GameContext {
	return r.ctx
}

// Cycle runs one interaction cycle: end-turn check and mode dispatch on a
// released click, then the key transition, then death cleanup.
// In the Menu session only the key transition runs.
func (r *RulesEngine) Cycle(in engine.Input) {
	r.ctx.Pointer = in.Pointer

	if r.ctx.State.Session != core.SessionPlaying {
		r.HandleKey(in.Key)
		return
	}

	if in.ClickReleased {
		if r.ctx.EndTurnArea().Contains(in.Pointer) {
			r.EndTurn()
		}
		r.Dispatch(in.Pointer)
	}

	r.HandleKey(in.Key)
	r.cull.Update()
}

// Dispatch routes a released click to the action of the current mode
func (r *RulesEngine) Dispatch(p core.Point) {
	switch r.ctx.State.Mode {
	case core.ModeSelect:
		r.Select(p)
	case core.ModeMove:
		r.Move(p)
	case core.ModeAttack:
		r.Attack(p)
	case core.ModeBuild:
		r.Build(p)
	}
}

// Cull runs death cleanup immediately and returns the removed entities
func (r *RulesEngine) Cull() []core.Entity {
	return r.cull.Update()
}

// selected returns the selected entity's snapshot
func (r *RulesEngine) selected() (engine.Snapshot, bool) {
	e, ok := r.ctx.World.Selected()
	if !ok {
		return engine.Snapshot{}, false
	}
	return r.ctx.World.Get(e)
}

// setMode changes the mode cursor and emits EventModeChanged when it differs
func (r *RulesEngine) setMode(mode core.GameMode) {
	from := r.ctx.State.Mode
	if from == mode {
		return
	}
	r.ctx.State.Mode = mode
	r.ctx.PushEvent(events.EventModeChanged, &events.ModePayload{From: from, To: mode})
	r.ctx.Log.Debug().Stringer("from", from).Stringer("to", mode).Msg("mode changed")
}

func (r *RulesEngine) reject(action, reason string, at core.Point) {
	r.ctx.PushEvent(events.EventActionRejected, &events.RejectedPayload{
		Action: action,
		Reason: reason,
		At:     at,
	})
	r.ctx.Log.Trace().
		Str("action", action).
		Str("reason", reason).
		Int("x", at.X).Int("y", at.Y).
		Msg("action rejected")
}
