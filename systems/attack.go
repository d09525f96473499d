package systems

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

// Attack harms the enemy at p with the selected unit's effective damage.
// Damage is zero, and nothing changes, unless p is within attack range and
// holds an entity of another faction. Turn ownership is checked only when
// rules.attackRequiresTurn is set.
func (r *RulesEngine) Attack(p core.Point) {
	sel, ok := r.selected()
	if !ok {
		r.reject(ActionAttack, ReasonNothingSelected, p)
		return
	}
	attacker := sel.Unit

	if r.ctx.Config.Rules.AttackRequiresTurn && attacker.Faction != r.ctx.State.Turn {
		r.reject(ActionAttack, ReasonOutOfTurn, p)
		return
	}

	if !core.Square(sel.Position.Point(), attacker.AttackRange).Contains(p) {
		r.reject(ActionAttack, ReasonOutOfRange, p)
		return
	}

	target, found := r.ctx.World.EntityAt(p)
	if !found {
		r.reject(ActionAttack, ReasonNoTarget, p)
		return
	}
	defender, ok := r.ctx.World.Units.Get(target)
	if !ok || defender.Faction == attacker.Faction {
		r.reject(ActionAttack, ReasonNoTarget, p)
		return
	}

	damage := attacker.EffectiveDamage()
	if damage <= 0 {
		r.reject(ActionAttack, ReasonNoAttacks, p)
		return
	}

	r.ctx.World.Units.Mutate(sel.ID, func(u *components.UnitComponent) { u.UseAttack() })

	var hp int
	r.ctx.World.Units.Mutate(target, func(u *components.UnitComponent) {
		u.Harm(damage)
		hp = u.HP
	})

	r.ctx.PushEvent(events.EventUnitAttacked, &events.AttackPayload{
		Attacker:        sel.ID,
		AttackerFaction: attacker.Faction,
		Target:          target,
		TargetFaction:   defender.Faction,
		At:              p,
		Damage:          damage,
		TargetHP:        hp,
	})
	r.ctx.Log.Debug().
		Uint64("attacker", uint64(sel.ID)).
		Uint64("target", uint64(target)).
		Int("damage", damage).
		Int("target_hp", hp).
		Msg("unit attacked")
}
