package events

import (
	"github.com/lixenwraith/papercraft/core"
)

// SelectionPayload reports the outcome of a Select dispatch
type SelectionPayload struct {
	Entity   core.Entity // 0 when nothing was selected
	At       core.Point
	Selected bool
}

// ModePayload reports a mode transition
type ModePayload struct {
	From core.GameMode
	To   core.GameMode
}

// MovePayload reports a completed move
type MovePayload struct {
	Entity    core.Entity
	Faction   core.Faction
	From      core.Point
	To        core.Point
	MovesLeft int
}

// AttackPayload reports damage dealt
type AttackPayload struct {
	Attacker        core.Entity
	AttackerFaction core.Faction
	Target          core.Entity
	TargetFaction   core.Faction
	At              core.Point
	Damage          int
	TargetHP        int
}

// SpawnPayload reports a new interceptor
type SpawnPayload struct {
	Spawner     core.Entity
	Spawned     core.Entity
	Faction     core.Faction
	At          core.Point
	ChargesLeft int
}

// DeathPayload reports an entity removed by cleanup
type DeathPayload struct {
	Entity  core.Entity
	Faction core.Faction
	Glyph   rune
	At      core.Point
}

// TurnPayload reports a turn cursor change
type TurnPayload struct {
	From      core.Faction
	To        core.Faction
	Recharged bool
	Round     int
}

// RejectedPayload explains why an action had no effect
type RejectedPayload struct {
	Action string
	Reason string
	At     core.Point
}
