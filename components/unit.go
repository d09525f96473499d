package components

import "github.com/lixenwraith/papercraft/core"

// Interceptor stats, fixed regardless of the spawner
const (
	InterceptorHP          = 1
	InterceptorMoves       = 2
	InterceptorAttacks     = 2
	InterceptorAttackRange = 1
	InterceptorLifespan    = 2
	InterceptorGlyph       = '^'
)

// InterceptorColor is the display color of spawned interceptors
var InterceptorColor = core.RGB{R: 0, G: 200, B: 0}

// UnitConfig is the full set of stats for constructing a unit.
// Zero values are meaningful; use DefaultUnitConfig for the baseline.
type UnitConfig struct {
	Faction            core.Faction
	HP                 int
	Moves              int
	MoveDistance       int
	Attacks            int
	AttackRange        int
	Damage             int
	InterceptorCharges int
	Lifespan           *int // nil for permanent units
}

// DefaultUnitConfig returns baseline stats: 1 hp, one move of distance 3, one attack of
// damage 1 at range 3, no interceptor charges, no lifespan
func DefaultUnitConfig(faction core.Faction) UnitConfig {
	return UnitConfig{
		Faction:      faction,
		HP:           1,
		Moves:        1,
		MoveDistance: 3,
		Attacks:      1,
		AttackRange:  3,
		Damage:       1,
	}
}

// UnitComponent is the combat record of an entity
type UnitComponent struct {
	Faction      core.Faction
	HP           int
	Moves        Budget
	Attacks      Budget
	Interceptors Budget
	MoveDistance int
	AttackRange  int
	Damage       int
	Lifespan     *int
}

// NewUnit builds a unit with all budgets full
func NewUnit(cfg UnitConfig) UnitComponent {
	u := UnitComponent{
		Faction:      cfg.Faction,
		HP:           cfg.HP,
		Moves:        Full(cfg.Moves),
		Attacks:      Full(cfg.Attacks),
		Interceptors: Full(cfg.InterceptorCharges),
		MoveDistance: cfg.MoveDistance,
		AttackRange:  cfg.AttackRange,
		Damage:       cfg.Damage,
	}
	if cfg.Lifespan != nil {
		ls := *cfg.Lifespan
		u.Lifespan = &ls
	}
	return u
}

// Recharge refills every budget and ages ephemeral units.
// A lifespan that reaches zero forces hp to zero; cleanup removes the unit.
func (u *UnitComponent) Recharge() {
	u.Moves.Refill()
	u.Attacks.Refill()
	u.Interceptors.Refill()

	if u.Lifespan != nil {
		ls := *u.Lifespan - 1
		u.Lifespan = &ls
		if ls <= 0 {
			u.HP = 0
		}
	}
}

// UseMove spends one move; false when none remain
func (u *UnitComponent) UseMove() bool {
	return u.Moves.Use()
}

// UseAttack spends one attack; false when none remain
func (u *UnitComponent) UseAttack() bool {
	return u.Attacks.Use()
}

// Harm subtracts amount from hp
func (u *UnitComponent) Harm(amount int) {
	u.HP -= amount
}

// CanMove reports whether a move is available this round
func (u UnitComponent) CanMove() bool {
	return u.Moves.Available()
}

// Alive reports hp > 0
func (u UnitComponent) Alive() bool {
	return u.HP > 0
}

// EffectiveDamage is the damage the unit can deal right now: Damage while an attack
// remains, otherwise 0
func (u UnitComponent) EffectiveDamage() int {
	if u.Attacks.Available() {
		return u.Damage
	}
	return 0
}

// SpawnInterceptor consumes one interceptor charge and returns a new short-lived unit
// at the given point. ok is false when no charge remains; the spawner is not moved.
func (u *UnitComponent) SpawnInterceptor(at core.Point) (PositionComponent, CellComponent, UnitComponent, bool) {
	if !u.Interceptors.Use() {
		return PositionComponent{}, CellComponent{}, UnitComponent{}, false
	}

	lifespan := InterceptorLifespan
	unit := NewUnit(UnitConfig{
		Faction:      u.Faction,
		HP:           InterceptorHP,
		Moves:        InterceptorMoves,
		MoveDistance: 3,
		Attacks:      InterceptorAttacks,
		AttackRange:  InterceptorAttackRange,
		Damage:       1,
		Lifespan:     &lifespan,
	})
	cell := CellComponent{Glyph: InterceptorGlyph, Color: InterceptorColor}

	return At(at), cell, unit, true
}
