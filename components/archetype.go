package components

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/papercraft/core"
)

// Archetype is a named unit template: display identity plus stats
type Archetype struct {
	Name  string
	Glyph rune
	Color core.RGB
	Unit  UnitConfig
}

var (
	colorBug    = core.RGB{R: 170, G: 20, B: 0}
	colorHuman  = core.RGB{R: 175, G: 175, B: 175}
	colorBionic = core.RGB{R: 0, G: 255, B: 0}
)

var archetypes = map[string]Archetype{
	"spider": {
		Name: "spider", Glyph: '*', Color: colorBug,
		Unit: with(DefaultUnitConfig(core.FactionBug), func(c *UnitConfig) {
			c.AttackRange = 1
		}),
	},
	"queen": {
		Name: "queen", Glyph: 'Q', Color: colorBug,
		Unit: with(DefaultUnitConfig(core.FactionBug), func(c *UnitConfig) {
			c.HP = 2
			c.MoveDistance = 1
		}),
	},
	"soldier": {
		Name: "soldier", Glyph: '@', Color: colorHuman,
		Unit: with(DefaultUnitConfig(core.FactionHuman), func(c *UnitConfig) {
			c.MoveDistance = 1
		}),
	},
	"reaper": {
		Name: "reaper", Glyph: 'V', Color: colorBionic,
		Unit: with(DefaultUnitConfig(core.FactionBionic), func(c *UnitConfig) {
			c.HP = 2
			c.Moves = 2
			c.Attacks = 2
			c.AttackRange = 1
		}),
	},
	"sentinel": {
		Name: "sentinel", Glyph: 'Y', Color: colorBionic,
		Unit: with(DefaultUnitConfig(core.FactionBionic), func(c *UnitConfig) {
			c.HP = 3
			c.Attacks = 2
		}),
	},
	"carrier": {
		Name: "carrier", Glyph: 'W', Color: colorBionic,
		Unit: UnitConfig{
			Faction:            core.FactionBionic,
			HP:                 6,
			Moves:              1,
			MoveDistance:       1,
			Damage:             1,
			InterceptorCharges: 2,
		},
	},
}

func with(cfg UnitConfig, fn func(*UnitConfig)) UnitConfig {
	fn(&cfg)
	return cfg
}

// LookupArchetype returns the named template
func LookupArchetype(name string) (Archetype, error) {
	a, ok := archetypes[name]
	if !ok {
		return Archetype{}, fmt.Errorf("unknown archetype %q", name)
	}
	return a, nil
}

// ArchetypeNames lists the catalog in sorted order
func ArchetypeNames() []string {
	names := make([]string, 0, len(archetypes))
	for name := range archetypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
