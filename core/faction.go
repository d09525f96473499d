package core

import "fmt"

// Faction determines turn ownership and friend/foe resolution
type Faction uint8

const (
	FactionBug Faction = iota
	FactionHuman
	FactionBionic
)

// FactionCount is the length of the turn cycle
const FactionCount = 3

// Next returns the faction whose turn follows f; Bionic wraps to Bug
func (f Faction) Next() Faction {
	return (f + 1) % FactionCount
}

func (f Faction) String() string {
	switch f {
	case FactionBug:
		return "Bug"
	case FactionHuman:
		return "Human"
	case FactionBionic:
		return "Bionic"
	}
	return fmt.Sprintf("Faction(%d)", uint8(f))
}

// ParseFaction resolves a faction name as written in config files
func ParseFaction(s string) (Faction, error) {
	switch s {
	case "Bug", "bug":
		return FactionBug, nil
	case "Human", "human":
		return FactionHuman, nil
	case "Bionic", "bionic":
		return FactionBionic, nil
	}
	return 0, fmt.Errorf("unknown faction %q", s)
}
