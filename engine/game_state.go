package engine

import (
	"github.com/lixenwraith/papercraft/core"
)

// GameState holds the process-wide cursors: session, mode, turn and selection.
// Transitions are pure functions returning the next state.
type GameState struct {
	Session  core.Session
	Mode     core.GameMode
	Turn     core.Faction
	Selected bool // Whether any entity is currently selected
	Round    int  // Completed turn cycles; increments on every wrap into Bug
}

// NewGameState returns the initial state: Menu, Select mode, Bug to move, round 1
func NewGameState() GameState {
	return GameState{
		Session: core.SessionMenu,
		Mode:    core.ModeSelect,
		Turn:    core.FactionBug,
		Round:   1,
	}
}

// ApplyKey returns the state after a key press.
// M/A/B need a selection; Escape always returns to Select; Space starts the game from the menu.
func ApplyKey(s GameState, key core.Key) GameState {
	if s.Session == core.SessionMenu {
		if key == core.KeySpace {
			s.Session = core.SessionPlaying
		}
		return s
	}

	switch key {
	case core.KeyMove:
		if s.Selected {
			s.Mode = core.ModeMove
		}
	case core.KeyAttack:
		if s.Selected {
			s.Mode = core.ModeAttack
		}
	case core.KeyBuild:
		if s.Selected {
			s.Mode = core.ModeBuild
		}
	case core.KeyEscape:
		s.Mode = core.ModeSelect
	}
	return s
}

// AdvanceTurn moves the turn cursor Bug -> Human -> Bionic -> Bug.
// wrapped is true on the Bionic -> Bug transition, which starts a new round.
func AdvanceTurn(s GameState) (next GameState, wrapped bool) {
	s.Turn = s.Turn.Next()
	if s.Turn == core.FactionBug {
		s.Round++
		return s, true
	}
	return s, false
}
