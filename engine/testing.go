package engine

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/papercraft/config"
	"github.com/lixenwraith/papercraft/core"
)

// NewTestGameContext creates a Playing context with an empty world and default
// rules, for tests that place their own units
func NewTestGameContext() *GameContext {
	cfg := &config.Config{
		Screen:    config.ScreenConfig{Width: 160, Height: 80},
		EndTurn:   config.AreaConfig{X: 150, Y: 0, Width: 10, Height: 2},
		Rules:     config.RulesConfig{HoverBrighten: 0.2},
		FrameRate: 30,
	}
	ctx := NewGameContext(cfg, zerolog.Nop())
	ctx.State.Session = core.SessionPlaying
	return ctx
}
