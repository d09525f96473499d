package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/papercraft/config"
	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/events"
)

// Input is one cycle's normalized input from the interaction boundary
type Input struct {
	Pointer       core.Point
	ClickReleased bool
	Key           core.Key
}

// GameContext holds all game state including the ECS world.
// Owned by the game loop; never shared across goroutines.
type GameContext struct {
	World  *World
	State  GameState
	Config *config.Config
	Events *events.EventQueue
	Log    zerolog.Logger

	// Pointer is the last pointer position seen, kept for hover rendering
	Pointer core.Point
}

// NewGameContext creates a context with an empty world
func NewGameContext(cfg *config.Config, log zerolog.Logger) *GameContext {
	return &GameContext{
		World:  NewWorld(),
		State:  NewGameState(),
		Config: cfg,
		Events: events.NewEventQueue(),
		Log:    log,
	}
}

// Populate inserts the configured roster into the world
func (g *GameContext) Populate() error {
	for i, entry := range g.Config.Roster {
		pos, cell, unit, err := entry.Unit()
		if err != nil {
			return fmt.Errorf("roster[%d]: %w", i, err)
		}
		e, err := g.World.Spawn(pos, cell, unit)
		if err != nil {
			return fmt.Errorf("roster[%d]: %w", i, err)
		}
		g.Log.Debug().
			Uint64("entity", uint64(e)).
			Str("archetype", entry.Archetype).
			Stringer("faction", unit.Faction).
			Int("x", pos.X).Int("y", pos.Y).
			Msg("unit placed")
	}
	return nil
}

// PushEvent emits a game event stamped with the current round
func (g *GameContext) PushEvent(eventType events.EventType, payload any) {
	g.Events.Push(events.GameEvent{
		Type:    eventType,
		Payload: payload,
		Round:   g.State.Round,
	})
}

// EndTurnArea returns the screen region that advances the turn when clicked
func (g *GameContext) EndTurnArea() core.Area {
	return g.Config.EndTurn.Area()
}
