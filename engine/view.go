package engine

import (
	"github.com/lixenwraith/papercraft/components"
	"github.com/lixenwraith/papercraft/core"
)

// EntityView is the render-facing projection of one entity
type EntityView struct {
	ID         core.Entity
	Position   core.Point
	Glyph      rune
	Color      core.RGB // Brightened when hovered
	Background core.RGB
	Selected   bool
	Hovered    bool
	Unit       components.UnitComponent
}

// View is the read-only per-frame state handed to the renderer
type View struct {
	Session        core.Session
	Mode           core.GameMode
	Turn           core.Faction
	Round          int
	Pointer        core.Point
	EndTurn        core.Area
	EndTurnHovered bool
	Entities       []EntityView
}

// BuildView projects the context for rendering. clear is the surface background color.
func (g *GameContext) BuildView(clear core.RGB) View {
	endTurn := g.EndTurnArea()
	v := View{
		Session:        g.State.Session,
		Mode:           g.State.Mode,
		Turn:           g.State.Turn,
		Round:          g.State.Round,
		Pointer:        g.Pointer,
		EndTurn:        endTurn,
		EndTurnHovered: endTurn.Contains(g.Pointer),
	}

	snaps := g.World.Entities()
	v.Entities = make([]EntityView, 0, len(snaps))
	for _, s := range snaps {
		pos := s.Position.Point()
		hovered := pos == g.Pointer
		color := s.Cell.Color
		if hovered {
			color = color.Brighten(g.Config.Rules.HoverBrighten)
		}
		v.Entities = append(v.Entities, EntityView{
			ID:         s.ID,
			Position:   pos,
			Glyph:      s.Cell.Glyph,
			Color:      color,
			Background: s.Cell.Background(clear),
			Selected:   s.Cell.Selected,
			Hovered:    hovered,
			Unit:       s.Unit,
		})
	}
	return v
}

// SelectedView returns the selected entity's view, if any
func (v View) SelectedView() (EntityView, bool) {
	for _, e := range v.Entities {
		if e.Selected {
			return e, true
		}
	}
	return EntityView{}, false
}
