package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/papercraft/core"
	"github.com/lixenwraith/papercraft/engine"
)

// Menu layout rows
const (
	MenuTitleRow  = 37
	MenuPromptRow = 41

	MenuTitle  = "PaperCraft"
	MenuPrompt = "Press the spacebar to start"
)

// Playing layout
const (
	TurnRow      = 1
	EndTurnLabel = "End turn"
	CaretGlyph   = '^'
)

// BannerArea is where the mode banner is boxed
var BannerArea = core.Area{X: 1, Y: 0, Width: 12, Height: 2}

// TerminalRenderer draws engine views onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	width  int
	height int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen, width, height int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		width:  width,
		height: height,
	}
}

// RenderFrame renders the entire frame for the given view
func (r *TerminalRenderer) RenderFrame(v engine.View) {
	defaultStyle := Style(RgbText, RgbBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if v.Session == core.SessionMenu {
		r.drawMenu(defaultStyle)
		r.screen.Show()
		return
	}

	// Range outlines sit under the units
	r.drawRange(v)
	r.drawEntities(v)
	r.drawModeBanner(v.Mode)
	r.drawTurnBanner(v, defaultStyle)
	r.drawEndTurn(v)
	r.drawStatus(v, defaultStyle)
	r.drawCaret(v)

	r.screen.Show()
}

func (r *TerminalRenderer) drawMenu(defaultStyle tcell.Style) {
	drawCentered(r.screen, r.width, MenuTitleRow, MenuTitle, defaultStyle.Foreground(Color(RgbTitle)).Bold(true))
	drawCentered(r.screen, r.width, MenuPromptRow, MenuPrompt, defaultStyle.Foreground(Color(RgbPrompt)))
}

func (r *TerminalRenderer) drawEntities(v engine.View) {
	for _, e := range v.Entities {
		r.screen.SetContent(e.Position.X, e.Position.Y, e.Glyph, nil, Style(e.Color, e.Background))
	}
}

// drawRange outlines the selected unit's reach for the active mode
func (r *TerminalRenderer) drawRange(v engine.View) {
	sel, ok := v.SelectedView()
	if !ok {
		return
	}

	var (
		radius int
		color  core.RGB
	)
	switch v.Mode {
	case core.ModeMove:
		radius, color = sel.Unit.MoveDistance, RgbRangeMove
	case core.ModeAttack:
		radius, color = sel.Unit.AttackRange, RgbRangeAttack
	default:
		return
	}
	if radius <= 0 {
		return
	}
	drawHollowBox(r.screen, core.Square(sel.Position, radius), Style(color, RgbBackground))
}

func (r *TerminalRenderer) drawModeBanner(mode core.GameMode) {
	color, ok := bannerColor(mode)
	if !ok {
		return
	}
	style := Style(RgbText, color)
	fillBox(r.screen, BannerArea, style)

	label := mode.String()
	x := BannerArea.X + centerX(BannerArea.Width+1, label)
	drawText(r.screen, x, BannerArea.Y+1, label, style.Bold(true))
}

func (r *TerminalRenderer) drawTurnBanner(v engine.View, defaultStyle tcell.Style) {
	text := fmt.Sprintf("Turn: %s  Round %d", v.Turn, v.Round)
	drawCentered(r.screen, r.width, TurnRow, text, defaultStyle.Bold(true))
}

func (r *TerminalRenderer) drawEndTurn(v engine.View) {
	color := RgbEndTurn
	if v.EndTurnHovered {
		color = color.Brighten(EndTurnHoverBrighten)
	}
	style := Style(RgbText, color)
	fillBox(r.screen, v.EndTurn, style)
	drawText(r.screen, v.EndTurn.X+1, v.EndTurn.Y+1, EndTurnLabel, style)
}

// drawStatus prints the selected unit's budgets on the last row
func (r *TerminalRenderer) drawStatus(v engine.View, defaultStyle tcell.Style) {
	sel, ok := v.SelectedView()
	if !ok {
		return
	}
	u := sel.Unit
	text := fmt.Sprintf("%c %s  HP %d  Moves %d/%d  Attacks %d/%d  Interceptors %d/%d",
		sel.Glyph, u.Faction, u.HP,
		u.Moves.Current, u.Moves.Max,
		u.Attacks.Current, u.Attacks.Max,
		u.Interceptors.Current, u.Interceptors.Max)
	if u.Lifespan != nil {
		text += fmt.Sprintf("  Lifespan %d", *u.Lifespan)
	}
	drawText(r.screen, 1, r.height-1, text, defaultStyle.Foreground(Color(RgbStatus)))
}

// drawCaret marks the pointer cell, keeping whatever background is already there
func (r *TerminalRenderer) drawCaret(v engine.View) {
	p := v.Pointer
	if p.X < 0 || p.Y < 0 || p.X >= r.width || p.Y >= r.height {
		return
	}
	if _, ok := occupant(v, p); ok {
		return
	}
	_, _, style, _ := r.screen.GetContent(p.X, p.Y)
	r.screen.SetContent(p.X, p.Y, CaretGlyph, nil, style.Foreground(Color(RgbCaret)))
}

func occupant(v engine.View, p core.Point) (engine.EntityView, bool) {
	for _, e := range v.Entities {
		if e.Position == p {
			return e, true
		}
	}
	return engine.EntityView{}, false
}
