package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/papercraft/core"
)

// drawText writes s starting at (x, y), advancing by display width
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		w := runewidth.RuneWidth(ch)
		if w < 1 {
			w = 1
		}
		x += w
	}
}

// centerX returns the column that centers s on a line of the given width
func centerX(width int, s string) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}

// drawCentered writes s centered on row y
func drawCentered(screen tcell.Screen, width, y int, s string, style tcell.Style) {
	drawText(screen, centerX(width, s), y, s, style)
}

// fillBox fills an area, borders inclusive
func fillBox(screen tcell.Screen, a core.Area, style tcell.Style) {
	for y := a.Y; y <= a.Y+a.Height; y++ {
		for x := a.X; x <= a.X+a.Width; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawHollowBox outlines an area with box-drawing runes, borders inclusive
func drawHollowBox(screen tcell.Screen, a core.Area, style tcell.Style) {
	if a.Width < 0 || a.Height < 0 {
		return
	}
	x0, y0 := a.X, a.Y
	x1, y1 := a.X+a.Width, a.Y+a.Height

	for x := x0 + 1; x < x1; x++ {
		screen.SetContent(x, y0, '─', nil, style)
		screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		screen.SetContent(x0, y, '│', nil, style)
		screen.SetContent(x1, y, '│', nil, style)
	}
	screen.SetContent(x0, y0, '┌', nil, style)
	screen.SetContent(x1, y0, '┐', nil, style)
	screen.SetContent(x0, y1, '└', nil, style)
	screen.SetContent(x1, y1, '┘', nil, style)
}
