package components

import "github.com/lixenwraith/papercraft/core"

// CellComponent is the display identity of an entity.
// Glyph and Color are fixed at creation; Selected is owned by the rules engine.
type CellComponent struct {
	Glyph    rune
	Color    core.RGB
	Selected bool
}

// Select marks the cell selected
func (c *CellComponent) Select() {
	c.Selected = true
}

// Deselect clears the selection flag
func (c *CellComponent) Deselect() {
	c.Selected = false
}

// Background returns white while selected, otherwise the surface clear color
func (c CellComponent) Background(clear core.RGB) core.RGB {
	if c.Selected {
		return core.RGBWhite
	}
	return clear
}
