package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/papercraft/core"
)

// Palette
var (
	RgbBackground = core.RGB{R: 0, G: 0, B: 0}
	RgbText       = core.RGB{R: 255, G: 255, B: 255}
	RgbTitle      = core.RGB{R: 0, G: 200, B: 0}
	RgbPrompt     = core.RGB{R: 175, G: 175, B: 175}
	RgbCaret      = core.RGB{R: 255, G: 255, B: 0}
	RgbStatus     = core.RGB{R: 180, G: 180, B: 180}

	RgbEndTurn = core.RGB{R: 170, G: 10, B: 0}

	RgbBannerMove   = core.RGB{R: 0, G: 175, B: 0}
	RgbBannerAttack = core.RGB{R: 175, G: 0, B: 0}
	RgbBannerBuild  = core.RGB{R: 0, G: 80, B: 175}

	// Range outlines are the banner colors tinted into the background
	RgbRangeMove   = RgbBackground.Blend(RgbBannerMove, RangeTint)
	RgbRangeAttack = RgbBackground.Blend(RgbBannerAttack, RangeTint)
)

// RangeTint is the banner color weight of range outlines
const RangeTint = 0.7

// EndTurnHoverBrighten is the lightness boost of the end-turn box under the pointer
const EndTurnHoverBrighten = 0.15

// Color converts a core.RGB to a tcell color
func Color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Style builds a tcell style from foreground and background colors
func Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(Color(fg)).Background(Color(bg))
}

// bannerColor returns the mode banner color; Select has no banner
func bannerColor(mode core.GameMode) (core.RGB, bool) {
	switch mode {
	case core.ModeMove:
		return RgbBannerMove, true
	case core.ModeAttack:
		return RgbBannerAttack, true
	case core.ModeBuild:
		return RgbBannerBuild, true
	}
	return core.RGB{}, false
}
