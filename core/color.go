package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// ParseHex parses a "#rrggbb" color
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, err
	}
	return fromColorful(col), nil
}

// Brighten raises HSL lightness by amount (0..1), keeping hue and saturation.
// Pure function of the input color; used for hover feedback.
func (c RGB) Brighten(amount float64) RGB {
	if amount <= 0 {
		return c
	}
	h, s, l := c.colorful().Hsl()
	l = min(l+amount, 1)
	return fromColorful(colorful.Hsl(h, s, l).Clamped())
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(col colorful.Color) RGB {
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}
}
