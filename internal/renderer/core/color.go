// Package core holds the cell, color and rectangle types shared by the
// chart renderer and the display backends.
package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit color, or the terminal's own color when Default is set.
type Color struct {
	R, G, B uint8
	Default bool
}

// ColorDefault leaves the terminal's color in place.
var ColorDefault = Color{Default: true}

// Palette entries used by the chart theme.
var (
	ColorBlack = Color{}
	ColorWhite = Color{R: 0xff, G: 0xff, B: 0xff}
	ColorGray  = Color{R: 0x80, G: 0x80, B: 0x80}
	ColorBlue  = Color{R: 0x1f, G: 0x77, B: 0xb4}
)

// ColorFromRGB returns the color (r, g, b).
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromHex parses "#rrggbb" or the short "#rgb" form.
func ColorFromHex(hex string) (Color, error) {
	if len(hex) == 4 && hex[0] == '#' {
		hex = string([]byte{'#', hex[1], hex[1], hex[2], hex[2], hex[3], hex[3]})
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color: %s", hex)
	}
	return fromColorful(c), nil
}

// IsDefault reports whether c is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// ToHex formats c as "#rrggbb", or "default".
func (c Color) ToHex() string {
	if c.Default {
		return "default"
	}
	return c.toColorful().Hex()
}

// Blend paints other over c at opacity alpha. When c is the default color
// the blend starts from base instead, since the terminal's color is unknown.
func (c Color) Blend(other Color, alpha float64, base Color) Color {
	switch {
	case alpha <= 0:
		return c
	case alpha >= 1:
		return other
	}
	if c.Default {
		c = base
	}
	return fromColorful(c.toColorful().BlendRgb(other.toColorful(), alpha).Clamped())
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}
