package theme

import (
	"fmt"

	"dp-effects/game/types"

	"github.com/lucasb-eyer/go-colorful"
)

// Name is a theme identifier as stored in the preference key
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"
)

// Parse accepts "dark" or "light"; anything else is rejected
func Parse(s string) (Name, bool) {
	switch Name(s) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	}
	return "", false
}

// Other returns the opposite theme
func (n Name) Other() Name {
	if n == Light {
		return Dark
	}
	return Light
}

// Token names a colour role
type Token string

const (
	Accent        Token = "accent"
	AccentHover   Token = "accent-hover"
	Snake         Token = "snake"
	TextPrimary   Token = "text-primary"
	TextSecondary Token = "text-secondary"
	TextTertiary  Token = "text-tertiary"
	Glow          Token = "glow"
	Divider       Token = "divider"
	Background    Token = "background"
)

// Tokens lists every colour role a palette defines
var Tokens = []Token{Accent, AccentHover, Snake, TextPrimary, TextSecondary, TextTertiary, Glow, Divider, Background}

// swatch is a hex colour plus opacity
type swatch struct {
	hex   string
	alpha float64
}

var swatches = map[Name]map[Token]swatch{
	Dark: {
		Accent:        {"#5B8DEF", 1},
		AccentHover:   {"#7DA5F3", 1},
		Snake:         {"#4ADE80", 1},
		TextPrimary:   {"#E8E9ED", 1},
		TextSecondary: {"#95A2B3", 1},
		TextTertiary:  {"#FFFFFF", 0.64},
		Glow:          {"#5B8DEF", 0.35},
		Divider:       {"#FFFFFF", 0.04},
		Background:    {"#08090A", 1},
	},
	Light: {
		Accent:        {"#3B6FD9", 1},
		AccentHover:   {"#2F5BB5", 1},
		Snake:         {"#22C55E", 1},
		TextPrimary:   {"#1A1D23", 1},
		TextSecondary: {"#4B5060", 1},
		TextTertiary:  {"#000000", 0.75},
		Glow:          {"#3B6FD9", 0.25},
		Divider:       {"#000000", 0.06},
		Background:    {"#F7F8F8", 1},
	},
}

// Palette resolves tokens to colours for one theme
type Palette struct {
	Name   Name
	colors map[Token]types.Color
}

// Color returns the colour for t, or opaque magenta for an unknown token so
// a typo shows up on screen.
func (p Palette) Color(t Token) types.Color {
	if c, ok := p.colors[t]; ok {
		return c
	}
	return types.Color{R: 0xFF, B: 0xFF, A: 0xFF}
}

// ParseHex converts "#RRGGBB" and an opacity into a Color
func ParseHex(hex string, alpha float64) (types.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return types.Color{}, fmt.Errorf("parse colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return types.Color{R: r, G: g, B: b, A: 255}.WithAlpha(alpha), nil
}

// Blend mixes fg over bg using fg's alpha, in linear RGB
func Blend(bg, fg types.Color) types.Color {
	a := float64(fg.A) / 255
	b := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	f := colorful.Color{R: float64(fg.R) / 255, G: float64(fg.G) / 255, B: float64(fg.B) / 255}
	r, g, bl := b.BlendLinearRgb(f, a).Clamped().RGB255()
	return types.Color{R: r, G: g, B: bl, A: 255}
}

var palettes = buildPalettes()

func buildPalettes() map[Name]Palette {
	out := make(map[Name]Palette, len(swatches))
	for name, set := range swatches {
		p := Palette{Name: name, colors: make(map[Token]types.Color, len(set))}
		for tok, sw := range set {
			c, err := ParseHex(sw.hex, sw.alpha)
			if err != nil {
				panic(err)
			}
			p.colors[tok] = c
		}
		out[name] = p
	}
	return out
}

// PaletteFor returns the palette of a theme, dark for unknown names
func PaletteFor(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Dark]
}
