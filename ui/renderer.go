package ui

import (
	"fmt"
	"math"
	"time"

	"dp-effects/engine"
	"dp-effects/game"
	"dp-effects/game/entity"
	"dp-effects/game/types"
	"dp-effects/theme"
)

const (
	segmentRadius = 8   // Corner radius of a body segment
	bodyAlpha     = 0.7 // Body segments are dimmer than the head
	foodRatio     = 0.35
	scoreTop      = 32 // Score baseline from the top edge
	panelGap      = 16
)

// PaletteSource hands out the current colours. It is asked on every draw.
type PaletteSource interface {
	Palette() theme.Palette
}

// Renderer draws the simulations onto a Surface
type Renderer struct {
	colors PaletteSource
	motion *engine.MotionPreference
}

func NewRenderer(colors PaletteSource, motion *engine.MotionPreference) *Renderer {
	return &Renderer{colors: colors, motion: motion}
}

func (r *Renderer) Palette() theme.Palette {
	return r.colors.Palette()
}

// DrawSnake paints the whole overlay. opacity fades everything for the
// open/close transition.
func (r *Renderer) DrawSnake(s Surface, g *game.GridSimulation, now time.Time, opacity float64) {
	if opacity <= 0 {
		return
	}
	p := r.colors.Palette()
	w, h := s.Size()

	s.FillRect(0, 0, float64(w), float64(h), p.Color(theme.Background).WithAlpha(opacity))

	if g.State() == types.NotStarted {
		return
	}

	r.drawGrid(s, g, p, opacity)

	body := g.Body()
	for i, cell := range body {
		r.drawSegment(s, g, cell, i == len(body)-1, p, opacity)
	}
	if food, ok := g.Food(); ok {
		r.drawFood(s, g, food, now, p, opacity)
	}
	r.drawScore(s, g, p, opacity)

	if g.State() == types.GameOver {
		r.drawGameOver(s, g, p, opacity)
	}
}

func (r *Renderer) drawGrid(s Surface, g *game.GridSimulation, p theme.Palette, opacity float64) {
	c := p.Color(theme.Divider).WithAlpha(opacity)
	cell := float64(g.CellSize())
	right := g.OffsetX + float64(g.Grid.Width)*cell
	bottom := g.OffsetY + float64(g.Grid.Height)*cell

	for x := 0; x <= g.Grid.Width; x++ {
		sx := g.OffsetX + float64(x)*cell
		s.Line(sx, g.OffsetY, sx, bottom, c)
	}
	for y := 0; y <= g.Grid.Height; y++ {
		sy := g.OffsetY + float64(y)*cell
		s.Line(g.OffsetX, sy, right, sy, c)
	}
}

func (r *Renderer) drawSegment(s Surface, g *game.GridSimulation, cell types.Point, isHead bool, p theme.Palette, opacity float64) {
	px, py := g.CellOrigin(cell)
	size := float64(g.CellSize() - 2)
	alpha := bodyAlpha
	if isHead {
		alpha = 1
	}
	s.FillRoundRect(px+1, py+1, size, size, segmentRadius, p.Color(theme.Snake).WithAlpha(alpha*opacity))
}

func (r *Renderer) drawFood(s Surface, g *game.GridSimulation, food types.Point, now time.Time, p theme.Palette, opacity float64) {
	px, py := g.CellOrigin(food)
	cell := float64(g.CellSize())
	cx, cy := px+cell/2, py+cell/2
	radius := cell * foodRatio
	c := p.Color(theme.TextPrimary)

	if !r.motion.Reduced() {
		// Pulsing glow: a few fading rings around the dot
		pulse := 4 + 3*math.Sin(float64(now.UnixMilli())/300)
		for i := 3; i >= 1; i-- {
			ring := radius + pulse*float64(i)/3
			s.FillCircle(cx, cy, ring, c.WithAlpha(0.12*opacity))
		}
	}
	s.FillCircle(cx, cy, radius, c.WithAlpha(opacity))
}

func (r *Renderer) drawScore(s Surface, g *game.GridSimulation, p theme.Palette, opacity float64) {
	w, _ := s.Size()
	s.Text(fmt.Sprintf("Score: %d", g.Score()), float64(w)/2, scoreTop, 14, AlignCenter,
		p.Color(theme.TextSecondary).WithAlpha(opacity))
}

func (r *Renderer) drawGameOver(s Surface, g *game.GridSimulation, p theme.Palette, opacity float64) {
	w, h := s.Size()
	cx, cy := float64(w)/2, float64(h)/2

	s.Text("Game Over", cx, cy-panelGap-12, 24, AlignCenter, p.Color(theme.TextPrimary).WithAlpha(opacity))
	s.Text(fmt.Sprintf("Score: %d", g.Score()), cx, cy, 16, AlignCenter, p.Color(theme.TextSecondary).WithAlpha(opacity))
	s.Text("Space to restart", cx, cy+8+panelGap+7, 14, AlignCenter, p.Color(theme.TextTertiary).WithAlpha(opacity))
}

// AvatarView is what the avatar looks like on one frame
type AvatarView struct {
	CX, CY  float64
	Radius  float64
	Angle   float64 // Degrees, clockwise
	Swapped bool
	Hover   bool
}

// DrawAvatar paints the avatar disc with a marker that shows its rotation
func (r *Renderer) DrawAvatar(s Surface, v AvatarView) {
	p := r.colors.Palette()
	face := p.Color(theme.Accent)
	if v.Swapped {
		face = p.Color(theme.Snake)
	}
	ring := p.Color(theme.Divider)
	if v.Hover {
		ring = p.Color(theme.AccentHover)
	}
	s.FillCircle(v.CX, v.CY, v.Radius+3, ring)
	s.FillCircle(v.CX, v.CY, v.Radius, face)

	rad := v.Angle * math.Pi / 180
	mx := v.CX + math.Sin(rad)*v.Radius*0.65
	my := v.CY - math.Cos(rad)*v.Radius*0.65
	s.FillCircle(mx, my, v.Radius*0.18, p.Color(theme.TextPrimary))
}

// DrawBurst paints every living particle, fading with its life
func (r *Renderer) DrawBurst(s Surface, b *entity.Burst) {
	if b == nil {
		return
	}
	for i := range b.Particles {
		pt := &b.Particles[i]
		if !pt.Alive() {
			continue
		}
		s.FillCircle(pt.X, pt.Y, pt.Size, pt.Color.WithAlpha(pt.Opacity()))
	}
}

// DrawGlow paints the soft orb that follows the pointer
func (r *Renderer) DrawGlow(s Surface, x, y, radius float64) {
	c := r.colors.Palette().Color(theme.Glow)
	for i := 4; i >= 1; i-- {
		s.FillCircle(x, y, radius*float64(i)/4, c.WithAlpha(0.25))
	}
}
