package ui

import (
	"dp-effects/game/types"
)

// Align positions text horizontally around its x coordinate
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Surface is a 2D drawing target measured in pixels. Text y is the vertical
// centre of the line.
type Surface interface {
	Size() (width, height int)
	Clear(c types.Color)
	FillRect(x, y, w, h float64, c types.Color)
	FillRoundRect(x, y, w, h, radius float64, c types.Color)
	FillCircle(cx, cy, r float64, c types.Color)
	Line(x1, y1, x2, y2 float64, c types.Color)
	Text(s string, x, y float64, size int, align Align, c types.Color)
}
