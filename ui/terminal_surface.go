package ui

import (
	"math"

	"dp-effects/game/types"
	"dp-effects/theme"

	"github.com/gdamore/tcell/v2"
)

// TerminalSurface maps pixel drawing onto terminal cells. Each cell stands
// for cellW x cellH pixels; shapes fill the cells whose centre they cover.
type TerminalSurface struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64

	cols, rows int
	bg         []types.Color // Background per cell, used for alpha blending
}

func NewTerminalSurface(screen tcell.Screen, cellW, cellH float64) *TerminalSurface {
	if cellW <= 0 {
		cellW = 10
	}
	if cellH <= 0 {
		cellH = 20
	}
	s := &TerminalSurface{screen: screen, cellW: cellW, cellH: cellH}
	s.resize()
	return s
}

func (s *TerminalSurface) resize() {
	cols, rows := s.screen.Size()
	if cols != s.cols || rows != s.rows || s.bg == nil {
		s.cols, s.rows = cols, rows
		s.bg = make([]types.Color, cols*rows)
	}
}

// Size follows the screen, so a resize shows up before the next Clear
func (s *TerminalSurface) Size() (int, int) {
	s.resize()
	return int(float64(s.cols) * s.cellW), int(float64(s.rows) * s.cellH)
}

func tcellColor(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *TerminalSurface) Clear(c types.Color) {
	s.resize()
	c.A = 255
	for i := range s.bg {
		s.bg[i] = c
	}
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

func (s *TerminalSurface) paint(col, row int, c types.Color) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows || c.A == 0 {
		return
	}
	i := row*s.cols + col
	s.bg[i] = theme.Blend(s.bg[i], c)
	s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcellColor(s.bg[i])))
}

// span converts a pixel range to the cells whose centres fall inside it
func span(from, length, cell float64) (int, int) {
	first := int(math.Ceil(from/cell - 0.5))
	last := int(math.Floor((from+length)/cell - 0.5))
	return first, last
}

func (s *TerminalSurface) FillRect(x, y, w, h float64, c types.Color) {
	c0, c1 := span(x, w, s.cellW)
	r0, r1 := span(y, h, s.cellH)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.paint(col, row, c)
		}
	}
}

func (s *TerminalSurface) FillRoundRect(x, y, w, h, radius float64, c types.Color) {
	s.FillRect(x, y, w, h, c)
}

func (s *TerminalSurface) FillCircle(cx, cy, r float64, c types.Color) {
	c0, c1 := span(cx-r, 2*r, s.cellW)
	r0, r1 := span(cy-r, 2*r, s.cellH)
	if c0 > c1 || r0 > r1 {
		// Smaller than a cell: paint the cell under the centre
		s.paint(int(cx/s.cellW), int(cy/s.cellH), c)
		return
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) * s.cellW
			py := (float64(row) + 0.5) * s.cellH
			if math.Hypot(px-cx, py-cy) <= r {
				s.paint(col, row, c)
			}
		}
	}
}

// Line is drawn as a hairline of dim foreground dots
func (s *TerminalSurface) Line(x1, y1, x2, y2 float64, c types.Color) {
	steps := int(math.Max(math.Abs(x2-x1)/s.cellW, math.Abs(y2-y1)/s.cellH)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int((x1 + (x2-x1)*t) / s.cellW)
		row := int((y1 + (y2-y1)*t) / s.cellH)
		if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
			continue
		}
		bg := s.bg[row*s.cols+col]
		fg := theme.Blend(bg, c)
		s.screen.SetContent(col, row, '·', nil,
			tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(fg)))
	}
}

func (s *TerminalSurface) Text(text string, x, y float64, size int, align Align, c types.Color) {
	runes := []rune(text)
	col := int(x / s.cellW)
	if align == AlignCenter {
		col -= len(runes) / 2
	}
	row := int(y / s.cellH)
	if row < 0 || row >= s.rows {
		return
	}
	for i, r := range runes {
		cx := col + i
		if cx < 0 || cx >= s.cols {
			continue
		}
		bg := s.bg[row*s.cols+cx]
		style := tcell.StyleDefault.Background(tcellColor(bg)).Foreground(tcellColor(theme.Blend(bg, c)))
		if size >= 20 {
			style = style.Bold(true)
		}
		s.screen.SetContent(cx, row, r, nil, style)
	}
}

// Show flushes the frame to the terminal
func (s *TerminalSurface) Show() {
	s.screen.Show()
}

// CellToPixel converts a terminal cell to the pixel at its centre
func (s *TerminalSurface) CellToPixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// TerminalKey maps a tcell key event to a Key
func TerminalKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		return KeyForRune(ev.Rune())
	}
	return KeyNone
}
