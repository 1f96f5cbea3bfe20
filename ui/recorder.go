package ui

import (
	"dp-effects/game/types"
)

// Op is one recorded draw call
type Op struct {
	Kind       string // clear, rect, roundrect, circle, line, text
	X, Y, W, H float64
	Text       string
	Color      types.Color
}

// Recorder is an offscreen Surface that keeps the calls of the current
// frame. The headless backend draws into it.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// Clear starts a new frame
func (r *Recorder) Clear(c types.Color) {
	r.Ops = r.Ops[:0]
	r.Ops = append(r.Ops, Op{Kind: "clear", W: float64(r.Width), H: float64(r.Height), Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c types.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillRoundRect(x, y, w, h, radius float64, c types.Color) {
	r.Ops = append(r.Ops, Op{Kind: "roundrect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c types.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: cx, Y: cy, W: radius, H: radius, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c types.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, size int, align Align, c types.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, H: float64(size), Text: s, Color: c})
}

// Count returns how many ops of a kind the frame holds
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the strings drawn this frame, in order
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}
