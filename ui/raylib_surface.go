package ui

import (
	"dp-effects/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibSurface draws into the current raylib window. Calls must happen
// between rl.BeginDrawing and rl.EndDrawing.
type RaylibSurface struct{}

func NewRaylibSurface() *RaylibSurface {
	return &RaylibSurface{}
}

func toRL(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (s *RaylibSurface) Size() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

func (s *RaylibSurface) Clear(c types.Color) {
	rl.ClearBackground(toRL(c))
}

func (s *RaylibSurface) FillRect(x, y, w, h float64, c types.Color) {
	rl.DrawRectangleRec(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, toRL(c))
}

func (s *RaylibSurface) FillRoundRect(x, y, w, h, radius float64, c types.Color) {
	short := min(w, h)
	if short <= 0 {
		return
	}
	roundness := float32(min(radius*2/short, 1))
	rl.DrawRectangleRounded(rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}, roundness, 8, toRL(c))
}

func (s *RaylibSurface) FillCircle(cx, cy, r float64, c types.Color) {
	rl.DrawCircleV(rl.Vector2{X: float32(cx), Y: float32(cy)}, float32(r), toRL(c))
}

func (s *RaylibSurface) Line(x1, y1, x2, y2 float64, c types.Color) {
	rl.DrawLineV(rl.Vector2{X: float32(x1), Y: float32(y1)}, rl.Vector2{X: float32(x2), Y: float32(y2)}, toRL(c))
}

func (s *RaylibSurface) Text(text string, x, y float64, size int, align Align, c types.Color) {
	fontSize := int32(size)
	px := int32(x)
	if align == AlignCenter {
		px -= rl.MeasureText(text, fontSize) / 2
	}
	rl.DrawText(text, px, int32(y)-fontSize/2, fontSize, toRL(c))
}

// PollRaylibKeys returns the keys pressed since the last frame
func PollRaylibKeys() []Key {
	bindings := []struct {
		rlKey int32
		key   Key
	}{
		{rl.KeyUp, KeyUp}, {rl.KeyW, KeyUp},
		{rl.KeyDown, KeyDown}, {rl.KeyS, KeyDown},
		{rl.KeyLeft, KeyLeft}, {rl.KeyA, KeyLeft},
		{rl.KeyRight, KeyRight}, {rl.KeyD, KeyRight},
		{rl.KeySpace, KeySpace},
		{rl.KeyEscape, KeyEscape},
		{rl.KeyT, KeyTheme},
		{rl.KeyM, KeyMotion},
		{rl.KeyP, KeySnake},
		{rl.KeyQ, KeyQuit},
		{rl.KeyR, KeyThemeReset},
	}
	var keys []Key
	for _, b := range bindings {
		if rl.IsKeyPressed(b.rlKey) {
			keys = append(keys, b.key)
		}
	}
	return keys
}
