package ui

import (
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"dp-effects/engine"
	"dp-effects/game"
	"dp-effects/game/entity"
	"dp-effects/game/types"
	"dp-effects/theme"
)

type fixedPalette theme.Name

func (f fixedPalette) Palette() theme.Palette {
	return theme.PaletteFor(theme.Name(f))
}

func newSim(t *testing.T) *game.GridSimulation {
	t.Helper()
	g := game.NewGridSimulation(game.Options{Seed: 1, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	if !g.Start(400, 400) {
		t.Fatal("expected Start to succeed")
	}
	return g
}

func TestDrawSnakeNotStarted(t *testing.T) {
	rec := NewRecorder(400, 400)
	r := NewRenderer(fixedPalette(theme.Dark), engine.NewMotionPreference(false))
	g := game.NewGridSimulation(game.Options{Seed: 1})

	rec.Clear(types.Color{})
	r.DrawSnake(rec, g, time.Unix(0, 0), 1)

	if rec.Count("rect") != 1 || rec.Count("roundrect") != 0 || len(rec.Texts()) != 0 {
		t.Errorf("expected only the backdrop, got %+v", rec.Ops)
	}
}

func TestDrawSnakeRunning(t *testing.T) {
	rec := NewRecorder(400, 400)
	r := NewRenderer(fixedPalette(theme.Dark), engine.NewMotionPreference(false))
	g := newSim(t)

	rec.Clear(types.Color{})
	r.DrawSnake(rec, g, time.Unix(0, 0), 1)

	if got := rec.Count("roundrect"); got != types.InitialLength {
		t.Errorf("expected %d segments, got %d", types.InitialLength, got)
	}
	if got := rec.Count("line"); got != 22 {
		t.Errorf("expected 22 grid lines, got %d", got)
	}
	if texts := rec.Texts(); !slices.Equal(texts, []string{"Score: 0"}) {
		t.Errorf("expected only the score, got %v", texts)
	}

	// Head is opaque, the body is dimmer
	snake := theme.PaletteFor(theme.Dark).Color(theme.Snake)
	var segs []Op
	for _, op := range rec.Ops {
		if op.Kind == "roundrect" {
			segs = append(segs, op)
		}
	}
	if head := segs[len(segs)-1]; head.Color.A != snake.A {
		t.Errorf("expected opaque head, got alpha %d", head.Color.A)
	}
	if segs[0].Color.A >= snake.A {
		t.Errorf("expected dimmer body, got alpha %d", segs[0].Color.A)
	}
}

func TestDrawSnakeFoodGlowFollowsMotion(t *testing.T) {
	tests := []struct {
		name    string
		reduced bool
		circles int
	}{
		{"full motion", false, 4},
		{"reduced motion", true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := NewRecorder(400, 400)
			r := NewRenderer(fixedPalette(theme.Light), engine.NewMotionPreference(tc.reduced))
			g := newSim(t)

			rec.Clear(types.Color{})
			r.DrawSnake(rec, g, time.Unix(0, 0), 1)

			if got := rec.Count("circle"); got != tc.circles {
				t.Errorf("expected %d circles, got %d", tc.circles, got)
			}
		})
	}
}

func TestDrawSnakeGameOver(t *testing.T) {
	rec := NewRecorder(400, 400)
	r := NewRenderer(fixedPalette(theme.Dark), engine.NewMotionPreference(false))
	g := newSim(t)

	// Shrinking the surface under the head ends the game
	g.Resize(160, 160)
	if g.State() != types.GameOver {
		t.Fatalf("expected GameOver, got %s", g.State())
	}

	rec.Clear(types.Color{})
	r.DrawSnake(rec, g, time.Unix(0, 0), 1)

	want := []string{"Score: 0", "Game Over", "Score: 0", "Space to restart"}
	if texts := rec.Texts(); !slices.Equal(texts, want) {
		t.Errorf("expected %v, got %v", want, texts)
	}
}

func TestDrawSnakeFade(t *testing.T) {
	rec := NewRecorder(400, 400)
	r := NewRenderer(fixedPalette(theme.Dark), engine.NewMotionPreference(false))
	g := newSim(t)

	rec.Clear(types.Color{})
	r.DrawSnake(rec, g, time.Unix(0, 0), 0)
	if len(rec.Ops) != 1 {
		t.Errorf("expected nothing drawn at zero opacity, got %d ops", len(rec.Ops)-1)
	}

	rec.Clear(types.Color{})
	r.DrawSnake(rec, g, time.Unix(0, 0), 0.5)
	if bg := rec.Ops[1]; bg.Kind != "rect" || bg.Color.A != 127 {
		t.Errorf("expected half-opaque backdrop, got %+v", bg)
	}
}

func TestDrawBurstSkipsDeadParticles(t *testing.T) {
	rec := NewRecorder(100, 100)
	r := NewRenderer(fixedPalette(theme.Dark), nil)
	b := &entity.Burst{Particles: []entity.Particle{
		{X: 1, Y: 1, Size: 3, Life: 30, MaxLife: 60, Color: types.Color{R: 255, A: 255}},
		{X: 2, Y: 2, Size: 3, Life: 0, MaxLife: 60},
	}}

	r.DrawBurst(rec, b)
	r.DrawBurst(rec, nil)

	if rec.Count("circle") != 1 {
		t.Fatalf("expected 1 particle drawn, got %d", rec.Count("circle"))
	}
	if a := rec.Ops[0].Color.A; a != 127 {
		t.Errorf("expected alpha 127 at half life, got %d", a)
	}
}

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r    rune
		want Key
	}{
		{'w', KeyUp}, {'A', KeyLeft}, {'s', KeyDown}, {'d', KeyRight},
		{' ', KeySpace}, {'t', KeyTheme}, {'m', KeyMotion}, {'p', KeySnake},
		{'q', KeyQuit}, {'x', KeyNone},
	}
	for _, tc := range tests {
		if got := KeyForRune(tc.r); got != tc.want {
			t.Errorf("KeyForRune(%q): expected %d, got %d", tc.r, tc.want, got)
		}
	}
}

func TestDirectionFor(t *testing.T) {
	if d, ok := DirectionFor(KeyLeft); !ok || d != types.Left {
		t.Errorf("expected left, got %v (ok=%v)", d, ok)
	}
	if _, ok := DirectionFor(KeySpace); ok {
		t.Error("expected space not to be a direction")
	}
}
