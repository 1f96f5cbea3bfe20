package main

import (
	"log/slog"
	"time"

	"dp-effects/config"
	"dp-effects/engine"
	"dp-effects/ui"
)

// runHeadless plays a short scripted session against an offscreen surface
// with a simulated clock. Useful for smoke runs and profiling.
func runHeadless(a *app, cfg *config.Config, maxFrames int) {
	if maxFrames <= 0 {
		maxFrames = 600
	}
	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	frameDur := time.Second / time.Duration(fps)

	surface := ui.NewRecorder(cfg.Screen.Width, cfg.Screen.Height)
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	a.page.Mount(surface)
	defer a.page.Unmount()

	w, h := surface.Size()
	avatarX, avatarY := float64(w)/2, float64(h)*0.4
	turns := []ui.Key{ui.KeyUp, ui.KeyLeft, ui.KeyDown, ui.KeyRight}

	for frame := 1; frame <= maxFrames; frame++ {
		now := clock.Advance(frameDur)

		switch {
		case frame <= 7 && frame%2 == 1:
			a.page.Click(avatarX, avatarY, now)
		case frame == 120:
			a.page.OpenSnake(now)
		case frame > 120 && frame%45 == 0:
			a.page.HandleKey(turns[(frame/45)%len(turns)], now)
		}

		a.page.Frame(now)

		if frame%60 == 0 {
			sim := a.page.Overlay.Sim()
			view := a.page.Avatar.View()
			slog.Info("headless: frame",
				"frame", frame,
				"snake_state", sim.State().String(),
				"score", sim.Score(),
				"games", sim.Games(),
				"avatar_angle", view.Angle,
				"avatar_swapped", view.Swapped,
				"draw_ops", len(surface.Ops),
				"pending_frames", a.page.Queue.Pending(),
			)
		}
	}
}
