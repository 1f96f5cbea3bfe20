package main

import (
	"dp-effects/config"
	"dp-effects/engine"
	"dp-effects/ui"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func runWindow(a *app, cfg *config.Config, maxFrames int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Dev Projects")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(0) // Escape closes the snake overlay, not the window

	clock := engine.NewTimeProvider()
	surface := ui.NewRaylibSurface()
	a.page.Mount(surface)
	defer a.page.Unmount()

	for frames := 0; !rl.WindowShouldClose(); frames++ {
		if maxFrames > 0 && frames >= maxFrames {
			return
		}
		now := clock.Now()

		// Handle window resize
		if rl.IsWindowResized() {
			a.page.Resize(rl.GetScreenWidth(), rl.GetScreenHeight(), now)
		}

		for _, k := range ui.PollRaylibKeys() {
			if !a.page.HandleKey(k, now) {
				return
			}
		}

		mouse := rl.GetMousePosition()
		a.page.PointerMove(float64(mouse.X), float64(mouse.Y))
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			a.page.Click(float64(mouse.X), float64(mouse.Y), now)
		}

		rl.BeginDrawing()
		a.page.Frame(now)
		if !a.page.Overlay.IsOpen() {
			w := float32(rl.GetScreenWidth())
			if gui.Button(rl.NewRectangle(w-276, 16, 128, 32), "Play Snake") {
				a.page.OpenSnake(now)
			}
			if gui.Button(rl.NewRectangle(w-140, 16, 124, 32), "Toggle theme") {
				a.page.Theme.Toggle()
			}
		}
		rl.EndDrawing()
	}
}
