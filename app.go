package main

import (
	"log/slog"

	"dp-effects/audio"
	"dp-effects/component"
	"dp-effects/config"
	"dp-effects/engine"
	"dp-effects/game"
	"dp-effects/theme"
	"dp-effects/ui"
)

// app is everything one page session needs, wired from config
type app struct {
	page   *component.Page
	themes *theme.Manager
	motion *engine.MotionPreference
	player *audio.Player
}

func newApp(cfg *config.Config, seed uint64, log *slog.Logger) *app {
	a := &app{}

	a.themes = theme.NewManager(theme.NewStore(cfg.Theme.PrefsPath), theme.Name(cfg.Theme.System), log)
	a.motion = engine.NewMotionPreference(cfg.Motion.Reduced)

	var cues audio.Cues = audio.Silent{}
	if cfg.Audio.Enabled {
		player, err := audio.NewPlayer(log)
		if err != nil {
			// Non-fatal, the page works without sound
			log.Warn("audio disabled", "error", err)
		} else {
			a.player = player
			cues = player
		}
	}

	queue := engine.NewFrameQueue()
	renderer := ui.NewRenderer(a.themes, a.motion)

	snakeOpts := cfg.SnakeOptions(seed)
	snakeOpts.Logger = log
	sim := game.NewGridSimulation(snakeOpts)
	overlay := component.NewSnakeOverlay(component.OverlayConfig{
		Fade:           cfg.Overlay.Fade,
		ResizeDebounce: cfg.Overlay.ResizeDebounce,
	}, queue, sim, renderer, a.motion, cues, log)

	spin := game.NewSpinSystem(cfg.Spin, seed+1)
	avatar := component.NewAvatarEgg(component.AvatarConfig{
		Cooldown: cfg.Avatar.Cooldown,
		Wiggle:   cfg.Avatar.Wiggle,
		Radius:   cfg.Avatar.Radius,
	}, queue, spin, renderer, a.motion, cues, log)

	a.page = component.NewPage(queue, a.themes, a.motion, renderer, overlay, avatar, log)
	return a
}

func (a *app) Close() {
	a.page.Unmount()
	if a.player != nil {
		a.player.Close()
	}
}
