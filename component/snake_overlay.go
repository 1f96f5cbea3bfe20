package component

import (
	"log/slog"
	"time"

	"dp-effects/audio"
	"dp-effects/engine"
	"dp-effects/game"
	"dp-effects/game/types"
	"dp-effects/theme"
	"dp-effects/ui"
)

// OverlayConfig tunes the snake overlay transitions
type OverlayConfig struct {
	Fade           time.Duration // Open/close fade; zero under reduced motion
	ResizeDebounce time.Duration
}

func DefaultOverlayConfig() OverlayConfig {
	return OverlayConfig{
		Fade:           300 * time.Millisecond,
		ResizeDebounce: 150 * time.Millisecond,
	}
}

// themeWatcher reports theme changes while the overlay is open
type themeWatcher interface {
	Subscribe(fn func(theme.Name)) (unsubscribe func())
}

type overlayPhase int

const (
	phaseClosed overlayPhase = iota
	phaseOpening
	phaseOpen
	phaseClosing
)

// SnakeOverlay hosts the snake game in a full-surface overlay. It owns the
// frame loop of the game and its surface binding.
type SnakeOverlay struct {
	cfg      OverlayConfig
	sched    engine.Scheduler
	motion   *engine.MotionPreference
	renderer *ui.Renderer
	cues     audio.Cues
	log      *slog.Logger

	sim     *game.GridSimulation
	surface ui.Surface
	loop    *engine.Loop

	phase      overlayPhase
	phaseStart time.Time
	opacity    float64

	resizePending bool
	resizeAt      time.Time
	resizeW       int
	resizeH       int

	themes     themeWatcher
	unsubTheme func()

	lastScore int
	lastState types.State
	disposed  bool
}

func NewSnakeOverlay(cfg OverlayConfig, sched engine.Scheduler, sim *game.GridSimulation,
	renderer *ui.Renderer, motion *engine.MotionPreference, cues audio.Cues, log *slog.Logger) *SnakeOverlay {
	if cues == nil {
		cues = audio.Silent{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &SnakeOverlay{
		cfg:      cfg,
		sched:    sched,
		sim:      sim,
		renderer: renderer,
		motion:   motion,
		cues:     cues,
		log:      log,
	}
}

// Mount binds the overlay to its surface
func (o *SnakeOverlay) Mount(surface ui.Surface) {
	if o.disposed {
		return
	}
	o.surface = surface
}

// Unmount closes the overlay at once, cancels the loop and releases the
// surface. The overlay is dead afterwards; every call is a no-op.
func (o *SnakeOverlay) Unmount() {
	if o.disposed {
		return
	}
	o.teardown()
	o.surface = nil
	o.disposed = true
}

func (o *SnakeOverlay) watchTheme(w themeWatcher) {
	o.themes = w
}

func (o *SnakeOverlay) onThemeChange(n theme.Name) {
	o.log.Debug("snake: theme changed", "theme", string(n), "run_id", o.sim.RunID)
}

// IsOpen reports whether the overlay is visible, fading included
func (o *SnakeOverlay) IsOpen() bool {
	return o.phase != phaseClosed
}

func (o *SnakeOverlay) Sim() *game.GridSimulation {
	return o.sim
}

func (o *SnakeOverlay) fade() time.Duration {
	if o.motion.Reduced() {
		return 0
	}
	return o.cfg.Fade
}

// Open shows the overlay. The game starts once the fade-in has finished.
func (o *SnakeOverlay) Open(now time.Time) bool {
	if o.disposed || o.surface == nil || o.phase != phaseClosed {
		return false
	}
	o.loop = engine.NewLoop("snake", o.sched, o.frame, engine.WithLogger(o.log))
	o.phaseStart = now
	o.resizePending = false
	if o.themes != nil {
		o.unsubTheme = o.themes.Subscribe(o.onThemeChange)
	}

	if o.fade() == 0 {
		o.phase = phaseOpen
		o.opacity = 1
		o.startGame()
	} else {
		o.phase = phaseOpening
		o.opacity = 0
	}
	o.loop.Start()
	o.log.Info("snake: overlay opened")
	return true
}

// Close stops the game right away and fades the overlay out
func (o *SnakeOverlay) Close(now time.Time) {
	if o.disposed || o.phase == phaseClosed || o.phase == phaseClosing {
		return
	}
	o.sim.Reset()
	if o.fade() == 0 {
		o.teardown()
		return
	}
	o.phase = phaseClosing
	o.phaseStart = now
	o.loop.Start()
}

func (o *SnakeOverlay) teardown() {
	wasOpen := o.phase != phaseClosed
	if o.loop != nil {
		o.loop.Dispose()
		o.loop = nil
	}
	if o.unsubTheme != nil {
		o.unsubTheme()
		o.unsubTheme = nil
	}
	o.sim.Reset()
	o.phase = phaseClosed
	o.opacity = 0
	o.resizePending = false
	if wasOpen {
		o.log.Info("snake: overlay closed")
	}
}

func (o *SnakeOverlay) startGame() {
	w, h := o.surface.Size()
	o.sim.Start(w, h)
	o.lastScore = 0
	o.lastState = o.sim.State()
}

// HandleKey routes a key press while the overlay is up. Returns whether the
// key was used.
func (o *SnakeOverlay) HandleKey(k ui.Key, now time.Time) bool {
	if o.disposed || o.phase == phaseClosed {
		return false
	}
	if k == ui.KeyEscape {
		o.Close(now)
		return true
	}
	switch o.sim.State() {
	case types.GameOver:
		if k == ui.KeySpace {
			if !o.sim.Restart() {
				o.log.Debug("snake: restart refused, surface too small")
			}
			o.lastScore = 0
			o.lastState = o.sim.State()
			return true
		}
		return false
	case types.NotStarted:
		// A start that failed on a small surface is retried on Space
		if k == ui.KeySpace && o.phase == phaseOpen {
			o.startGame()
			return true
		}
		return false
	}
	if dir, ok := ui.DirectionFor(k); ok {
		o.sim.OnDirectionInput(dir)
		return true
	}
	return false
}

// HandleResize queues a grid resize; bursts of resize events collapse into one
func (o *SnakeOverlay) HandleResize(width, height int, now time.Time) {
	if o.disposed || o.phase == phaseClosed {
		return
	}
	o.resizePending = true
	o.resizeAt = now.Add(o.cfg.ResizeDebounce)
	o.resizeW, o.resizeH = width, height
}

func (o *SnakeOverlay) frame(now time.Time, dt time.Duration) bool {
	if o.disposed || o.surface == nil {
		return false
	}

	switch o.phase {
	case phaseOpening:
		o.opacity = progress(now.Sub(o.phaseStart), o.fade())
		if o.opacity >= 1 {
			o.phase = phaseOpen
			o.startGame()
		}
	case phaseClosing:
		o.opacity = 1 - progress(now.Sub(o.phaseStart), o.fade())
		if o.opacity <= 0 {
			o.teardown()
			return false
		}
		return true
	case phaseClosed:
		return false
	}

	if o.resizePending && !now.Before(o.resizeAt) {
		o.resizePending = false
		if o.sim.State() == types.NotStarted {
			// Until the fade-in ends the game starts from the surface size
			if o.phase == phaseOpen {
				o.sim.Start(o.resizeW, o.resizeH)
				o.lastScore = 0
				o.lastState = o.sim.State()
			}
		} else {
			o.sim.Resize(o.resizeW, o.resizeH)
			o.emitCues()
		}
	}

	if o.sim.Advance(now) {
		o.emitCues()
	}
	return true
}

func (o *SnakeOverlay) emitCues() {
	if score := o.sim.Score(); score > o.lastScore {
		o.cues.Eat()
		o.lastScore = score
	}
	if state := o.sim.State(); state != o.lastState {
		if state == types.GameOver {
			o.cues.GameOver()
		}
		o.lastState = state
	}
}

// Draw paints the overlay for this frame; nothing when closed
func (o *SnakeOverlay) Draw(now time.Time) {
	if o.disposed || o.surface == nil || o.phase == phaseClosed {
		return
	}
	o.renderer.DrawSnake(o.surface, o.sim, now, o.opacity)
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(total)
	return min(max(p, 0), 1)
}
