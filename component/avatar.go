package component

import (
	"log/slog"
	"math"
	"time"

	"dp-effects/audio"
	"dp-effects/engine"
	"dp-effects/game"
	"dp-effects/ui"
)

// AvatarConfig places the avatar and tunes its click handling
type AvatarConfig struct {
	Cooldown time.Duration // Clicks inside the cooldown wiggle or boost instead of spinning
	Wiggle   time.Duration
	Radius   float64
}

func DefaultAvatarConfig() AvatarConfig {
	return AvatarConfig{
		Cooldown: 1500 * time.Millisecond,
		Wiggle:   400 * time.Millisecond,
		Radius:   48,
	}
}

// wigglePose is the tilt shown instead of the wiggle animation under reduced motion
const wigglePose = 8.0

// AvatarEgg spins the avatar on click and fires confetti the first time it
// spins fast enough. The spin and the confetti run on separate loops.
type AvatarEgg struct {
	cfg      AvatarConfig
	sched    engine.Scheduler
	motion   *engine.MotionPreference
	renderer *ui.Renderer
	cues     audio.Cues
	log      *slog.Logger
	spin     *game.SpinSystem

	surface ui.Surface
	cx, cy  float64

	spinLoop  *engine.Loop
	burstLoop *engine.Loop

	cooldownUntil time.Time
	wiggleStart   time.Time
	wiggleUntil   time.Time
	wiggleAngle   float64
	staticWiggle  bool
	hover         bool

	attached    bool
	disposed    bool
	unsubMotion func()
}

func NewAvatarEgg(cfg AvatarConfig, sched engine.Scheduler, spin *game.SpinSystem,
	renderer *ui.Renderer, motion *engine.MotionPreference, cues audio.Cues, log *slog.Logger) *AvatarEgg {
	if cues == nil {
		cues = audio.Silent{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &AvatarEgg{
		cfg:      cfg,
		sched:    sched,
		spin:     spin,
		renderer: renderer,
		motion:   motion,
		cues:     cues,
		log:      log,
	}
}

// Mount places the avatar centred at (cx, cy) on surface. Click handling
// attaches unless reduced motion is on, and follows the preference live.
func (a *AvatarEgg) Mount(surface ui.Surface, cx, cy float64) {
	if a.disposed {
		return
	}
	a.surface = surface
	a.Move(cx, cy)

	a.spinLoop = engine.NewLoop("avatar-spin", a.sched, a.spinFrame,
		engine.WithMotion(a.motion), engine.WithLogger(a.log))
	a.burstLoop = engine.NewLoop("avatar-confetti", a.sched, a.burstFrame,
		engine.WithMotion(a.motion), engine.WithLogger(a.log))

	a.unsubMotion = a.motion.Subscribe(a.onMotionChange)
	if a.motion.Reduced() {
		a.detach()
	} else {
		a.attach()
	}
}

// Move re-centres the avatar, e.g. after a window resize
func (a *AvatarEgg) Move(cx, cy float64) {
	a.cx, a.cy = cx, cy
	a.spin.SetOrigin(cx, cy)
}

// Unmount cancels both loops and releases the surface
func (a *AvatarEgg) Unmount() {
	if a.disposed {
		return
	}
	a.detach()
	if a.spinLoop != nil {
		a.spinLoop.Dispose()
		a.burstLoop.Dispose()
	}
	if a.unsubMotion != nil {
		a.unsubMotion()
		a.unsubMotion = nil
	}
	a.spin.Reset()
	a.surface = nil
	a.disposed = true
}

func (a *AvatarEgg) attach() {
	a.attached = true
	a.staticWiggle = false
}

// detach stops all motion and leaves the avatar where it is
func (a *AvatarEgg) detach() {
	a.attached = false
	if a.spinLoop != nil {
		a.spinLoop.Stop()
		a.burstLoop.Stop()
	}
	a.spin.Reset()
	a.wiggleUntil = time.Time{}
}

func (a *AvatarEgg) onMotionChange(reduced bool) {
	if a.disposed {
		return
	}
	if reduced {
		a.detach()
	} else {
		a.attach()
	}
}

// Contains reports whether a pointer at (x, y) hits the avatar
func (a *AvatarEgg) Contains(x, y float64) bool {
	return math.Hypot(x-a.cx, y-a.cy) <= a.cfg.Radius
}

// SetHover marks whether the pointer rests on the avatar
func (a *AvatarEgg) SetHover(on bool) {
	a.hover = on && !a.disposed
}

// Click handles a press on the avatar
func (a *AvatarEgg) Click(now time.Time) {
	if a.disposed || a.surface == nil {
		return
	}
	if a.motion.Reduced() {
		// No frames at all: show the wiggle pose and stay there
		a.staticWiggle = true
		return
	}
	if !a.attached {
		return
	}
	if !now.Before(a.cooldownUntil) {
		a.fireSpin(now)
	} else {
		a.fireWiggle(now)
	}
}

func (a *AvatarEgg) fireSpin(now time.Time) {
	a.spin.ApplyImpulse(a.spin.Config().ClickBoost)
	a.cooldownUntil = now.Add(a.cfg.Cooldown)
	a.spinLoop.Start()
}

func (a *AvatarEgg) fireWiggle(now time.Time) {
	if a.spin.Spinning() {
		a.spin.ApplyImpulse(a.spin.Config().ClickBoost)
		a.spinLoop.Start()
		return
	}
	a.wiggleStart = now
	a.wiggleUntil = now.Add(a.cfg.Wiggle)
	a.spinLoop.Start()
}

func (a *AvatarEgg) spinFrame(now time.Time, dt time.Duration) bool {
	if a.disposed || !a.attached {
		return false
	}

	if a.spin.Spinning() && a.spin.Advance(dt) {
		a.log.Info("avatar: confetti", "angle", a.spin.State().Angle)
		a.cues.Burst()
		a.burstLoop.Start()
	}

	a.wiggleAngle = 0
	if now.Before(a.wiggleUntil) {
		t := float64(now.Sub(a.wiggleStart)) / float64(a.cfg.Wiggle)
		a.wiggleAngle = wigglePose * math.Sin(t*math.Pi*4) * (1 - t)
	}

	return a.spin.Spinning() || now.Before(a.wiggleUntil)
}

func (a *AvatarEgg) burstFrame(now time.Time, dt time.Duration) bool {
	if a.disposed {
		return false
	}
	return a.spin.AdvanceBurst()
}

// View returns how the avatar should look right now
func (a *AvatarEgg) View() ui.AvatarView {
	st := a.spin.State()
	angle := st.Angle + a.wiggleAngle
	if a.staticWiggle {
		angle = st.Angle + wigglePose
	}
	return ui.AvatarView{
		CX:      a.cx,
		CY:      a.cy,
		Radius:  a.cfg.Radius,
		Angle:   angle,
		Swapped: st.ImageSwapped,
		Hover:   a.hover,
	}
}

// Spinning reports whether the spin loop is scheduled
func (a *AvatarEgg) Spinning() bool {
	return a.spinLoop != nil && a.spinLoop.Running()
}

// Bursting reports whether the confetti loop is scheduled
func (a *AvatarEgg) Bursting() bool {
	return a.burstLoop != nil && a.burstLoop.Running()
}

// Draw paints the avatar and any live confetti
func (a *AvatarEgg) Draw(now time.Time) {
	if a.disposed || a.surface == nil {
		return
	}
	a.renderer.DrawAvatar(a.surface, a.View())
	a.renderer.DrawBurst(a.surface, a.spin.Burst())
}
