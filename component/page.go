package component

import (
	"log/slog"
	"time"

	"dp-effects/engine"
	"dp-effects/theme"
	"dp-effects/ui"
)

// Page is the projects page as one host: it owns the frame queue, the
// avatar and the snake overlay, and routes input to whichever is on top.
type Page struct {
	Queue   *engine.FrameQueue
	Theme   *theme.Manager
	Motion  *engine.MotionPreference
	Overlay *SnakeOverlay
	Avatar  *AvatarEgg

	renderer *ui.Renderer
	surface  ui.Surface
	log      *slog.Logger

	pointerX, pointerY float64
	pointerIn          bool
	mounted            bool
}

func NewPage(queue *engine.FrameQueue, themes *theme.Manager, motion *engine.MotionPreference,
	renderer *ui.Renderer, overlay *SnakeOverlay, avatar *AvatarEgg, log *slog.Logger) *Page {
	if log == nil {
		log = slog.Default()
	}
	overlay.watchTheme(themes)
	return &Page{
		Queue:    queue,
		Theme:    themes,
		Motion:   motion,
		Overlay:  overlay,
		Avatar:   avatar,
		renderer: renderer,
		log:      log,
	}
}

// Mount attaches both components to the surface
func (p *Page) Mount(surface ui.Surface) {
	if p.mounted {
		return
	}
	p.surface = surface
	p.Overlay.Mount(surface)
	cx, cy := p.avatarCentre()
	p.Avatar.Mount(surface, cx, cy)
	p.mounted = true
	p.log.Debug("page: mounted", "theme", string(p.Theme.Current()), "reduced_motion", p.Motion.Reduced())
}

// Unmount tears both components down. Nothing fires afterwards.
func (p *Page) Unmount() {
	if !p.mounted {
		return
	}
	p.Overlay.Unmount()
	p.Avatar.Unmount()
	p.surface = nil
	p.mounted = false
}

func (p *Page) avatarCentre() (float64, float64) {
	w, h := p.surface.Size()
	return float64(w) / 2, float64(h) * 0.4
}

// Frame runs one display refresh: every scheduled update, then one draw
func (p *Page) Frame(now time.Time) {
	if !p.mounted {
		return
	}
	p.Queue.Pump(now)

	pal := p.Theme.Palette()
	p.surface.Clear(pal.Color(theme.Background))
	p.drawChrome()
	if p.pointerIn && !p.Overlay.IsOpen() {
		p.renderer.DrawGlow(p.surface, p.pointerX, p.pointerY, 120)
	}
	p.Avatar.Draw(now)
	p.Overlay.Draw(now)
}

func (p *Page) drawChrome() {
	pal := p.Theme.Palette()
	w, h := p.surface.Size()
	cx := float64(w) / 2
	p.surface.Text("Dev Projects", cx, float64(h)*0.12, 28, ui.AlignCenter, pal.Color(theme.TextPrimary))

	motion := "on"
	if p.Motion.Reduced() {
		motion = "reduced"
	}
	hint := "click avatar: spin   p: snake   t: theme (" + string(p.Theme.Current()) + ")   r: system theme   m: motion (" + motion + ")   q: quit"
	p.surface.Text(hint, cx, float64(h)*0.9, 14, ui.AlignCenter, pal.Color(theme.TextSecondary))
}

// HandleKey routes a key press. It returns false for KeyQuit so the host
// can leave its loop.
func (p *Page) HandleKey(k ui.Key, now time.Time) bool {
	if !p.mounted {
		return true
	}
	if p.Overlay.IsOpen() {
		p.Overlay.HandleKey(k, now)
		return true
	}
	switch k {
	case ui.KeyQuit:
		return false
	case ui.KeySnake:
		p.OpenSnake(now)
	case ui.KeyTheme:
		p.Theme.Toggle()
	case ui.KeyThemeReset:
		p.Theme.FollowSystem()
	case ui.KeyMotion:
		reduced := p.Motion.Toggle()
		p.log.Info("page: motion preference", "reduced", reduced)
	}
	return true
}

// OpenSnake opens the game overlay
func (p *Page) OpenSnake(now time.Time) {
	if !p.mounted {
		return
	}
	p.Overlay.Open(now)
}

// Click routes a pointer press at surface pixel (x, y)
func (p *Page) Click(x, y float64, now time.Time) {
	if !p.mounted || p.Overlay.IsOpen() {
		return
	}
	if p.Avatar.Contains(x, y) {
		p.Avatar.Click(now)
	}
}

// PointerMove tracks the pointer for the glow orb and the avatar hover ring
func (p *Page) PointerMove(x, y float64) {
	p.pointerX, p.pointerY = x, y
	p.pointerIn = true
	p.Avatar.SetHover(p.mounted && !p.Overlay.IsOpen() && p.Avatar.Contains(x, y))
}

// PointerLeave hides the glow orb
func (p *Page) PointerLeave() {
	p.pointerIn = false
	p.Avatar.SetHover(false)
}

// Resize tells both components the surface changed size
func (p *Page) Resize(width, height int, now time.Time) {
	if !p.mounted {
		return
	}
	p.Avatar.Move(p.avatarCentre())
	p.Overlay.HandleResize(width, height, now)
}
