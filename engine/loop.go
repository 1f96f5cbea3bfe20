package engine

import (
	"log/slog"
	"time"
)

// LoopFunc is one frame of work: update, then draw. dt is the time since the
// previous frame of this loop, zero on the first. Returning false ends the loop.
type LoopFunc func(now time.Time, dt time.Duration) bool

// Loop drives a LoopFunc once per frame until stopped. A loop created with a
// MotionPreference is decorative: it will not start while reduced motion is
// on, and stops as soon as reduced motion is switched on.
type Loop struct {
	name   string
	sched  Scheduler
	fn     LoopFunc
	motion *MotionPreference
	log    *slog.Logger

	unsubscribe func()
	id          FrameID
	running     bool
	disposed    bool
	last        time.Time
}

type LoopOption func(*Loop)

// WithMotion makes the loop yield to the reduced motion preference
func WithMotion(m *MotionPreference) LoopOption {
	return func(l *Loop) {
		l.motion = m
	}
}

func WithLogger(log *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.log = log
	}
}

func NewLoop(name string, sched Scheduler, fn LoopFunc, opts ...LoopOption) *Loop {
	l := &Loop{
		name:  name,
		sched: sched,
		fn:    fn,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.motion != nil {
		l.unsubscribe = l.motion.Subscribe(func(reduced bool) {
			if reduced && l.running {
				l.log.Debug("loop: stopped for reduced motion", "loop", l.name)
				l.Stop()
			}
		})
	}
	return l
}

// Start schedules the first frame. It returns false when the loop is
// disposed or reduced motion forbids it; starting a running loop is a no-op.
func (l *Loop) Start() bool {
	if l.disposed {
		return false
	}
	if l.running {
		return true
	}
	if l.motion.Reduced() {
		l.log.Debug("loop: refused for reduced motion", "loop", l.name)
		return false
	}
	l.running = true
	l.last = time.Time{}
	l.id = l.sched.RequestFrame(l.frame)
	return true
}

// Stop cancels the pending frame. The loop can be started again.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.sched.CancelFrame(l.id)
	l.id = 0
	l.running = false
}

// Dispose stops the loop for good and drops its motion subscription
func (l *Loop) Dispose() {
	if l.disposed {
		return
	}
	l.Stop()
	l.disposed = true
	if l.unsubscribe != nil {
		l.unsubscribe()
		l.unsubscribe = nil
	}
}

func (l *Loop) Running() bool {
	return l.running && !l.disposed
}

func (l *Loop) Disposed() bool {
	return l.disposed
}

func (l *Loop) frame(now time.Time) {
	if l.disposed || !l.running {
		return
	}
	l.id = 0

	var dt time.Duration
	if !l.last.IsZero() {
		dt = now.Sub(l.last)
	}
	l.last = now

	if !l.fn(now, dt) {
		l.running = false
		return
	}
	// fn may have stopped, disposed or restarted the loop
	if l.disposed || !l.running || l.id != 0 {
		return
	}
	l.id = l.sched.RequestFrame(l.frame)
}
