package engine

import (
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func pumpN(q *FrameQueue, clock *MockTimeProvider, n int) {
	for i := 0; i < n; i++ {
		q.Pump(clock.Advance(frame))
	}
}

func TestLoopRunsUntilFuncStops(t *testing.T) {
	q := NewFrameQueue()
	clock := NewMockTimeProvider(time.Unix(0, 0))
	var dts []time.Duration
	l := NewLoop("count", q, func(now time.Time, dt time.Duration) bool {
		dts = append(dts, dt)
		return len(dts) < 3
	})

	if !l.Start() {
		t.Fatal("expected Start to succeed")
	}
	pumpN(q, clock, 5)

	if len(dts) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(dts))
	}
	if dts[0] != 0 || dts[1] != frame || dts[2] != frame {
		t.Errorf("expected dt [0 %v %v], got %v", frame, frame, dts)
	}
	if l.Running() || q.Pending() != 0 {
		t.Errorf("expected loop idle, running=%v pending=%d", l.Running(), q.Pending())
	}
}

func TestLoopStartIsIdempotent(t *testing.T) {
	q := NewFrameQueue()
	l := NewLoop("idem", q, func(time.Time, time.Duration) bool { return true })
	l.Start()
	l.Start()
	if q.Pending() != 1 {
		t.Errorf("expected one pending frame, got %d", q.Pending())
	}
}

func TestLoopStopAndRestart(t *testing.T) {
	q := NewFrameQueue()
	clock := NewMockTimeProvider(time.Unix(0, 0))
	calls := 0
	var lastDT time.Duration
	l := NewLoop("stop", q, func(now time.Time, dt time.Duration) bool {
		calls++
		lastDT = dt
		return true
	})

	l.Start()
	pumpN(q, clock, 2)
	l.Stop()
	pumpN(q, clock, 3)

	if calls != 2 {
		t.Errorf("expected 2 calls before Stop, got %d", calls)
	}
	if q.Pending() != 0 {
		t.Errorf("expected nothing pending after Stop, got %d", q.Pending())
	}

	if !l.Start() {
		t.Fatal("expected restart after Stop")
	}
	pumpN(q, clock, 1)
	if lastDT != 0 {
		t.Errorf("expected dt to restart at zero, got %v", lastDT)
	}
}

func TestLoopDispose(t *testing.T) {
	q := NewFrameQueue()
	calls := 0
	l := NewLoop("dispose", q, func(time.Time, time.Duration) bool {
		calls++
		return true
	})
	l.Start()
	l.Dispose()

	q.Pump(time.Unix(0, 0))
	if calls != 0 {
		t.Errorf("expected no frames after Dispose, got %d", calls)
	}
	if l.Start() {
		t.Error("expected Start to fail after Dispose")
	}
	if !l.Disposed() || l.Running() {
		t.Error("expected disposed, idle loop")
	}
}

func TestLoopDisposeFromInsideFrame(t *testing.T) {
	q := NewFrameQueue()
	var l *Loop
	l = NewLoop("self", q, func(time.Time, time.Duration) bool {
		l.Dispose()
		return true
	})
	l.Start()
	q.Pump(time.Unix(0, 0))

	if q.Pending() != 0 {
		t.Errorf("expected no reschedule after Dispose, got %d pending", q.Pending())
	}
}

func TestLoopRefusesUnderReducedMotion(t *testing.T) {
	q := NewFrameQueue()
	m := NewMotionPreference(true)
	l := NewLoop("decor", q, func(time.Time, time.Duration) bool { return true }, WithMotion(m))

	if l.Start() {
		t.Error("expected Start to be refused")
	}
	if q.Pending() != 0 {
		t.Errorf("expected no frames requested, got %d", q.Pending())
	}

	m.Set(false)
	if !l.Start() {
		t.Error("expected Start once motion is allowed")
	}
}

func TestLoopStopsWhenMotionReduced(t *testing.T) {
	q := NewFrameQueue()
	clock := NewMockTimeProvider(time.Unix(0, 0))
	m := NewMotionPreference(false)
	calls := 0
	l := NewLoop("decor", q, func(time.Time, time.Duration) bool {
		calls++
		return true
	}, WithMotion(m))

	l.Start()
	pumpN(q, clock, 2)
	m.Set(true)
	pumpN(q, clock, 2)

	if calls != 2 {
		t.Errorf("expected 2 frames, got %d", calls)
	}
	if l.Running() || q.Pending() != 0 {
		t.Errorf("expected loop stopped, running=%v pending=%d", l.Running(), q.Pending())
	}
}

func TestPlainLoopIgnoresMotion(t *testing.T) {
	q := NewFrameQueue()
	m := NewMotionPreference(true)
	l := NewLoop("game", q, func(time.Time, time.Duration) bool { return true })

	if !l.Start() {
		t.Error("expected a plain loop to start under reduced motion")
	}
	m.Set(false)
	m.Set(true)
	if !l.Running() {
		t.Error("expected a plain loop to keep running")
	}
}

func TestMotionPreference(t *testing.T) {
	m := NewMotionPreference(false)
	var heard []bool
	unsub := m.Subscribe(func(reduced bool) { heard = append(heard, reduced) })

	m.Set(false)
	if len(heard) != 0 {
		t.Errorf("expected no notification without a change, got %v", heard)
	}
	if !m.Toggle() {
		t.Error("expected Toggle to return true")
	}
	unsub()
	m.Toggle()

	if len(heard) != 1 || !heard[0] {
		t.Errorf("expected [true], got %v", heard)
	}

	var none *MotionPreference
	if none.Reduced() {
		t.Error("expected nil preference to mean full motion")
	}
}

func TestMockTimeProvider(t *testing.T) {
	start := time.Unix(100, 0)
	clock := NewMockTimeProvider(start)
	if got := clock.Advance(time.Second); !got.Equal(start.Add(time.Second)) {
		t.Errorf("expected %v, got %v", start.Add(time.Second), got)
	}
	clock.SetTime(start)
	if !clock.Now().Equal(start) {
		t.Errorf("expected %v, got %v", start, clock.Now())
	}
}
