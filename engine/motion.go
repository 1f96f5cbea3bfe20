package engine

import (
	"sort"
	"sync"
)

// MotionPreference is the "prefers reduced motion" signal. It can change
// while components are mounted; subscribers hear every change.
type MotionPreference struct {
	mu      sync.Mutex
	reduced bool
	subs    map[int]func(reduced bool)
	nextSub int
}

func NewMotionPreference(reduced bool) *MotionPreference {
	return &MotionPreference{
		reduced: reduced,
		subs:    make(map[int]func(bool)),
	}
}

// Reduced reports the current preference. A nil preference means full motion.
func (m *MotionPreference) Reduced() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reduced
}

// Set updates the preference and notifies subscribers if it changed
func (m *MotionPreference) Set(reduced bool) {
	m.mu.Lock()
	if m.reduced == reduced {
		m.mu.Unlock()
		return
	}
	m.reduced = reduced

	ids := make([]int, 0, len(m.subs))
	for id := range m.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(bool), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, m.subs[id])
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(reduced)
	}
}

// Toggle flips the preference and returns the new value
func (m *MotionPreference) Toggle() bool {
	next := !m.Reduced()
	m.Set(next)
	return next
}

// Subscribe registers fn for changes. The returned func removes it.
func (m *MotionPreference) Subscribe(fn func(reduced bool)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subs, id)
	}
}
