package theme

import (
	"log/slog"
	"sync"
)

// Manager tracks the active theme. Components read Palette every frame, so a
// change shows up without restarting anything.
type Manager struct {
	mu      sync.Mutex
	current Name
	system  Name
	store   *Store
	log     *slog.Logger
	subs    map[int]func(Name)
	nextSub int
}

// NewManager picks the stored theme if there is one, else the system theme
func NewManager(store *Store, system Name, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	if _, ok := Parse(string(system)); !ok {
		system = Dark
	}
	m := &Manager{
		current: system,
		system:  system,
		store:   store,
		log:     log,
		subs:    make(map[int]func(Name)),
	}
	if stored, ok := store.Get(); ok {
		m.current = stored
	}
	return m
}

func (m *Manager) Current() Name {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

func (m *Manager) Palette() Palette {
	return PaletteFor(m.Current())
}

// Toggle switches theme and persists the choice. A failed write only costs
// the choice on the next start.
func (m *Manager) Toggle() Name {
	next := m.Current().Other()
	m.apply(next)
	if err := m.store.Set(next); err != nil {
		m.log.Debug("theme: not persisted", "error", err)
	}
	return next
}

// FollowSystem forgets the stored choice and switches back to the system
// theme
func (m *Manager) FollowSystem() Name {
	if err := m.store.Clear(); err != nil {
		m.log.Debug("theme: stored choice not cleared", "error", err)
	}
	m.mu.Lock()
	system := m.system
	m.mu.Unlock()
	m.apply(system)
	return system
}

func (m *Manager) apply(n Name) {
	m.mu.Lock()
	if m.current == n {
		m.mu.Unlock()
		return
	}
	m.current = n
	fns := make([]func(Name), 0, len(m.subs))
	for i := 0; i < m.nextSub; i++ {
		if fn, ok := m.subs[i]; ok {
			fns = append(fns, fn)
		}
	}
	m.mu.Unlock()

	m.log.Info("theme: applied", "theme", string(n))
	for _, fn := range fns {
		fn(n)
	}
}

// Subscribe registers fn for theme changes. The returned func removes it.
func (m *Manager) Subscribe(fn func(Name)) (unsubscribe func()) {
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
