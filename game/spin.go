package game

import (
	"math"
	"time"

	"dp-effects/game/entity"
	"dp-effects/game/types"

	"golang.org/x/exp/rand"
)

// SpinConfig holds the avatar physics and confetti parameters
type SpinConfig struct {
	ClickBoost         float64       `yaml:"click_boost"`
	MaxVelocity        float64       `yaml:"max_velocity"`
	Friction           float64       `yaml:"friction"`        // Velocity factor per reference frame
	StopThreshold      float64       `yaml:"stop_threshold"`  // Below this the spin snaps to rest
	HighSpeedThreshold float64       `yaml:"high_speed"`      // Swap image and fire confetti at or above
	ReferenceFrame     time.Duration `yaml:"reference_frame"` // Frame length the factors are tuned for

	ParticleCount    int           `yaml:"particle_count"`
	ParticleVelMin   float64       `yaml:"particle_vel_min"`
	ParticleVelMax   float64       `yaml:"particle_vel_max"`
	ParticleSizeMin  float64       `yaml:"particle_size_min"`
	ParticleSizeMax  float64       `yaml:"particle_size_max"`
	Gravity          float64       `yaml:"gravity"`
	ParticleFriction float64       `yaml:"particle_friction"`
	ParticleLife     int           `yaml:"particle_life"` // Frames
	Palette          []types.Color `yaml:"-"`
}

// DefaultSpinConfig returns the tuning used on the projects page
func DefaultSpinConfig() SpinConfig {
	return SpinConfig{
		ClickBoost:         12,
		MaxVelocity:        50,
		Friction:           0.98,
		StopThreshold:      0.1,
		HighSpeedThreshold: 35,
		ReferenceFrame:     time.Second / 60,

		ParticleCount:    35,
		ParticleVelMin:   2,
		ParticleVelMax:   6,
		ParticleSizeMin:  3,
		ParticleSizeMax:  6,
		Gravity:          0.12,
		ParticleFriction: 0.98,
		ParticleLife:     60,
		Palette:          ConfettiPalette(),
	}
}

// ConfettiPalette is the fixed burst palette
func ConfettiPalette() []types.Color {
	return []types.Color{
		{R: 0x5B, G: 0x8D, B: 0xEF, A: 0xFF},
		{R: 0x7D, G: 0xD3, B: 0xC0, A: 0xFF},
		{R: 0xF7, G: 0xB9, B: 0x55, A: 0xFF},
		{R: 0xEF, G: 0x6B, B: 0x6B, A: 0xFF},
		{R: 0xC0, G: 0x84, B: 0xFC, A: 0xFF},
	}
}

// SpinState is the rotational state of the avatar. Angle is in degrees and
// grows without bound.
type SpinState struct {
	Angle           float64
	AngularVelocity float64
	ImageSwapped    bool
}

// SpinSystem spins the avatar and owns the one-shot confetti burst
type SpinSystem struct {
	cfg   SpinConfig
	state SpinState
	burst *entity.Burst
	rng   *rand.Rand

	originX, originY float64
}

func NewSpinSystem(cfg SpinConfig, seed uint64) *SpinSystem {
	if len(cfg.Palette) == 0 {
		cfg.Palette = ConfettiPalette()
	}
	if cfg.ReferenceFrame <= 0 {
		cfg.ReferenceFrame = time.Second / 60
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := &rand.PCGSource{}
	src.Seed(seed)
	return &SpinSystem{cfg: cfg, rng: rand.New(src)}
}

func (s *SpinSystem) Config() SpinConfig {
	return s.cfg
}

func (s *SpinSystem) State() SpinState {
	return s.state
}

// Spinning reports whether Advance has work to do
func (s *SpinSystem) Spinning() bool {
	return s.state.AngularVelocity > 0
}

// SetOrigin sets where the burst spawns, in surface pixels
func (s *SpinSystem) SetOrigin(x, y float64) {
	s.originX, s.originY = x, y
}

// ApplyImpulse adds boost to the angular velocity, capped at MaxVelocity
func (s *SpinSystem) ApplyImpulse(boost float64) {
	if boost < 0 {
		boost = 0
	}
	s.state.AngularVelocity = math.Min(s.state.AngularVelocity+boost, s.cfg.MaxVelocity)
}

// Advance integrates one frame of length dt. dt <= 0 counts as one reference
// frame. Returns true on the single frame that swaps the image and spawns
// the burst.
func (s *SpinSystem) Advance(dt time.Duration) bool {
	if s.state.AngularVelocity <= 0 {
		return false
	}

	k := 1.0
	if dt > 0 {
		k = float64(dt) / float64(s.cfg.ReferenceFrame)
	}

	s.state.Angle += s.state.AngularVelocity * k
	s.state.AngularVelocity *= math.Pow(s.cfg.Friction, k)

	triggered := false
	if !s.state.ImageSwapped && s.state.AngularVelocity >= s.cfg.HighSpeedThreshold {
		s.state.ImageSwapped = true
		s.SpawnBurst(s.originX, s.originY)
		triggered = true
	}

	if s.state.AngularVelocity < s.cfg.StopThreshold {
		s.state.AngularVelocity = 0
	}
	return triggered
}

// SpawnBurst replaces any current burst with a fresh one at (x, y)
func (s *SpinSystem) SpawnBurst(x, y float64) *entity.Burst {
	b := &entity.Burst{
		OriginX:   x,
		OriginY:   y,
		Particles: make([]entity.Particle, s.cfg.ParticleCount),
	}
	for i := range b.Particles {
		angle := s.rng.Float64() * math.Pi * 2
		vel := s.cfg.ParticleVelMin + s.rng.Float64()*(s.cfg.ParticleVelMax-s.cfg.ParticleVelMin)
		b.Particles[i] = entity.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * vel,
			VY:      math.Sin(angle) * vel,
			Size:    s.cfg.ParticleSizeMin + s.rng.Float64()*(s.cfg.ParticleSizeMax-s.cfg.ParticleSizeMin),
			Color:   s.cfg.Palette[s.rng.Intn(len(s.cfg.Palette))],
			Life:    s.cfg.ParticleLife,
			MaxLife: s.cfg.ParticleLife,
		}
	}
	s.burst = b
	return b
}

// Burst returns the live burst, or nil
func (s *SpinSystem) Burst() *entity.Burst {
	return s.burst
}

// AdvanceBurst moves every living particle one frame. When none are left
// the burst is dropped and false is returned.
func (s *SpinSystem) AdvanceBurst() bool {
	if s.burst == nil {
		return false
	}
	for i := range s.burst.Particles {
		p := &s.burst.Particles[i]
		if !p.Alive() {
			continue
		}
		p.X += p.VX
		p.Y += p.VY
		p.VY += s.cfg.Gravity
		p.VX *= s.cfg.ParticleFriction
		p.VY *= s.cfg.ParticleFriction
		p.Life--
	}
	if s.burst.Done() {
		s.burst = nil
		return false
	}
	return true
}

// Reset stops the spin and drops the burst. The swapped image stays swapped
// for the session.
func (s *SpinSystem) Reset() {
	s.state.AngularVelocity = 0
	s.burst = nil
}
