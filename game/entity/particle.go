package entity

import (
	"dp-effects/game/types"
)

// Particle is one piece of confetti. Life counts down in frames; a particle
// with Life == 0 is inert for good.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   types.Color
	Life    int
	MaxLife int
}

// Alive reports whether the particle still moves and draws
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Opacity fades linearly with remaining life
func (p *Particle) Opacity() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Burst is a fixed set of particles spawned together
type Burst struct {
	OriginX, OriginY float64
	Particles        []Particle
}

// Living returns how many particles still have life left
func (b *Burst) Living() int {
	n := 0
	for i := range b.Particles {
		if b.Particles[i].Alive() {
			n++
		}
	}
	return n
}

// Done reports whether every particle is inert
func (b *Burst) Done() bool {
	return b.Living() == 0
}
