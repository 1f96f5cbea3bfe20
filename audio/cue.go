// Package audio plays short tones for game events.
package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cues is what components call when something worth a sound happens
type Cues interface {
	Eat()
	Burst()
	GameOver()
}

// Silent drops every cue
type Silent struct{}

func (Silent) Eat()      {}
func (Silent) Burst()    {}
func (Silent) GameOver() {}

const sampleRate = beep.SampleRate(44100)

// Player plays sine tones through the default speaker
type Player struct {
	log *slog.Logger
}

// NewPlayer opens the speaker. On failure the caller should fall back to Silent.
func NewPlayer(log *slog.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Player{log: log}, nil
}

func (p *Player) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		p.log.Debug("audio: tone", "freq", freq, "error", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (p *Player) Eat() {
	p.tone(880, 50*time.Millisecond)
}

func (p *Player) Burst() {
	p.tone(1320, 120*time.Millisecond)
}

func (p *Player) GameOver() {
	p.tone(220, 200*time.Millisecond)
}

// Close stops playback and releases the speaker
func (p *Player) Close() {
	speaker.Clear()
	speaker.Close()
}
