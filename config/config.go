// Package config loads the effects configuration from YAML, with .env and
// environment overrides.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"dp-effects/game"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the program
type Config struct {
	Screen   ScreenConfig    `yaml:"screen"`
	Terminal TerminalConfig  `yaml:"terminal"`
	Snake    SnakeConfig     `yaml:"snake"`
	Overlay  OverlayConfig   `yaml:"overlay"`
	Avatar   AvatarConfig    `yaml:"avatar"`
	Spin     game.SpinConfig `yaml:"spin"`
	Theme    ThemeConfig     `yaml:"theme"`
	Motion   MotionConfig    `yaml:"motion"`
	Audio    AudioConfig     `yaml:"audio"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// TerminalConfig sets how many pixels one terminal cell represents.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// SnakeConfig holds grid and speed-curve parameters.
type SnakeConfig struct {
	CellSize      int           `yaml:"cell_size"`
	BaseTick      time.Duration `yaml:"base_tick"`
	MinTick       time.Duration `yaml:"min_tick"`
	SpeedStep     time.Duration `yaml:"speed_step"`
	PointsPerGear int           `yaml:"points_per_gear"`
}

type OverlayConfig struct {
	Fade           time.Duration `yaml:"fade"`
	ResizeDebounce time.Duration `yaml:"resize_debounce"`
}

type AvatarConfig struct {
	Cooldown time.Duration `yaml:"cooldown"`
	Wiggle   time.Duration `yaml:"wiggle"`
	Radius   float64       `yaml:"radius"`
}

// ThemeConfig holds the system theme and where the theme choice is kept.
type ThemeConfig struct {
	System    string `yaml:"system"`     // dark or light
	PrefsPath string `yaml:"prefs_path"` // file holding the single dp-theme key
}

type MotionConfig struct {
	Reduced bool `yaml:"reduced"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
}

var global *Config

// Load parses the embedded defaults, merges the file at path over them when
// path is non-empty, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv reads .env if present, then the DP_* variables
func (c *Config) applyEnv() error {
	// A missing .env is normal
	_ = godotenv.Load()

	if v := os.Getenv("DP_THEME"); v != "" {
		c.Theme.System = v
	}
	if v := os.Getenv("DP_PREFS"); v != "" {
		c.Theme.PrefsPath = v
	}
	if v := os.Getenv("DP_REDUCED_MOTION"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DP_REDUCED_MOTION: %w", err)
		}
		c.Motion.Reduced = b
	}
	if v := os.Getenv("DP_AUDIO"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DP_AUDIO: %w", err)
		}
		c.Audio.Enabled = b
	}
	return nil
}

// Validate rejects values the simulations cannot run with
func (c *Config) Validate() error {
	if c.Snake.CellSize <= 0 {
		return fmt.Errorf("snake.cell_size must be positive, got %d", c.Snake.CellSize)
	}
	if c.Snake.MinTick <= 0 || c.Snake.BaseTick < c.Snake.MinTick {
		return fmt.Errorf("snake: need 0 < min_tick <= base_tick, got %s and %s", c.Snake.MinTick, c.Snake.BaseTick)
	}
	if c.Snake.PointsPerGear <= 0 {
		return fmt.Errorf("snake.points_per_gear must be positive, got %d", c.Snake.PointsPerGear)
	}
	if c.Spin.Friction <= 0 || c.Spin.Friction >= 1 {
		return fmt.Errorf("spin.friction must be in (0,1), got %g", c.Spin.Friction)
	}
	if c.Spin.MaxVelocity <= 0 {
		return fmt.Errorf("spin.max_velocity must be positive, got %g", c.Spin.MaxVelocity)
	}
	if c.Spin.ParticleCount < 0 {
		return fmt.Errorf("spin.particle_count must not be negative, got %d", c.Spin.ParticleCount)
	}
	if c.Spin.ParticleLife <= 0 {
		return fmt.Errorf("spin.particle_life must be positive, got %d", c.Spin.ParticleLife)
	}
	if c.Spin.ParticleVelMax < c.Spin.ParticleVelMin || c.Spin.ParticleSizeMax < c.Spin.ParticleSizeMin {
		return fmt.Errorf("spin: particle ranges are inverted")
	}
	switch c.Theme.System {
	case "dark", "light":
	default:
		return fmt.Errorf("theme.system must be dark or light, got %q", c.Theme.System)
	}
	return nil
}

// Init loads the configuration into the package global
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Init not called")
	}
	return global
}

// SnakeOptions converts the snake section for game.NewGridSimulation
func (c *Config) SnakeOptions(seed uint64) game.Options {
	return game.Options{
		CellSize:      c.Snake.CellSize,
		BaseTick:      c.Snake.BaseTick,
		MinTick:       c.Snake.MinTick,
		SpeedStep:     c.Snake.SpeedStep,
		PointsPerGear: c.Snake.PointsPerGear,
		Seed:          seed,
	}
}
