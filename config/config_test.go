package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Snake.CellSize != 40 {
		t.Errorf("expected cell size 40, got %d", cfg.Snake.CellSize)
	}
	if cfg.Snake.BaseTick != 125*time.Millisecond || cfg.Snake.MinTick != 67*time.Millisecond {
		t.Errorf("expected ticks 125ms/67ms, got %v/%v", cfg.Snake.BaseTick, cfg.Snake.MinTick)
	}
	if cfg.Spin.Friction != 0.98 || cfg.Spin.HighSpeedThreshold != 35 || cfg.Spin.ParticleCount != 35 {
		t.Errorf("unexpected spin defaults: %+v", cfg.Spin)
	}
	if cfg.Spin.ReferenceFrame != time.Second/60 {
		t.Errorf("expected reference frame %v, got %v", time.Second/60, cfg.Spin.ReferenceFrame)
	}
	if cfg.Overlay.Fade != 300*time.Millisecond || cfg.Avatar.Cooldown != 1500*time.Millisecond {
		t.Errorf("unexpected timing defaults: fade=%v cooldown=%v", cfg.Overlay.Fade, cfg.Avatar.Cooldown)
	}
	if cfg.Theme.System != "dark" || cfg.Motion.Reduced || cfg.Audio.Enabled {
		t.Errorf("unexpected page defaults: %+v %+v %+v", cfg.Theme, cfg.Motion, cfg.Audio)
	}
}

func TestLoadMergesFile(t *testing.T) {
	path := writeConfig(t, `
snake:
  cell_size: 20
spin:
  click_boost: 20
theme:
  system: light
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Snake.CellSize != 20 || cfg.Spin.ClickBoost != 20 || cfg.Theme.System != "light" {
		t.Errorf("expected overrides applied, got %+v", cfg)
	}
	if cfg.Snake.BaseTick != 125*time.Millisecond || cfg.Spin.MaxVelocity != 50 {
		t.Error("expected untouched fields to keep their defaults")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"zero cell", "snake:\n  cell_size: 0\n", "cell_size"},
		{"inverted ticks", "snake:\n  min_tick: 200ms\n", "min_tick"},
		{"friction", "spin:\n  friction: 1.5\n", "friction"},
		{"theme", "theme:\n  system: sepia\n", "theme.system"},
		{"particle range", "spin:\n  particle_vel_min: 9\n", "particle"},
		{"negative particle count", "spin:\n  particle_count: -1\n", "particle_count"},
		{"zero particle life", "spin:\n  particle_life: 0\n", "particle_life"},
		{"bad yaml", "snake: [\n", "parse config"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DP_THEME", "light")
	t.Setenv("DP_PREFS", "/tmp/elsewhere.yaml")
	t.Setenv("DP_REDUCED_MOTION", "true")
	t.Setenv("DP_AUDIO", "1")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Theme.System != "light" || cfg.Theme.PrefsPath != "/tmp/elsewhere.yaml" {
		t.Errorf("expected theme env applied, got %+v", cfg.Theme)
	}
	if !cfg.Motion.Reduced || !cfg.Audio.Enabled {
		t.Errorf("expected motion and audio env applied, got %+v %+v", cfg.Motion, cfg.Audio)
	}
}

func TestEnvRejectsBadBool(t *testing.T) {
	t.Setenv("DP_REDUCED_MOTION", "sometimes")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "DP_REDUCED_MOTION") {
		t.Errorf("expected DP_REDUCED_MOTION error, got %v", err)
	}
}

func TestInitAndSnakeOptions(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := Cfg().SnakeOptions(9)
	if opts.Seed != 9 || opts.CellSize != 40 || opts.PointsPerGear != 5 {
		t.Errorf("unexpected options %+v", opts)
	}
}
