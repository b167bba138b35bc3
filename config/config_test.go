package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.BaseInterval() != 400*time.Millisecond {
		t.Errorf("BaseInterval() = %v, want 400ms", cfg.BaseInterval())
	}
	if cfg.DeathDelay() != time.Second {
		t.Errorf("DeathDelay() = %v, want 1s", cfg.DeathDelay())
	}
	if cfg.InitialSpeed != 5 || cfg.SpeedStep != 1 || cfg.SteerPolicy != "first" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load on missing file failed: %v", err)
	}
	def := Default()
	if cfg.BaseIntervalMs != def.BaseIntervalMs || cfg.InitialSpeed != def.InitialSpeed ||
		cfg.Backend != def.Backend || cfg.Sound != def.Sound || cfg.Keys != nil {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.toml")
	data := `
initial_speed = 3
steer_policy = "last"
sound = false
backend = "tcell"
seed = 42

[keys]
w = "up"
space = "quit"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.InitialSpeed != 3 || cfg.SteerPolicy != "last" || cfg.Sound || cfg.Backend != "tcell" || cfg.Seed != 42 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Untouched keys keep defaults
	if cfg.BaseIntervalMs != 400 || cfg.DeathDelayMs != 1000 || cfg.Color != "auto" {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Keys["w"] != "up" || cfg.Keys["space"] != "quit" {
		t.Errorf("keys = %v", cfg.Keys)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"unknown key", "speeed = 3\n", "parse config"},
		{"bad syntax", "initial_speed = \n", "parse config"},
		{"zero speed", "initial_speed = 0\n", "initial_speed"},
		{"bad policy", "steer_policy = \"random\"\n", "steer_policy"},
		{"bad backend", "backend = \"curses\"\n", "backend"},
		{"bad color", "color = \"16\"\n", "color"},
		{"volume range", "volume = 101\n", "volume"},
		{"negative delay", "death_delay_ms = -5\n", "death_delay_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "snake.toml")
			if err := os.WriteFile(path, []byte(tt.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.InitialSpeed = 0
	cfg.Backend = "x"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "initial_speed") || !strings.Contains(msg, "backend") {
		t.Errorf("joined error missing parts: %q", msg)
	}
}

func TestMasterVolume(t *testing.T) {
	cfg := Default()
	cfg.Volume = 25
	if cfg.MasterVolume() != 0.25 {
		t.Errorf("MasterVolume() = %f", cfg.MasterVolume())
	}
}
