package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/term-snake/parameter"
)

// Config is the user-tunable game setup, read from a TOML file
// Grid size is not configurable; it follows the terminal
type Config struct {
	BaseIntervalMs int    `toml:"base_interval_ms"`
	InitialSpeed   int    `toml:"initial_speed"`
	SpeedStep      int    `toml:"speed_step"`
	DeathDelayMs   int    `toml:"death_delay_ms"`
	SteerPolicy    string `toml:"steer_policy"`

	Sound  bool `toml:"sound"`
	Volume int  `toml:"volume"` // 0-100

	Backend string `toml:"backend"` // ansi | tcell
	Color   string `toml:"color"`   // auto | 256 | truecolor

	Seed  uint64 `toml:"seed"` // 0 picks a time-based seed
	Debug bool   `toml:"debug"`

	// Keys maps key names or characters to actions, overriding the default bindings
	Keys map[string]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BaseIntervalMs: int(parameter.BaseInterval / time.Millisecond),
		InitialSpeed:   parameter.InitialSpeed,
		SpeedStep:      parameter.SpeedStep,
		DeathDelayMs:   int(parameter.DeathDelay / time.Millisecond),
		SteerPolicy:    "first",
		Sound:          true,
		Volume:         int(parameter.AudioMasterVolume * 100),
		Backend:        "ansi",
		Color:          "auto",
	}
}

// Load reads path over the defaults; a missing file yields the defaults
// Unknown keys are rejected so typos surface at startup
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode applies TOML data on top of cfg and validates the result
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	var errs []error
	if c.BaseIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("base_interval_ms must be positive, got %d", c.BaseIntervalMs))
	}
	if c.InitialSpeed <= 0 {
		errs = append(errs, fmt.Errorf("initial_speed must be positive, got %d", c.InitialSpeed))
	}
	if c.SpeedStep < 0 {
		errs = append(errs, fmt.Errorf("speed_step must not be negative, got %d", c.SpeedStep))
	}
	if c.DeathDelayMs < 0 {
		errs = append(errs, fmt.Errorf("death_delay_ms must not be negative, got %d", c.DeathDelayMs))
	}
	if c.Volume < 0 || c.Volume > 100 {
		errs = append(errs, fmt.Errorf("volume must be within 0-100, got %d", c.Volume))
	}
	switch c.SteerPolicy {
	case "first", "last":
	default:
		errs = append(errs, fmt.Errorf("steer_policy must be \"first\" or \"last\", got %q", c.SteerPolicy))
	}
	switch c.Backend {
	case "ansi", "tcell":
	default:
		errs = append(errs, fmt.Errorf("backend must be \"ansi\" or \"tcell\", got %q", c.Backend))
	}
	switch c.Color {
	case "auto", "256", "truecolor":
	default:
		errs = append(errs, fmt.Errorf("color must be \"auto\", \"256\" or \"truecolor\", got %q", c.Color))
	}
	return errors.Join(errs...)
}

// BaseInterval is the tick length at speed 1
func (c *Config) BaseInterval() time.Duration {
	return time.Duration(c.BaseIntervalMs) * time.Millisecond
}

// DeathDelay is how long the final frame stays up after a death
func (c *Config) DeathDelay() time.Duration {
	return time.Duration(c.DeathDelayMs) * time.Millisecond
}

// MasterVolume returns Volume as a 0-1 gain
func (c *Config) MasterVolume() float64 {
	return float64(c.Volume) / 100
}
