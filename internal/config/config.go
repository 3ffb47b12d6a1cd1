package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Output formats understood by the run command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("config: invalid value")

// TUIConfig holds settings for the interactive board.
type TUIConfig struct {
	StepsPerTick int `mapstructure:"steps_per_tick"`
	TickMS       int `mapstructure:"tick_ms"`
}

// Config holds all runtime configuration for a knight session.
// Values are populated from .knight.yaml, KNIGHT_* env vars, and CLI flags.
type Config struct {
	StartX       int       `mapstructure:"start_x"`
	StartY       int       `mapstructure:"start_y"`
	Format       string    `mapstructure:"format"`
	TelemetryDir string    `mapstructure:"telemetry_dir"`
	Verbose      bool      `mapstructure:"verbose"`
	TUI          TUIConfig `mapstructure:"tui"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("start_x", 0)
	viper.SetDefault("start_y", 0)
	viper.SetDefault("format", FormatText)
	viper.SetDefault("telemetry_dir", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("tui.steps_per_tick", 1)
	viper.SetDefault("tui.tick_ms", 30)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that viper cannot constrain on its own.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatTOML:
	default:
		return fmt.Errorf("%w: format %q (want text, json or toml)", ErrInvalid, c.Format)
	}
	if c.TUI.StepsPerTick < 1 {
		return fmt.Errorf("%w: tui.steps_per_tick must be at least 1, got %d", ErrInvalid, c.TUI.StepsPerTick)
	}
	if c.TUI.TickMS < 1 {
		return fmt.Errorf("%w: tui.tick_ms must be at least 1, got %d", ErrInvalid, c.TUI.TickMS)
	}
	return nil
}
