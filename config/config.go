package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fixedstep/engine"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Loop    LoopConfig    `toml:"loop" yaml:"loop"`
	Render  RenderConfig  `toml:"render" yaml:"render"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Audio   AudioConfig   `toml:"audio" yaml:"audio"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type WindowConfig struct {
	Title  string `toml:"title" yaml:"title"`
	Author string `toml:"author" yaml:"author"`
	Width  int    `toml:"width" yaml:"width"`   // logical units
	Height int    `toml:"height" yaml:"height"` // logical units
}

type LoopConfig struct {
	UpdatesPerSecond float64 `toml:"updates_per_second" yaml:"updates_per_second"`
	FrameRate        float64 `toml:"frame_rate" yaml:"frame_rate"`
	IntervalMode     string  `toml:"interval_mode" yaml:"interval_mode"` // "millis" or "exact"
}

type RenderConfig struct {
	Background [4]float64 `toml:"background" yaml:"background"` // RGBA in [0,1]
	Player     [4]float64 `toml:"player" yaml:"player"`
}

type InputConfig struct {
	RepeatWindow time.Duration `toml:"repeat_window" yaml:"repeat_window"`
	ReleaseAfter time.Duration `toml:"release_after" yaml:"release_after"` // 0 disables synthesized key up
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"` // linear, in [0,1]
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // "json" or "console"
	File   string `toml:"file" yaml:"file"`     // empty disables logging
}

// Load reads a .toml, .yaml or .yml file on top of Default and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config extension %q", ErrInvalid, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "TEST GAME",
			Author: "User",
			Width:  800,
			Height: 600,
		},
		Loop: LoopConfig{
			UpdatesPerSecond: 8.0,
			FrameRate:        60,
			IntervalMode:     "millis",
		},
		Render: RenderConfig{
			Background: [4]float64{0, 1, 0, 1},
			Player:     [4]float64{1, 1, 1, 1},
		},
		Input: InputConfig{
			RepeatWindow: 100 * time.Millisecond,
			ReleaseAfter: 150 * time.Millisecond,
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks ranges and enumerations
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if !positive(c.Loop.FrameRate) {
		return fmt.Errorf("%w: frame_rate %v must be positive", ErrInvalid, c.Loop.FrameRate)
	}
	switch c.Loop.IntervalMode {
	case "millis", "exact":
	default:
		return fmt.Errorf("%w: interval_mode %q must be millis or exact", ErrInvalid, c.Loop.IntervalMode)
	}
	if _, err := engine.StepInterval(c.Loop.UpdatesPerSecond, engine.IntervalMode(c.Loop.IntervalMode)); err != nil {
		return fmt.Errorf("%w: updates_per_second: %w", ErrInvalid, err)
	}
	if err := checkColor("background", c.Render.Background); err != nil {
		return err
	}
	if err := checkColor("player", c.Render.Player); err != nil {
		return err
	}
	if c.Input.RepeatWindow < 0 || c.Input.ReleaseAfter < 0 {
		return fmt.Errorf("%w: input durations must not be negative", ErrInvalid)
	}
	if math.IsNaN(c.Audio.Volume) || c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio volume %v must be in [0,1]", ErrInvalid, c.Audio.Volume)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging format %q must be console or json", ErrInvalid, c.Logging.Format)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging level: %w", ErrInvalid, err)
	}
	return nil
}

func positive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

func checkColor(name string, c [4]float64) error {
	for i, v := range c {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %s color channel %d = %v, want [0,1]", ErrInvalid, name, i, v)
		}
	}
	return nil
}
