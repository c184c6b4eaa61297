package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration
type Config struct {
	Palette map[string]string `yaml:"palette"` // chemical label -> colour
	Display DisplayConfig     `yaml:"display"`
	Solver  SolverConfig      `yaml:"solver"`
	Log     LogConfig         `yaml:"log"`
}

// DisplayConfig holds rendering settings
type DisplayConfig struct {
	FlasksPerRow int `yaml:"flasks_per_row"`
}

// SolverConfig holds search limits for solve, check and gen
type SolverConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	MaxStates int           `yaml:"max_states"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Output string `yaml:"output"` // stderr, stdout or a file path
}

// DefaultPalette maps the classic chemicals to background colours.
func DefaultPalette() map[string]string {
	return map[string]string{
		"AA": "1",  // red
		"BB": "4",  // blue
		"CC": "2",  // green
		"DD": "3",  // orange
		"EE": "11", // yellow
		"FF": "5",  // magenta
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills zero values.
// A palette given in the file replaces the default one entirely.
func (c *Config) applyDefaults() {
	if c.Palette == nil {
		c.Palette = DefaultPalette()
	}
	if c.Display.FlasksPerRow == 0 {
		c.Display.FlasksPerRow = 4
	}
	if c.Solver.Timeout == 0 {
		c.Solver.Timeout = 10 * time.Second
	}
	if c.Solver.MaxStates == 0 {
		c.Solver.MaxStates = 200_000
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stderr"
	}
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if c.Display.FlasksPerRow < 1 {
		return fmt.Errorf("display.flasks_per_row must be positive, got %d", c.Display.FlasksPerRow)
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("solver.timeout must not be negative, got %s", c.Solver.Timeout)
	}
	if c.Solver.MaxStates < 0 {
		return fmt.Errorf("solver.max_states must not be negative, got %d", c.Solver.MaxStates)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	for label, colour := range c.Palette {
		if strings.TrimSpace(colour) == "" {
			return fmt.Errorf("palette entry %q has no colour", label)
		}
	}
	return nil
}
