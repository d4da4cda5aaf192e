package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/xll-gen/aoc2018/internal/overlap"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "aoc2018.yaml"

// Config represents the top-level configuration structure parsed from aoc2018.yaml.
// Every section is optional; ApplyDefaults fills in what is missing.
type Config struct {
	// Grid configures the coverage grid used by the overlap puzzle.
	Grid GridConfig `yaml:"grid"`
	// Frequency configures the frequency puzzle.
	Frequency FrequencyConfig `yaml:"frequency"`
	// Coords configures the coordinate area puzzle.
	Coords CoordsConfig `yaml:"coords"`
	// Steps configures the step scheduling puzzle.
	Steps StepsConfig `yaml:"steps"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Output controls how results are printed.
	Output OutputConfig `yaml:"output"`
}

// GridConfig selects the coverage grid.
type GridConfig struct {
	// Mode is "dense" (fixed Size×Size matrix, claims outside it are rejected)
	// or "sparse" (coordinate set, unbounded).
	Mode string `yaml:"mode"`
	// Size is the side length of the dense grid, at most overlap.MaxSize.
	Size int `yaml:"size"`
}

// FrequencyConfig bounds the repeat search.
type FrequencyConfig struct {
	// MaxPasses is the number of passes over the input before giving up.
	MaxPasses int `yaml:"max_passes"`
}

// CoordsConfig configures the coordinate area puzzle.
type CoordsConfig struct {
	// SafeDistance is the exclusive limit on the total distance to every coordinate.
	SafeDistance int `yaml:"safe_distance"`
}

// StepsConfig configures the parallel step schedule.
type StepsConfig struct {
	// Workers is the number of steps worked on at once.
	Workers int `yaml:"workers"`
	// BaseDuration is added to every step's duration. Zero is allowed, so
	// it is only defaulted when the key is absent.
	BaseDuration int `yaml:"base_duration"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty means stderr.
	Path string `yaml:"path"`
}

// OutputConfig configures result printing.
type OutputConfig struct {
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{Steps: StepsConfig{BaseDuration: 60}}
	ApplyDefaults(cfg)
	return cfg
}

// Load reads and parses the YAML file at path, then applies defaults and
// validates the result. When optional is set, a missing file yields the
// default configuration instead of an error.
func Load(path string, optional bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults and validates it.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	ApplyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for unsupported values.
func Validate(config *Config) error {
	switch config.Grid.Mode {
	case "dense":
		if config.Grid.Size <= 0 {
			return fmt.Errorf("grid size must be positive, got %d", config.Grid.Size)
		}
		if config.Grid.Size > overlap.MaxSize {
			return fmt.Errorf("grid size must not exceed %d, got %d", overlap.MaxSize, config.Grid.Size)
		}
	case "sparse":
		// ok
	default:
		return fmt.Errorf("invalid grid mode: %s (allowed: dense, sparse)", config.Grid.Mode)
	}

	if config.Frequency.MaxPasses < 0 {
		return fmt.Errorf("frequency max_passes must not be negative, got %d", config.Frequency.MaxPasses)
	}

	if config.Coords.SafeDistance <= 0 {
		return fmt.Errorf("coords safe_distance must be positive, got %d", config.Coords.SafeDistance)
	}

	if config.Steps.Workers <= 0 {
		return fmt.Errorf("steps workers must be positive, got %d", config.Steps.Workers)
	}
	if config.Steps.BaseDuration < 0 {
		return fmt.Errorf("steps base_duration must not be negative, got %d", config.Steps.BaseDuration)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
	}

	switch config.Output.Color {
	case "auto", "always", "never":
		// ok
	default:
		return fmt.Errorf("invalid output color: %s (allowed: auto, always, never)", config.Output.Color)
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
func ApplyDefaults(config *Config) {
	if config.Grid.Mode == "" {
		config.Grid.Mode = "dense"
	}
	if config.Grid.Size == 0 {
		config.Grid.Size = 1000
	}
	if config.Frequency.MaxPasses == 0 {
		config.Frequency.MaxPasses = 1000
	}
	if config.Coords.SafeDistance == 0 {
		config.Coords.SafeDistance = 10000
	}
	if config.Steps.Workers == 0 {
		config.Steps.Workers = 5
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "warn"
	}
	if config.Output.Color == "" {
		config.Output.Color = "auto"
	}
}
