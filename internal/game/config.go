package game

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds application options. Zero values select the defaults below.
type Config struct {
	// Board is the ID of the board table to generate.
	Board string `yaml:"board"`
	// Seed for random number generation. Used for reproducible boards.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`
	// OrderedNumbers keeps number tokens in rulebook order before repair.
	OrderedNumbers bool `yaml:"ordered_numbers"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Output is the path of a PNG file to write. Empty skips the image.
	Output string `yaml:"output"`
	// MaxAttempts caps generation attempts; 0 retries until success.
	MaxAttempts uint `yaml:"max_attempts"`
	// RepairIterations bounds each attempt's repair loop.
	RepairIterations int `yaml:"repair_iterations"`
	// Tables is a directory holding boards.json and tiles.json overrides.
	Tables string `yaml:"tables"`
	// Interactive opens the terminal view when stdout is a terminal.
	Interactive bool `yaml:"interactive"`
}

var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Board:            "base",
		LogLevel:         "info",
		RepairIterations: 10,
		Interactive:      true,
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks option ranges. The board ID is checked when tables load.
func (c Config) Validate() error {
	if c.Board == "" {
		return fmt.Errorf("%w: board is required", ErrInvalidConfig)
	}
	if c.RepairIterations < 0 {
		return fmt.Errorf("%w: repair_iterations %d is negative", ErrInvalidConfig, c.RepairIterations)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	name := strings.TrimSpace(c.LogLevel)
	if name == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return level, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return level, nil
}
