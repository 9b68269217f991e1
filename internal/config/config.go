// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/promptlab/internal/exercise"
)

// EnvConfigPath overrides the default config file location.
const EnvConfigPath = "PROMPTLAB_CONFIG"

// DefaultMinSubmitLength is the shortest input the TUI will submit for
// evaluation.
const DefaultMinSubmitLength = 5

// Config holds user settings. Every field has a usable default.
type Config struct {
	// DefaultExercise is the tab the practice screen opens on.
	DefaultExercise string `yaml:"default_exercise"`

	// MinSubmitLength disables evaluation for shorter input. This is a UI
	// policy; the evaluator itself accepts any text.
	MinSubmitLength int `yaml:"min_submit_length"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty disables logging
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultExercise: exercise.LevelBasic,
		MinSubmitLength: DefaultMinSubmitLength,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	// An explicit empty value means the built-in default.
	if cfg.DefaultExercise == "" {
		cfg.DefaultExercise = Default().DefaultExercise
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []string

	if c.DefaultExercise != "" {
		if _, ok := exercise.Lookup(c.DefaultExercise); !ok {
			errs = append(errs, fmt.Sprintf("default_exercise %q is not one of %s",
				c.DefaultExercise, strings.Join(exercise.IDs(), ", ")))
		}
	}
	if c.MinSubmitLength < 0 {
		errs = append(errs, fmt.Sprintf("min_submit_length must be >= 0, got %d", c.MinSubmitLength))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q must be debug, info, warn or error", c.Logging.Level))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// DefaultPath resolves the config file path in priority order:
// 1. PROMPTLAB_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/promptlab/config.yaml
// 3. ~/.config/promptlab/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "promptlab", "config.yaml"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
