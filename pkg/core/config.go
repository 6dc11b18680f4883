// pkg/core/config.go
package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment overrides applied on top of the config file
const (
	EnvBrewPath  = "BREW_TRACK_BREW"
	EnvVerbosity = "BREW_TRACK_VERBOSITY"
	EnvNoColor   = "NO_COLOR"
)

// Config holds brew-track configuration
type Config struct {
	BrewPath  string `yaml:"brew_path"`
	Verbosity int    `yaml:"verbosity"`
	LogFile   string `yaml:"log_file"`
	NoColor   bool   `yaml:"no_color"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		BrewPath:  "", // Located at runtime
		Verbosity: 0,
		LogFile:   "", // Filled in from the state dir by the caller
		NoColor:   false,
	}
}

// LoadConfig loads configuration from path and applies environment overrides.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if path := os.Getenv(EnvBrewPath); path != "" {
		cfg.BrewPath = path
	}

	if v := os.Getenv(EnvVerbosity); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvVerbosity, v, err)
		}
		cfg.Verbosity = n
	}

	if os.Getenv(EnvNoColor) != "" {
		cfg.NoColor = true
	}

	return nil
}
