// manager.go
package brew

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewPackageManager creates a new Homebrew package manager
func NewPackageManager(cfg *Config) (*PackageManager, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	binary, err := LocateBinary(cfg.Binary)
	if err != nil {
		return nil, err
	}
	cfg.Binary = binary

	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}

	logger := log.With().Str("component", "brew").Logger()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	pm := newPackageManager(cfg, NewClient(cfg.Binary, cfg.Stdout, cfg.Stderr, logger), logger)
	pm.logger.Debug().Str("binary", cfg.Binary).Msg("Initialized Homebrew PackageManager")

	return pm, nil
}

func newPackageManager(cfg *Config, runner Runner, logger zerolog.Logger) *PackageManager {
	return &PackageManager{
		client: runner,
		config: cfg,
		logger: logger,
	}
}

// Install runs `brew install <opts> <formulae>` with output streamed
func (pm *PackageManager) Install(ctx context.Context, opts []string, formulae []string) error {
	if len(formulae) == 0 {
		return fmt.Errorf("at least one formula is required")
	}

	args := append([]string{"install"}, opts...)
	args = append(args, formulae...)

	pm.logger.Info().Strs("formulae", formulae).Strs("options", opts).Msg("Installing")
	return pm.client.Stream(ctx, args...)
}

// GetFormulaInfo retrieves structured metadata for exactly the given names
func (pm *PackageManager) GetFormulaInfo(ctx context.Context, names []string) (*InfoResponse, error) {
	if len(names) == 0 {
		return &InfoResponse{}, nil
	}

	args := append([]string{"info", "--json=" + InfoJSONVersion}, names...)
	out, err := pm.client.Output(ctx, args...)
	if err != nil {
		return nil, err
	}

	var info InfoResponse
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	pm.logger.Debug().
		Int("formulae", len(info.Formulae)).
		Int("casks", len(info.Casks)).
		Msg("Fetched package info")

	return &info, nil
}

// Deps returns the raw `<full-name>:<deps...>` report for every installed package
func (pm *PackageManager) Deps(ctx context.Context) (string, error) {
	out, err := pm.client.Output(ctx, "deps", "--installed", "--1", "--full-name")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// List returns the full names of all installed packages
func (pm *PackageManager) List(ctx context.Context) ([]string, error) {
	out, err := pm.client.Output(ctx, "list", "--full-name")
	if err != nil {
		return nil, err
	}
	return strings.Fields(string(out)), nil
}

// Uninstall runs `brew rm <names>` with output streamed
func (pm *PackageManager) Uninstall(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	pm.logger.Info().Strs("packages", names).Msg("Removing")
	return pm.client.Stream(ctx, append([]string{"rm"}, names...)...)
}
