// Package paths resolves where brew-track keeps its files.
//
// The config directory is $XDG_CONFIG_HOME/brew-track, else ~/.config/brew-track
// on every platform, and can be pinned with BREW_TRACK_CONFIG_DIR. Logs go under
// the XDG state directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the whole brew-track config directory
	EnvConfigDir = "BREW_TRACK_CONFIG_DIR"

	// EnvXDGConfigHome is the base config location
	EnvXDGConfigHome = "XDG_CONFIG_HOME"
)

const (
	// DirName is the subdirectory used under the base config and state dirs
	DirName = "brew-track"

	// ManualFileName holds the manually installed package names
	ManualFileName = "manual"

	// ConfigFileName is the optional yaml configuration
	ConfigFileName = "config.yaml"

	// LogFileName is the name of the log file
	LogFileName = "brew-track.log"
)

// Paths contains all the filesystem paths used by brew-track.
type Paths struct {
	// ConfigDir holds the manual list and config file
	ConfigDir string

	// StateDir holds the log file
	StateDir string
}

// New builds Paths from explicit directories.
func New(configDir, stateDir string) *Paths {
	return &Paths{
		ConfigDir: configDir,
		StateDir:  stateDir,
	}
}

// FromEnvironment resolves Paths once from the process environment.
func FromEnvironment() (*Paths, error) {
	xdg.Reload()

	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		base := os.Getenv(EnvXDGConfigHome)
		if base == "" {
			if xdg.Home == "" {
				return nil, fmt.Errorf("failed to determine home directory")
			}
			base = filepath.Join(xdg.Home, ".config")
		}
		configDir = filepath.Join(expandHome(base), DirName)
	} else {
		configDir = expandHome(configDir)
	}

	return New(configDir, filepath.Join(xdg.StateHome, DirName)), nil
}

// ManualFile returns the path of the manual package list
func (p *Paths) ManualFile() string {
	return filepath.Join(p.ConfigDir, ManualFileName)
}

// ConfigFile returns the path of the yaml configuration
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, ConfigFileName)
}

// LogFile returns the default log file path
func (p *Paths) LogFile() string {
	return filepath.Join(p.StateDir, LogFileName)
}

func expandHome(path string) string {
	if path == "~" {
		return xdg.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}
