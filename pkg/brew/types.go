// types.go
package brew

import (
	"io"

	"github.com/rs/zerolog"
)

// Config configures the package manager
type Config struct {
	Binary string    // Default: located with LocateBinary
	Stdout io.Writer // Streamed command output (default: os.Stdout)
	Stderr io.Writer // Command diagnostics (default: os.Stderr)
	Logger *zerolog.Logger
}

// PackageManager handles Homebrew package operations
type PackageManager struct {
	client Runner
	config *Config
	logger zerolog.Logger
}

// InfoResponse is the top-level document of `brew info --json=v2`
type InfoResponse struct {
	Formulae []FormulaInfo `json:"formulae"`
	Casks    []CaskInfo    `json:"casks"`
}

// FormulaInfo contains metadata about a Homebrew formula
type FormulaInfo struct {
	Name        string          `json:"name"`
	FullName    string          `json:"full_name"`
	Tap         string          `json:"tap"`
	Description string          `json:"desc"`
	Homepage    string          `json:"homepage"`
	Versions    FormulaVersions `json:"versions"`
	Installed   []InstalledInfo `json:"installed"`
}

// FormulaVersions contains version information
type FormulaVersions struct {
	Stable string `json:"stable"`
	Head   string `json:"head"`
	Bottle bool   `json:"bottle"`
}

// InstalledInfo describes one installed keg of a formula
type InstalledInfo struct {
	Version               string `json:"version"`
	InstalledAsDependency bool   `json:"installed_as_dependency"`
	InstalledOnRequest    bool   `json:"installed_on_request"`
}

// CaskInfo contains metadata about a Homebrew cask
type CaskInfo struct {
	Token       string   `json:"token"`
	FullToken   string   `json:"full_token"`
	Tap         string   `json:"tap"`
	Names       []string `json:"name"`
	Description string   `json:"desc"`
	Version     string   `json:"version"`
	Installed   *string  `json:"installed"`
}
