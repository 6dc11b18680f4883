// pkg/core/interface.go
package core

import "context"

// PackageManager defines what brew-track needs from the underlying package manager
type PackageManager interface {
	// Name returns the backend name (e.g., "brew")
	Name() string

	// Install installs packages, streaming the manager's output
	Install(ctx context.Context, pkgs []string, opts *InstallOptions) error

	// Info gets metadata for exactly the named packages
	Info(ctx context.Context, pkgs []string) ([]Package, error)

	// Deps returns the raw `<full-name>:<direct deps>` report for installed packages
	Deps(ctx context.Context) (string, error)

	// List lists the full names of installed packages
	List(ctx context.Context) ([]string, error)

	// Remove uninstalls packages, streaming the manager's output
	Remove(ctx context.Context, pkgs []string) error
}

// InstallOptions configures package installation
type InstallOptions struct {
	Args []string // Options passed through verbatim (e.g. --HEAD)
}
