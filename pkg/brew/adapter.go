// adapter.go
package brew

import (
	"context"

	"github.com/arc-language/brew-track/pkg/core"
)

// Adapter adapts the brew package manager to the core interface
type Adapter struct {
	pm *PackageManager
}

// NewAdapter creates a new Brew adapter
func NewAdapter(cfg *Config) (*Adapter, error) {
	pm, err := NewPackageManager(cfg)
	if err != nil {
		return nil, err
	}
	return &Adapter{pm: pm}, nil
}

// Name returns the backend name
func (a *Adapter) Name() string {
	return "brew"
}

// Install installs packages, passing opts through to brew untouched
func (a *Adapter) Install(ctx context.Context, pkgs []string, opts *core.InstallOptions) error {
	if opts == nil {
		opts = &core.InstallOptions{}
	}
	return a.pm.Install(ctx, opts.Args, pkgs)
}

// Info gets metadata for the named formulae and casks
func (a *Adapter) Info(ctx context.Context, pkgs []string) ([]core.Package, error) {
	info, err := a.pm.GetFormulaInfo(ctx, pkgs)
	if err != nil {
		return nil, err
	}

	out := make([]core.Package, 0, len(info.Formulae)+len(info.Casks))
	for _, f := range info.Formulae {
		out = append(out, core.Package{
			Name:        f.Name,
			FullName:    f.FullName,
			Version:     f.Versions.Stable,
			Description: f.Description,
			Installed:   len(f.Installed) > 0,
		})
	}
	for _, c := range info.Casks {
		out = append(out, core.Package{
			Name:        c.Token,
			FullName:    c.FullToken,
			Version:     c.Version,
			Description: c.Description,
			Installed:   c.Installed != nil,
			Cask:        true,
		})
	}

	return out, nil
}

// Deps returns the installed dependency report
func (a *Adapter) Deps(ctx context.Context) (string, error) {
	return a.pm.Deps(ctx)
}

// List lists installed packages by full name
func (a *Adapter) List(ctx context.Context) ([]string, error) {
	return a.pm.List(ctx)
}

// Remove uninstalls packages
func (a *Adapter) Remove(ctx context.Context, pkgs []string) error {
	return a.pm.Uninstall(ctx, pkgs)
}
