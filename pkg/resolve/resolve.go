// Package resolve maps user supplied package names to Homebrew full names.
package resolve

import (
	"context"
	"fmt"

	"github.com/arc-language/brew-track/pkg/core"
	"github.com/arc-language/brew-track/pkg/pkgset"
)

// Infoer looks up package metadata
type Infoer interface {
	Info(ctx context.Context, pkgs []string) ([]core.Package, error)
}

type rename struct {
	from, to string
}

// FullNames replaces every short name in set that Homebrew knows with its
// full name. Names without a matching record are left as they are. If the
// lookup fails the set is not modified.
func FullNames(ctx context.Context, infoer Infoer, set *pkgset.Set) error {
	if set.Len() == 0 {
		return nil
	}

	pkgs, err := infoer.Info(ctx, set.Items())
	if err != nil {
		return fmt.Errorf("resolving package names: %w", err)
	}

	var renames []rename
	for _, pkg := range pkgs {
		if pkg.FullName == "" || !set.Has(pkg.Name) {
			continue
		}
		renames = append(renames, rename{from: pkg.Name, to: pkg.FullName})
	}

	for _, r := range renames {
		set.Replace(r.from, r.to)
	}

	return nil
}
