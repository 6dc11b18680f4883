// platform.go
package brew

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// ErrBrewNotFound indicates no Homebrew executable could be located
var ErrBrewNotFound = errors.New("homebrew not found")

// DefaultPrefix returns the Homebrew install prefix for a platform
func DefaultPrefix(goos, goarch string) (string, error) {
	switch goos {
	case "darwin":
		if goarch == "arm64" {
			return DefaultInstallPathARM, nil
		}
		return DefaultInstallPathIntel, nil
	case "linux":
		return DefaultInstallPathLinux, nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// LocateBinary finds the brew executable. An explicitly configured path wins,
// then PATH, then the platform's default prefix.
func LocateBinary(configured string) (string, error) {
	if configured != "" {
		if _, err := exec.LookPath(configured); err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrBrewNotFound, configured, err)
		}
		return configured, nil
	}

	if path, err := exec.LookPath(DefaultBinary); err == nil {
		return path, nil
	}

	prefix, err := DefaultPrefix(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBrewNotFound, err)
	}

	candidate := filepath.Join(prefix, "bin", DefaultBinary)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate, nil
	}

	return "", fmt.Errorf("%w: not in PATH or %s", ErrBrewNotFound, candidate)
}
