// Package store persists the set of manually installed packages.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/brew-track/pkg/pkgset"
)

// Manual is the flat file of package full names the user asked for, one per line.
type Manual struct {
	path     string
	dirReady bool
}

// NewManual creates a store backed by the file at path
func NewManual(path string) *Manual {
	return &Manual{path: path}
}

// Path returns the backing file path
func (m *Manual) Path() string {
	return m.path
}

// Read returns the persisted names. A missing file is an empty set.
func (m *Manual) Read() (*pkgset.Set, error) {
	if err := m.ensureDir(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return pkgset.New(), nil
		}
		return nil, fmt.Errorf("reading manual packages: %w", err)
	}

	return pkgset.New(strings.Fields(string(data))...), nil
}

// Write replaces the file with every name in names, each newline-terminated.
// Callers pass the full set, never a delta.
func (m *Manual) Write(names *pkgset.Set) error {
	if err := m.ensureDir(); err != nil {
		return err
	}

	var b strings.Builder
	for _, name := range names.Items() {
		b.WriteString(name)
		b.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.path), "."+filepath.Base(m.path)+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(b.String()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing manual packages: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing manual packages: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, m.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing manual packages: %w", err)
	}

	return nil
}

func (m *Manual) ensureDir() error {
	if m.dirReady {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	m.dirReady = true
	return nil
}
