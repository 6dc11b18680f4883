// Package ui decides how terminal output is styled.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Styled reports whether output written to f should carry terminal styling
func Styled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if f == nil || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return false
	}

	return termenv.ColorProfile() != termenv.Ascii
}

// Bold renders s in bold when styled is set
func Bold(s string, styled bool) string {
	if !styled {
		return s
	}
	return pterm.Bold.Sprint(s)
}
