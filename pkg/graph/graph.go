// Package graph builds the installed-package dependency graph reported by
// Homebrew and works out which installed packages nothing manual depends on.
package graph

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/arc-language/brew-track/pkg/pkgset"
)

// ErrMalformedReport indicates a dependency report line without a ':' separator
var ErrMalformedReport = errors.New("malformed dependency report")

// Deps maps a package full name to its direct dependencies, in reported order.
// Dependencies need not be keys themselves.
type Deps map[string][]string

// Parse reads the output of `brew deps --installed --1 --full-name`, one
// `<package>:<dep> <dep>...` line per installed package. Blank lines are skipped.
func Parse(report string) (Deps, error) {
	deps := make(Deps)

	scanner := bufio.NewScanner(strings.NewReader(report))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		pkg, rest, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedReport, lineNo, line)
		}

		edges := strings.Fields(rest)
		if edges == nil {
			edges = []string{}
		}
		deps[strings.TrimSpace(pkg)] = edges
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dependency report: %w", err)
	}

	return deps, nil
}

// Reachable returns every package required, directly or transitively, by one
// of roots. Roots and dependencies absent from deps are still marked but add
// no edges. The result lists packages in visit order.
func Reachable(deps Deps, roots []string) *pkgset.Set {
	visited := pkgset.New()

	for _, root := range roots {
		if visited.Has(root) {
			continue
		}

		stack := []string{root}
		for len(stack) > 0 {
			pkg := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !visited.Add(pkg) {
				continue
			}

			edges := deps[pkg]
			// push in reverse so the first dependency is visited first
			for i := len(edges) - 1; i >= 0; i-- {
				if !visited.Has(edges[i]) {
					stack = append(stack, edges[i])
				}
			}
		}
	}

	return visited
}

// Candidates returns the installed packages that are not reachable, keeping
// the order of installed.
func Candidates(installed []string, reachable *pkgset.Set) []string {
	var out []string
	for _, pkg := range installed {
		if !reachable.Has(pkg) {
			out = append(out, pkg)
		}
	}
	return out
}
