// errors.go
package brewtrack

import (
	"errors"
	"fmt"
)

var (
	// ErrUsage indicates the command line was malformed
	ErrUsage = errors.New("usage error")

	// ErrNoPackages indicates install was given options but no package names
	ErrNoPackages = fmt.Errorf("%w: no packages given", ErrUsage)
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
