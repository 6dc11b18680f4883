// client.go
package brew

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arc-language/brew-track/pkg/logging"
)

// Runner executes brew subcommands
type Runner interface {
	// Output runs the command and returns its captured stdout
	Output(ctx context.Context, args ...string) ([]byte, error)

	// Stream runs the command with its output going straight to the terminal
	Stream(ctx context.Context, args ...string) error
}

// CommandError reports a brew invocation that failed or exited non-zero
type CommandError struct {
	Args     []string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("brew %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status carried by a failed brew invocation
func ExitCode(err error) (int, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
		return cmdErr.ExitCode, true
	}
	return 0, false
}

// Client runs the Homebrew executable as a subprocess
type Client struct {
	binary string
	stdout io.Writer
	stderr io.Writer
	logger zerolog.Logger
}

// NewClient creates a client for the brew executable at binary
func NewClient(binary string, stdout, stderr io.Writer, logger zerolog.Logger) *Client {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Client{
		binary: binary,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Output runs brew with args and returns what it wrote to stdout
func (c *Client) Output(ctx context.Context, args ...string) ([]byte, error) {
	logging.LogCommand(c.logger, c.binary, args)

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		return nil, c.wrap(args, err)
	}

	return stdout.Bytes(), nil
}

// Stream runs brew with args, passing its output through
func (c *Client) Stream(ctx context.Context, args ...string) error {
	logging.LogCommand(c.logger, c.binary, args)

	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Run(); err != nil {
		return c.wrap(args, err)
	}
	return nil
}

func (c *Client) wrap(args []string, err error) error {
	cmdErr := &CommandError{Args: args, Err: err}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		cmdErr.ExitCode = exitErr.ExitCode()
	}

	c.logger.Debug().
		Err(err).
		Int("exitCode", cmdErr.ExitCode).
		Strs("args", args).
		Msg("brew command failed")

	return cmdErr
}
