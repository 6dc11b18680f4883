// Package prompt asks the user yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads answers from in and writes questions to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter over the given streams
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// YesNo asks question until it gets y, yes, n, no or an empty line.
// An empty line, or end of input with nothing typed, selects def.
func (p *Prompter) YesNo(question string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}

	for {
		if _, err := fmt.Fprintf(p.out, "%s %s ", question, marker); err != nil {
			return false, err
		}

		line, err := p.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if errors.Is(err, io.EOF) {
			return def, nil
		}
	}
}
