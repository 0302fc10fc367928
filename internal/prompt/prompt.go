// Copyright (c) 2026 Keymaster Team
// Envalidator - environment file validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package prompt implements the blocking yes/no confirmation used before
// destructive file operations.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toeirei/envalidator/internal/i18n"
	"golang.org/x/term"
)

// ErrNoInput is returned when the input stream ends before a usable
// answer arrives. It is distinct from an explicit "no" so batch
// invocations fail predictably instead of hanging on a prompt.
var ErrNoInput = errors.New("confirmation input closed")

// Confirmer reads confirmation answers from in and writes prompts to out.
type Confirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Confirmer over the given reader and writer.
func New(in io.Reader, out io.Writer) *Confirmer {
	return &Confirmer{in: bufio.NewReader(in), out: out}
}

// Confirm displays message with a [y/N] suffix and blocks for an answer.
// Case-insensitive y/yes confirms; n/no or a bare Enter declines; any
// other answer re-prompts. End of input yields ErrNoInput.
func (c *Confirmer) Confirm(message string) (bool, error) {
	for {
		fmt.Fprintf(c.out, "%s [y/N]: ", message)
		raw, err := c.in.ReadString('\n')
		answer := strings.TrimSpace(strings.ToLower(raw))

		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		case "":
			if err != nil {
				return false, ErrNoInput
			}
			return false, nil
		default:
			fmt.Fprintln(c.out, i18n.T("prompt.invalid_answer"))
			if err != nil {
				return false, ErrNoInput
			}
		}
	}
}

// IsTerminal reports whether r reads from a terminal, so callers can
// check the same stream a Confirmer will consume. Readers that are not
// files (redirected streams, test buffers) are never terminals.
// Non-interactive callers should pass --approve instead of answering
// prompts.
func IsTerminal(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
