package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// PromptConfirmer asks a yes/no question on the controlling terminal, so
// it still works when stdin carries the buffer.
type PromptConfirmer struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
	tty    *os.File
}

func NewPromptConfirmer() *PromptConfirmer {
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		return &PromptConfirmer{Stdin: tty, Stdout: tty, tty: tty}
	}
	return &PromptConfirmer{Stdin: os.Stdin, Stdout: os.Stderr}
}

// Confirm defaults to no. Anything but an explicit yes rejects.
func (c *PromptConfirmer) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     c.Stdin,
		Stdout:    c.Stdout,
	}

	_, err := prompt.Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	case errors.Is(err, promptui.ErrInterrupt), errors.Is(err, promptui.ErrEOF):
		return false, fmt.Errorf("confirmation cancelled (use --yes to skip it)")
	default:
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
}

func (c *PromptConfirmer) Close() {
	if c.tty != nil {
		_ = c.tty.Close()
	}
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
