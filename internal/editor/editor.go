package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/brogergvhs/chanedit/internal/util"
)

const fallback = "vi"

// ExitError reports an editor that exited unsuccessfully. The edited buffer
// is discarded.
type ExitError struct {
	Editor string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("editor %q exited with status %d, no changes were applied", e.Editor, e.Code)
}

// Resolve picks the editor command: the explicit choice, then $VISUAL,
// then $EDITOR, then vi.
func Resolve(preferred string) string {
	for _, c := range []string{preferred, os.Getenv("VISUAL"), os.Getenv("EDITOR")} {
		if strings.TrimSpace(c) != "" {
			return strings.TrimSpace(c)
		}
	}
	return fallback
}

type Bridge struct {
	// Command may carry arguments, e.g. "code --wait". The file path is
	// appended as the last argument.
	Command string
	// Dir holds the temporary buffer; empty means the OS temp dir.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Log receives cleanup problems that do not fail the edit.
	Log Logger
}

type Logger interface {
	Warnf(string, ...any)
}

func New(command string) *Bridge {
	return &Bridge{
		Command: Resolve(command),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit hands text to the editor through a temp file and returns what was
// saved. The temp file is removed on every path. The editor is never
// killed: an interrupt is honoured once it exits.
func (b *Bridge) Edit(ctx context.Context, text string) (string, error) {
	f, err := os.CreateTemp(b.Dir, "chanedit-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()

	defer func() {
		if rerr := util.RemoveFile(path); rerr != nil && b.Log != nil {
			b.Log.Warnf("could not remove temp file %s: %v", path, rerr)
		}
	}()

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := b.EditFile(path); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited buffer: %w", err)
	}

	return string(out), nil
}

// EditFile opens path in the editor and blocks until it exits.
func (b *Bridge) EditFile(path string) error {
	args := strings.Fields(b.Command)
	if len(args) == 0 {
		args = []string{fallback}
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = b.Stdin
	cmd.Stdout = b.Stdout
	cmd.Stderr = b.Stderr

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return &ExitError{Editor: b.Command, Code: ee.ExitCode()}
		}
		return fmt.Errorf("failed to open editor %q: %w", b.Command, err)
	}

	return nil
}
