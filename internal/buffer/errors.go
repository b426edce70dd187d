package buffer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformed   = errors.New("malformed line")
	ErrEmptyName   = errors.New("empty channel name")
	ErrUnknownID   = errors.New("unknown channel id")
	ErrDuplicateID = errors.New("duplicate channel id")
)

// LineError points at one offending buffer line.
type LineError struct {
	Line   int
	Kind   error
	Detail string
}

func (e *LineError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Kind, e.Detail)
}

func (e *LineError) Unwrap() error { return e.Kind }

// ValidationError carries every problem found in a buffer.
type ValidationError struct {
	Problems []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	if len(e.Problems) == 1 {
		b.WriteString("invalid buffer: 1 problem")
	} else {
		fmt.Fprintf(&b, "invalid buffer: %d problems", len(e.Problems))
	}
	for _, p := range e.Problems {
		b.WriteString("\n  ")
		b.WriteString(p.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() []error { return e.Problems }
