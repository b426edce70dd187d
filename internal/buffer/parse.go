package buffer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
)

type Line struct {
	Number int
	ID     string
	Name   string
}

// Parse reads every non-comment line. It keeps going after bad lines so
// all problems can be reported at once; the returned lines are the ones
// that parsed.
func Parse(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lines []Line
		errs  error
		n     int
	)

	for sc.Scan() {
		n++
		raw := strings.TrimSuffix(sc.Text(), "\r")

		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		l, err := parseLine(n, raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		lines = append(lines, l)
	}

	if err := sc.Err(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("read buffer: %w", err))
	}

	return lines, errs
}

func parseLine(n int, raw string) (Line, error) {
	fields := strings.SplitN(raw, Delimiter, 3)
	if len(fields) < 2 {
		return Line{}, &LineError{Line: n, Kind: ErrMalformed, Detail: fmt.Sprintf("no tab between channel id and name in %q", raw)}
	}

	id := strings.TrimSpace(fields[0])
	if !isSnowflake(id) {
		return Line{}, &LineError{Line: n, Kind: ErrMalformed, Detail: fmt.Sprintf("channel id %q is not a number", id)}
	}

	if len(fields) == 3 {
		rest := strings.TrimSpace(fields[2])
		if rest != "" && !strings.HasPrefix(rest, "#") {
			return Line{}, &LineError{Line: n, Kind: ErrMalformed, Detail: fmt.Sprintf("unexpected text %q after the name", rest)}
		}
	}

	name := strings.TrimSpace(fields[1])
	if name == "" {
		return Line{}, &LineError{Line: n, Kind: ErrEmptyName, Detail: "channel " + id}
	}

	return Line{Number: n, ID: id, Name: name}, nil
}

func isSnowflake(s string) bool {
	if s == "" || len(s) > 20 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
