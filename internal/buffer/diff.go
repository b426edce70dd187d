package buffer

import (
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/chanedit/internal/channels"

	"go.uber.org/multierr"
)

// Change is a single rename: the only thing ever sent to the API.
type Change struct {
	ID  string
	Old string
	New string
}

type ChangeSet []Change

// Diff validates lines against the fetched channels and returns the renames
// they ask for, in channel order. Channels without a line are left alone.
func Diff(list []channels.Channel, lines []Line) (ChangeSet, error) {
	known := make(map[string]bool, len(list))
	for _, c := range list {
		known[c.ID] = true
	}

	var errs error
	seen := make(map[string]int, len(lines))
	desired := make(map[string]string, len(lines))

	for _, l := range lines {
		if first, dup := seen[l.ID]; dup {
			errs = multierr.Append(errs, &LineError{
				Line:   l.Number,
				Kind:   ErrDuplicateID,
				Detail: fmt.Sprintf("channel %s is already listed on line %d", l.ID, first),
			})
			continue
		}
		seen[l.ID] = l.Number

		if !known[l.ID] {
			errs = multierr.Append(errs, &LineError{
				Line:   l.Number,
				Kind:   ErrUnknownID,
				Detail: fmt.Sprintf("channel %s is not among the fetched channels", l.ID),
			})
			continue
		}
		desired[l.ID] = l.Name
	}

	if errs != nil {
		return nil, errs
	}

	var set ChangeSet
	for _, c := range list {
		name, ok := desired[c.ID]
		if !ok {
			continue
		}
		// exported names are trimmed on the way back in
		if name == c.Name || name == strings.TrimSpace(c.Name) {
			continue
		}
		set = append(set, Change{ID: c.ID, Old: c.Name, New: name})
	}

	return set, nil
}

// Changes parses r and diffs it against list. Any problem, parse or
// validation, yields a *ValidationError listing all of them.
func Changes(r io.Reader, list []channels.Channel) (ChangeSet, error) {
	lines, perr := Parse(r)
	set, derr := Diff(list, lines)

	if err := multierr.Combine(perr, derr); err != nil {
		return nil, &ValidationError{Problems: multierr.Errors(err)}
	}

	return set, nil
}
