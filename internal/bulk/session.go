package bulk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/chanedit/internal/apply"
	"github.com/brogergvhs/chanedit/internal/buffer"
	"github.com/brogergvhs/chanedit/internal/channels"
	"github.com/brogergvhs/chanedit/internal/ui"
	"github.com/brogergvhs/chanedit/internal/util"
)

var (
	ErrNoFilter     = errors.New("no channel type selected: pass --all or at least one of --text, --voice, --forum, --stage, --news, --category")
	ErrPartialApply = errors.New("some channels could not be renamed")
)

type Fetcher interface {
	Fetch(ctx context.Context, guildID string, filter channels.Filter) ([]channels.Channel, error)
}

type Editor interface {
	Edit(ctx context.Context, text string) (string, error)
}

type Confirmer interface {
	Confirm(label string) (bool, error)
}

type Renamer interface {
	Apply(ctx context.Context, changes buffer.ChangeSet) []apply.Result
}

// Session runs one export, apply or edit pass against a guild.
type Session struct {
	GuildID     string
	Filter      channels.Filter
	AutoConfirm bool

	Fetcher   Fetcher
	Editor    Editor
	Confirmer Confirmer
	Renamer   Renamer

	// Out receives the exported buffer, Err everything meant for the operator.
	Out   io.Writer
	Err   io.Writer
	Color bool

	Log *ui.Logger

	// NewProgress, when set, is called with the number of renames about to
	// be issued; the returned func is called once they are done.
	NewProgress func(total int) func()
}

func (s *Session) fetch(ctx context.Context) ([]channels.Channel, error) {
	if s.Filter.Empty() {
		return nil, ErrNoFilter
	}

	s.Log.Infof("Fetching %s channels of guild %s...", s.Filter, s.GuildID)
	list, err := s.Fetcher.Fetch(ctx, s.GuildID, s.Filter)
	if err != nil {
		return nil, err
	}
	s.Log.Debugf("fetched %s", util.Count(len(list), "channel"))

	return list, nil
}

// Export writes the buffer for the selected channels to w.
func (s *Session) Export(ctx context.Context, w io.Writer, opts buffer.Options) error {
	list, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(s.Err, "No channels found")
		return nil
	}

	return buffer.Format(w, list, opts)
}

// Apply reads an edited buffer and renames what changed.
func (s *Session) Apply(ctx context.Context, text string) error {
	list, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(s.Err, "No channels found")
		return nil
	}

	return s.applyAgainst(ctx, list, text)
}

// Edit opens the buffer in the editor and applies the saved result.
func (s *Session) Edit(ctx context.Context) error {
	list, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(s.Err, "No channels found")
		return nil
	}

	text, err := buffer.FormatString(list, buffer.Options{Annotate: true})
	if err != nil {
		return err
	}

	edited, err := s.Editor.Edit(ctx, text)
	if err != nil {
		return err
	}

	return s.applyAgainst(ctx, list, edited)
}

func (s *Session) applyAgainst(ctx context.Context, list []channels.Channel, text string) error {
	changes, err := buffer.Changes(strings.NewReader(text), list)
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		fmt.Fprintln(s.Err, "No changes to apply")
		return nil
	}

	table := ui.NewChangeTable(changes, s.Color)

	if !s.AutoConfirm {
		table.Render(s.Err, changes)

		ok, err := s.Confirmer.Confirm(fmt.Sprintf("Apply %s", util.Count(len(changes), "rename")))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.Err, "Aborted. No channels were renamed.")
			return nil
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	var results []apply.Result
	func() {
		if s.NewProgress != nil {
			done := s.NewProgress(len(changes))
			defer done()
		}
		results = s.Renamer.Apply(ctx, changes)
	}()

	return s.report(table, results)
}

func (s *Session) report(table *ui.ChangeTable, results []apply.Result) error {
	for _, r := range results {
		if r.OK() {
			fmt.Fprintf(s.Err, "%s %s\n", table.Prefix("Renamed:"), table.Row(r.Change))
			continue
		}
		fmt.Fprintf(s.Err, "%s %s\n    %v\n", table.Failure("Failed: "), table.Row(r.Change), r.Err)
	}

	ok, failed := apply.Summarize(results)
	fmt.Fprintf(s.Err, "\n%s renamed, %d failed.\n", util.Count(ok, "channel"), failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPartialApply, failed, len(results))
	}
	return nil
}
