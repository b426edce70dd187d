package apply

import (
	"context"
	"fmt"
	"sync"

	"github.com/brogergvhs/chanedit/internal/buffer"
	"github.com/brogergvhs/chanedit/internal/discord"

	"github.com/bwmarrin/discordgo"
)

const DefaultWorkers = 4

// Result is the outcome of one rename. Err is nil on success.
type Result struct {
	Change buffer.Change
	Err    error
}

func (r Result) OK() bool { return r.Err == nil }

type Progress interface {
	Increment(failed bool)
}

type Logger interface {
	Debugf(string, ...any)
}

type Executor struct {
	client   discord.Client
	workers  int
	progress Progress
	log      Logger
}

type Options struct {
	Workers  int
	Progress Progress
	Logger   Logger
}

func New(client discord.Client, opts Options) *Executor {
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	return &Executor{
		client:   client,
		workers:  opts.Workers,
		progress: opts.Progress,
		log:      opts.Logger,
	}
}

// SetProgress swaps the progress sink between runs.
func (e *Executor) SetProgress(p Progress) {
	e.progress = p
}

// Apply renames every change independently. A failure never stops the
// others and nothing is rolled back. Results keep the order of changes.
// Changes not yet started when ctx is cancelled fail with ctx's error.
func (e *Executor) Apply(ctx context.Context, changes buffer.ChangeSet) []Result {
	results := make([]Result, len(changes))

	sem := make(chan struct{}, e.workers)
	var wg sync.WaitGroup

	for i, c := range changes {
		results[i].Change = c

		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
			e.done(results[i])
			continue
		}

		i, c := i, c
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			results[i].Err = e.rename(ctx, c)
			e.done(results[i])
		}()
	}
	wg.Wait()

	return results
}

func (e *Executor) rename(ctx context.Context, c buffer.Change) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.log != nil {
		e.log.Debugf("renaming channel %s: %q -> %q", c.ID, c.Old, c.New)
	}

	_, err := e.client.ChannelEdit(c.ID, &discordgo.ChannelEdit{Name: c.New}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("rename channel %s: %w", c.ID, discord.Describe(err))
	}

	return nil
}

func (e *Executor) done(r Result) {
	if e.progress != nil {
		e.progress.Increment(!r.OK())
	}
}

// Summarize counts successes and failures.
func Summarize(results []Result) (succeeded, failed int) {
	for _, r := range results {
		if r.OK() {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}
