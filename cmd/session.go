package cmd

import (
	"fmt"
	"os"

	"github.com/brogergvhs/chanedit/internal/apply"
	"github.com/brogergvhs/chanedit/internal/bulk"
	"github.com/brogergvhs/chanedit/internal/channels"
	"github.com/brogergvhs/chanedit/internal/config"
	"github.com/brogergvhs/chanedit/internal/discord"
	"github.com/brogergvhs/chanedit/internal/editor"
	"github.com/brogergvhs/chanedit/internal/ui"
)

func loadConfig() (*config.Config, string, error) {
	return config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		Token:        flagToken,
		GuildID:      flagGuildID,
		Editor:       flagEditor,
		Workers:      flagWorkers,
		Timeout:      flagTimeout,
	})
}

// selectedFilter builds the channel filter from the type flags, falling
// back to the profile's default_types, then to every type when defaultAll
// is set.
func selectedFilter(cfg *config.Config, defaultAll bool) (channels.Filter, error) {
	if flagAll {
		return channels.AllKinds(), nil
	}

	var f channels.Filter
	for k, v := range flagKinds {
		if *v {
			f.Add(k)
		}
	}
	if !f.Empty() {
		return f, nil
	}

	for _, name := range cfg.DefaultTypes {
		if name == "all" {
			return channels.AllKinds(), nil
		}
		k, ok := channels.ParseKind(name)
		if !ok {
			return f, fmt.Errorf("config: unknown channel type %q in default_types", name)
		}
		f.Add(k)
	}

	if f.Empty() && defaultAll {
		return channels.AllKinds(), nil
	}
	return f, nil
}

// newSession wires the configuration into a bulk.Session. The returned
// func releases the terminal and flushes the logger.
func newSession(defaultAll bool) (*bulk.Session, func(), error) {
	cfg, used, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Debugf("config: %s", used)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	timeout, _ := cfg.RequestTimeout()

	filter, err := selectedFilter(cfg, defaultAll)
	if err != nil {
		return nil, nil, err
	}

	client, err := discord.NewSession(discord.SessionOptions{
		Token:   cfg.Token,
		Timeout: timeout,
		Debug:   cfg.Debug,
		Logger:  logSvc,
	})
	if err != nil {
		return nil, nil, err
	}

	executor := apply.New(client, apply.Options{Workers: cfg.Workers, Logger: logSvc})
	confirmer := ui.NewPromptConfirmer()
	edit := editor.New(cfg.Editor)
	edit.Log = logSvc
	color := ui.IsTerminal(os.Stderr)

	sess := &bulk.Session{
		GuildID:   cfg.GuildID,
		Filter:    filter,
		Fetcher:   channels.NewFetcher(client),
		Editor:    edit,
		Confirmer: confirmer,
		Renamer:   executor,
		Out:       os.Stdout,
		Err:       os.Stderr,
		Color:     color,
		Log:       logSvc,
	}

	if color {
		sess.NewProgress = func(total int) func() {
			p := ui.NewProgress(os.Stderr, total)
			executor.SetProgress(p)
			return func() {
				p.Close()
				executor.SetProgress(nil)
			}
		}
	}

	return sess, func() {
		confirmer.Close()
		logSvc.Sync()
	}, nil
}
