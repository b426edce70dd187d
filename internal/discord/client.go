package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/brogergvhs/chanedit/internal/util"

	"github.com/bwmarrin/discordgo"
)

// Client is the part of the Discord REST API the tool talks to.
// *discordgo.Session satisfies it.
type Client interface {
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	ChannelEdit(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

var _ Client = (*discordgo.Session)(nil)

type Logger interface {
	Debugf(string, ...any)
	Infof(string, ...any)
	Errorf(string, ...any)
}

type SessionOptions struct {
	Token   string
	Timeout time.Duration
	Debug   bool
	Logger  Logger
}

// NewSession builds a REST-only session. The gateway is never opened.
func NewSession(opts SessionOptions) (*discordgo.Session, error) {
	token := strings.TrimSpace(strings.TrimPrefix(opts.Token, "Bot "))
	if token == "" {
		return nil, fmt.Errorf("discord: empty bot token")
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord: create session: %w", err)
	}

	// rate limit waits stay with discordgo, other failures are not retried
	s.MaxRestRetries = 0
	s.ShouldRetryOnRateLimit = true

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     opts.Timeout,
		DebugLogger: opts.Logger,
	})
	if err != nil {
		return nil, err
	}
	s.Client = client

	if opts.Logger != nil && opts.Debug {
		s.LogLevel = discordgo.LogInformational
		discordgo.Logger = func(level, _ int, format string, a ...interface{}) {
			switch level {
			case discordgo.LogError, discordgo.LogWarning:
				opts.Logger.Errorf("discordgo: "+format, a...)
			default:
				opts.Logger.Debugf("discordgo: "+format, a...)
			}
		}
	}

	return s, nil
}
