package channels

import (
	"context"
	"fmt"

	"github.com/brogergvhs/chanedit/internal/discord"

	"github.com/bwmarrin/discordgo"
)

type Fetcher struct {
	client discord.Client
}

func NewFetcher(client discord.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch lists the guild's channels matching filter, sorted. An empty filter
// returns nothing without calling the API.
func (f *Fetcher) Fetch(ctx context.Context, guildID string, filter Filter) ([]Channel, error) {
	if filter.Empty() {
		return nil, nil
	}

	raw, err := f.client.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch channels of guild %s: %w", guildID, discord.Describe(err))
	}

	byID := make(map[string]*discordgo.Channel, len(raw))
	for _, ch := range raw {
		if ch != nil {
			byID[ch.ID] = ch
		}
	}

	out := make([]Channel, 0, len(raw))
	for _, ch := range raw {
		if ch == nil {
			continue
		}

		kind := KindOf(ch.Type)
		if !filter.Match(kind) {
			continue
		}

		c := Channel{
			ID:               ch.ID,
			Name:             ch.Name,
			Kind:             kind,
			ParentID:         ch.ParentID,
			Position:         ch.Position,
			CategoryPosition: ch.Position,
		}
		if parent, ok := byID[ch.ParentID]; ok && ch.ParentID != "" {
			c.ParentName = parent.Name
			c.CategoryPosition = parent.Position
		}

		out = append(out, c)
	}

	Sort(out)
	return out, nil
}
