// Package discordtest provides an in-memory discord.Client for tests.
package discordtest

import (
	"context"
	"net/http"
	"sync"

	"github.com/bwmarrin/discordgo"
)

type Edit struct {
	ChannelID string
	Name      string
}

// Fake serves a fixed channel list and records every ChannelEdit call.
type Fake struct {
	mu sync.Mutex

	Channels []*discordgo.Channel
	ListErr  error
	EditErr  map[string]error

	ListCalls int
	Edits     []Edit

	// OnEdit runs before each edit is applied, outside the lock.
	OnEdit func(channelID string)
}

func (f *Fake) GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error) {
	if err := requestContext(options).Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.ListCalls++
	if f.ListErr != nil {
		return nil, f.ListErr
	}

	out := make([]*discordgo.Channel, 0, len(f.Channels))
	for _, ch := range f.Channels {
		cp := *ch
		cp.GuildID = guildID
		out = append(out, &cp)
	}

	return out, nil
}

func (f *Fake) ChannelEdit(channelID string, data *discordgo.ChannelEdit, options ...discordgo.RequestOption) (*discordgo.Channel, error) {
	if f.OnEdit != nil {
		f.OnEdit(channelID)
	}
	if err := requestContext(options).Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.Edits = append(f.Edits, Edit{ChannelID: channelID, Name: data.Name})
	if err := f.EditErr[channelID]; err != nil {
		return nil, err
	}

	for _, ch := range f.Channels {
		if ch.ID == channelID {
			ch.Name = data.Name
			cp := *ch
			return &cp, nil
		}
	}

	return nil, &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound},
		Message:  &discordgo.APIErrorMessage{Code: 10003, Message: "Unknown Channel"},
	}
}

func requestContext(options []discordgo.RequestOption) context.Context {
	req, _ := http.NewRequest(http.MethodGet, "https://discord.invalid/", nil)
	cfg := &discordgo.RequestConfig{Request: req}
	for _, opt := range options {
		opt(cfg)
	}
	return cfg.Request.Context()
}

func Text(id, name, parent string, pos int) *discordgo.Channel {
	return &discordgo.Channel{ID: id, Name: name, ParentID: parent, Position: pos, Type: discordgo.ChannelTypeGuildText}
}

func Voice(id, name, parent string, pos int) *discordgo.Channel {
	return &discordgo.Channel{ID: id, Name: name, ParentID: parent, Position: pos, Type: discordgo.ChannelTypeGuildVoice}
}

func Category(id, name string, pos int) *discordgo.Channel {
	return &discordgo.Channel{ID: id, Name: name, Position: pos, Type: discordgo.ChannelTypeGuildCategory}
}
