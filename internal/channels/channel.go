package channels

import (
	"github.com/bwmarrin/discordgo"
)

type Kind int

const (
	KindOther Kind = iota
	KindText
	KindVoice
	KindForum
	KindStage
	KindNews
	KindCategory
)

// Kinds lists every selectable kind in flag order.
var Kinds = []Kind{KindText, KindVoice, KindForum, KindStage, KindNews, KindCategory}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindVoice:
		return "voice"
	case KindForum:
		return "forum"
	case KindStage:
		return "stage"
	case KindNews:
		return "news"
	case KindCategory:
		return "category"
	default:
		return "other"
	}
}

func (k Kind) Icon() string {
	switch k {
	case KindText:
		return "📝"
	case KindVoice:
		return "🔊"
	case KindForum:
		return "💬"
	case KindStage:
		return "🎭"
	case KindNews:
		return "📣"
	case KindCategory:
		return "📁"
	default:
		return "❓"
	}
}

// VoiceLike reports kinds listed after text-like channels inside a category.
func (k Kind) VoiceLike() bool {
	return k == KindVoice || k == KindStage
}

func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.String() == s {
			return k, true
		}
	}
	return KindOther, false
}

func KindOf(t discordgo.ChannelType) Kind {
	switch t {
	case discordgo.ChannelTypeGuildText:
		return KindText
	case discordgo.ChannelTypeGuildVoice:
		return KindVoice
	case discordgo.ChannelTypeGuildForum:
		return KindForum
	case discordgo.ChannelTypeGuildStageVoice:
		return KindStage
	case discordgo.ChannelTypeGuildNews:
		return KindNews
	case discordgo.ChannelTypeGuildCategory:
		return KindCategory
	default:
		return KindOther
	}
}

type Channel struct {
	ID       string
	Name     string
	Kind     Kind
	ParentID string
	Position int

	// resolved against the full guild listing, not the filtered one
	ParentName       string
	CategoryPosition int
}

// Uncategorized is true for non-category channels outside any category.
func (c Channel) Uncategorized() bool {
	return c.Kind != KindCategory && c.ParentName == ""
}

func (c Channel) Annotation() string {
	s := c.Kind.Icon() + " " + c.Kind.String()
	if c.ParentName != "" {
		s += " in " + c.ParentName
	}
	return s
}
