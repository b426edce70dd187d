package channels

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		kind   Kind
		want   bool
	}{
		{"zero value matches nothing", Filter{}, KindText, false},
		{"selected kind", NewFilter(KindText), KindText, true},
		{"unselected kind", NewFilter(KindText), KindVoice, false},
		{"all matches other", AllKinds(), KindOther, true},
		{"several kinds", NewFilter(KindForum, KindStage), KindStage, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Match(tt.kind); got != tt.want {
				t.Fatalf("Match(%s) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestFilterEmpty(t *testing.T) {
	if !(Filter{}).Empty() {
		t.Fatal("zero filter should be empty")
	}
	if NewFilter(KindNews).Empty() {
		t.Fatal("filter with a kind should not be empty")
	}
	if AllKinds().Empty() {
		t.Fatal("all filter should not be empty")
	}
}

func TestFilterString(t *testing.T) {
	if got := NewFilter(KindVoice, KindText).String(); got != "text,voice" {
		t.Fatalf("String() = %q", got)
	}
	if got := AllKinds().String(); got != "all" {
		t.Fatalf("String() = %q", got)
	}
}

func TestKindOf(t *testing.T) {
	cases := map[discordgo.ChannelType]Kind{
		discordgo.ChannelTypeGuildText:         KindText,
		discordgo.ChannelTypeGuildVoice:        KindVoice,
		discordgo.ChannelTypeGuildForum:        KindForum,
		discordgo.ChannelTypeGuildStageVoice:   KindStage,
		discordgo.ChannelTypeGuildNews:         KindNews,
		discordgo.ChannelTypeGuildCategory:     KindCategory,
		discordgo.ChannelTypeGuildPublicThread: KindOther,
	}
	for in, want := range cases {
		if got := KindOf(in); got != want {
			t.Errorf("KindOf(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %s, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("thread"); ok {
		t.Error("ParseKind accepted unknown kind")
	}
}
