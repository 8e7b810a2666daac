package models

import (
	"reflect"
	"testing"
)

func TestIsWhitelisted(t *testing.T) {
	cfg := &StarboardConfig{
		EnableChannelWhitelist: true,
		Channels: []PriorityChannel{
			{ID: "100"},
			{ID: "200", Priority: PriorityHigh},
		},
	}

	if !cfg.IsWhitelisted("100") || !cfg.IsWhitelisted("200") {
		t.Error("listed channels should be whitelisted")
	}
	if cfg.IsWhitelisted("300") {
		t.Error("unlisted channel should not be whitelisted")
	}

	cfg.EnableChannelWhitelist = false
	if !cfg.IsWhitelisted("300") {
		t.Error("with the whitelist disabled every channel is allowed")
	}
}

func TestChannelsByPriority(t *testing.T) {
	cfg := &StarboardConfig{
		Channels: []PriorityChannel{
			{ID: "h1", Priority: PriorityHigh},
			{ID: "m1"}, // no priority defaults to medium
			{ID: "m2", Priority: PriorityMedium},
			{ID: "l1", Priority: PriorityLow},
			{ID: "h2", Priority: PriorityHigh},
		},
	}

	if got := cfg.ChannelsByPriority(PriorityHigh); !reflect.DeepEqual(got, []string{"h1", "h2"}) {
		t.Errorf("high tier: got %v", got)
	}
	if got := cfg.ChannelsByPriority(PriorityMedium); !reflect.DeepEqual(got, []string{"m1", "m2"}) {
		t.Errorf("medium tier: got %v", got)
	}
	if got := cfg.ChannelsByPriority(PriorityLow); !reflect.DeepEqual(got, []string{"l1"}) {
		t.Errorf("low tier: got %v", got)
	}
}

func TestScanTierOrder(t *testing.T) {
	want := []Priority{PriorityHigh, PriorityMedium, PriorityLow}
	if !reflect.DeepEqual(ScanTiers, want) {
		t.Errorf("scan tiers must run highest first, got %v", ScanTiers)
	}
}

func TestSnapshotLink(t *testing.T) {
	m := &MessageSnapshot{ID: "1", ChannelID: "2", GuildID: "3"}
	if got := m.Link(); got != "https://discord.com/channels/3/2/1" {
		t.Errorf("unexpected link %q", got)
	}

	m.GuildID = ""
	if got := m.Link(); got != "https://discord.com/channels/@me/2/1" {
		t.Errorf("unexpected DM link %q", got)
	}
}

func TestReactionTally(t *testing.T) {
	m := &MessageSnapshot{Reactions: []ReactionCount{{Emoji: "⭐", Count: 2}}}

	count, present := m.ReactionTally("⭐")
	if !present || count != 2 {
		t.Errorf("expected (2, true), got (%d, %v)", count, present)
	}

	count, present = m.ReactionTally("🌠")
	if present || count != 0 {
		t.Errorf("expected (0, false), got (%d, %v)", count, present)
	}
}
