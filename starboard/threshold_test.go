package starboard

import (
	"testing"

	"starboard-bot/models"
)

func snapshotWithStars(emoji string, count int) *models.MessageSnapshot {
	return &models.MessageSnapshot{
		ID:        "1001",
		ChannelID: "2001",
		Reactions: []models.ReactionCount{{Emoji: emoji, Count: count}},
	}
}

func TestMeetsThreshold(t *testing.T) {
	if MeetsThreshold(snapshotWithStars("⭐", 2), "⭐", 3) {
		t.Error("2 stars should not meet a threshold of 3")
	}
	if !MeetsThreshold(snapshotWithStars("⭐", 3), "⭐", 3) {
		t.Error("3 stars should meet a threshold of 3")
	}
	if !MeetsThreshold(snapshotWithStars("⭐", 5), "⭐", 3) {
		t.Error("5 stars should meet a threshold of 3")
	}
}

func TestMeetsThresholdAbsentReaction(t *testing.T) {
	m := &models.MessageSnapshot{ID: "1001"}
	if MeetsThreshold(m, "⭐", 3) {
		t.Error("message without the endorsement reaction should not qualify")
	}
	// Strict zero-threshold rule: the reaction kind must be present at all.
	if MeetsThreshold(m, "⭐", 0) {
		t.Error("message without the endorsement reaction should not qualify even at threshold 0")
	}
}

func TestMeetsThresholdZeroCountEntry(t *testing.T) {
	if !MeetsThreshold(snapshotWithStars("⭐", 0), "⭐", 0) {
		t.Error("a present reaction entry with count 0 should qualify at threshold 0")
	}
}

func TestMeetsThresholdIgnoresOtherReactions(t *testing.T) {
	m := &models.MessageSnapshot{
		ID:        "1001",
		Reactions: []models.ReactionCount{{Emoji: "🎉", Count: 10}},
	}
	if MeetsThreshold(m, "⭐", 1) {
		t.Error("unrelated reactions must not count toward the threshold")
	}
}
