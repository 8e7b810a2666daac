package starboard

import (
	"strings"
	"testing"
	"time"

	"starboard-bot/models"
)

func baseSnapshot() *models.MessageSnapshot {
	return &models.MessageSnapshot{
		ID:        "1001",
		ChannelID: "2001",
		GuildID:   "3001",
		Author: models.Author{
			ID:          "4001",
			AccountName: "stargazer",
			DisplayName: "Star Gazer",
			AvatarURL:   "https://cdn.example/avatar.png",
		},
		Content:   "look at this",
		Reactions: []models.ReactionCount{{Emoji: "⭐", Count: 4}},
		Timestamp: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSynthesizeBodyFallsBackToEmbedTitle(t *testing.T) {
	m := baseSnapshot()
	m.Content = ""
	m.Embeds = []models.Embed{{Title: "Hello"}}

	p := Synthesize(m, "⭐", nil)
	if !strings.HasPrefix(p.Body, "Hello\n\n") {
		t.Errorf("expected body to start with the embed title, got %q", p.Body)
	}
}

func TestSynthesizeEmptyBodyWithoutEmbeds(t *testing.T) {
	m := baseSnapshot()
	m.Content = ""

	p := Synthesize(m, "⭐", nil)
	if !strings.HasPrefix(p.Body, "\n\n👉 [Original Message](") {
		t.Errorf("expected empty body plus source link, got %q", p.Body)
	}
}

func TestSynthesizeQuotedCitation(t *testing.T) {
	m := baseSnapshot()
	m.Quoted = &models.QuotedMessage{AuthorName: "alice", Content: "the original take"}

	p := Synthesize(m, "⭐", nil)
	want := "> alice said: the original take\n\nlook at this"
	if !strings.HasPrefix(p.Body, want) {
		t.Errorf("expected body to start with %q, got %q", want, p.Body)
	}
}

func TestSynthesizeImagePrecedence(t *testing.T) {
	embed := models.Embed{
		ThumbnailURL: "https://cdn.example/thumb.png",
		ImageURL:     "https://cdn.example/image.png",
		VideoURL:     "https://cdn.example/video.mp4",
	}

	// Attachment beats every embed field.
	m := baseSnapshot()
	m.Attachments = []models.Attachment{{URL: "https://cdn.example/att.png"}}
	m.Embeds = []models.Embed{embed}
	if got := Synthesize(m, "⭐", nil).ImageURL; got != "https://cdn.example/att.png" {
		t.Errorf("attachment should win, got %q", got)
	}

	// Thumbnail beats image and video.
	m = baseSnapshot()
	m.Embeds = []models.Embed{embed}
	if got := Synthesize(m, "⭐", nil).ImageURL; got != "https://cdn.example/thumb.png" {
		t.Errorf("thumbnail should win without attachments, got %q", got)
	}

	// Image beats video.
	embed.ThumbnailURL = ""
	m.Embeds = []models.Embed{embed}
	if got := Synthesize(m, "⭐", nil).ImageURL; got != "https://cdn.example/image.png" {
		t.Errorf("image should win without thumbnail, got %q", got)
	}

	embed.ImageURL = ""
	m.Embeds = []models.Embed{embed}
	if got := Synthesize(m, "⭐", nil).ImageURL; got != "https://cdn.example/video.mp4" {
		t.Errorf("video should be the last fallback, got %q", got)
	}

	embed.VideoURL = ""
	m.Embeds = []models.Embed{embed}
	if got := Synthesize(m, "⭐", nil).ImageURL; got != "" {
		t.Errorf("expected no image, got %q", got)
	}
}

func TestSynthesizeAuthorLabel(t *testing.T) {
	m := baseSnapshot()

	p := Synthesize(m, "⭐", nil)
	if p.AuthorLabel != "Star Gazer (stargazer)" {
		t.Errorf("expected display name label, got %q", p.AuthorLabel)
	}

	resolve := func(guildID, userID string) string {
		if guildID == "3001" && userID == "4001" {
			return "Gazer of Stars"
		}
		return ""
	}
	p = Synthesize(m, "⭐", resolve)
	if p.AuthorLabel != "Gazer of Stars (stargazer)" {
		t.Errorf("expected nickname label, got %q", p.AuthorLabel)
	}
}

func TestSynthesizeNicknameSkippedOutsideGuilds(t *testing.T) {
	m := baseSnapshot()
	m.GuildID = ""

	called := false
	p := Synthesize(m, "⭐", func(guildID, userID string) string {
		called = true
		return "nick"
	})
	if called {
		t.Error("nickname resolution should be skipped without a guild")
	}
	if p.AuthorLabel != "Star Gazer (stargazer)" {
		t.Errorf("unexpected label %q", p.AuthorLabel)
	}
}

func TestSynthesizeLinkAndStars(t *testing.T) {
	m := baseSnapshot()

	p := Synthesize(m, "⭐", nil)
	wantLink := "https://discord.com/channels/3001/2001/1001"
	if p.SourceLink != wantLink {
		t.Errorf("expected link %q, got %q", wantLink, p.SourceLink)
	}
	if !strings.HasSuffix(p.Body, "👉 [Original Message]("+wantLink+")") {
		t.Errorf("body should end with the source link, got %q", p.Body)
	}
	if p.StarCount != 4 {
		t.Errorf("expected 4 stars, got %d", p.StarCount)
	}
	if !p.Timestamp.Equal(m.Timestamp) {
		t.Errorf("payload timestamp should mirror the snapshot")
	}
}
