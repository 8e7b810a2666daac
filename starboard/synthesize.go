package starboard

import (
	"fmt"

	"starboard-bot/models"
)

// imageExtractor pulls one candidate image URL out of a snapshot. There are
// many places an image can live in a message; the extractors below encode the
// precedence order explicitly, first non-empty match wins.
type imageExtractor func(*models.MessageSnapshot) string

var imageExtractors = []imageExtractor{
	func(m *models.MessageSnapshot) string {
		if len(m.Attachments) > 0 {
			return m.Attachments[0].URL
		}
		return ""
	},
	func(m *models.MessageSnapshot) string {
		if len(m.Embeds) > 0 {
			return m.Embeds[0].ThumbnailURL
		}
		return ""
	},
	func(m *models.MessageSnapshot) string {
		if len(m.Embeds) > 0 {
			return m.Embeds[0].ImageURL
		}
		return ""
	},
	func(m *models.MessageSnapshot) string {
		if len(m.Embeds) > 0 {
			return m.Embeds[0].VideoURL
		}
		return ""
	},
}

// extractImage returns the snapshot's display image, or "" when none exists.
func extractImage(m *models.MessageSnapshot) string {
	for _, extract := range imageExtractors {
		if url := extract(m); url != "" {
			return url
		}
	}
	return ""
}

// NicknameResolver looks up a member's per-guild nickname. It returns "" when
// no nickname is set or the lookup fails.
type NicknameResolver func(guildID, userID string) string

// Synthesize builds the canonical display payload for a snapshot. It is
// deterministic over the snapshot contents plus one optional nickname lookup
// and performs no other calls.
func Synthesize(m *models.MessageSnapshot, emoji string, resolve NicknameResolver) *models.CurationPayload {
	// Body precedence: own content, else first embed's title, else empty.
	body := m.Content
	if body == "" && len(m.Embeds) > 0 {
		body = m.Embeds[0].Title
	}

	if m.Quoted != nil {
		body = fmt.Sprintf("> %s said: %s\n\n%s", m.Quoted.AuthorName, m.Quoted.Content, body)
	}

	displayName := m.Author.DisplayName
	if displayName == "" {
		displayName = m.Author.AccountName
	}
	if m.GuildID != "" && resolve != nil {
		if nick := resolve(m.GuildID, m.Author.ID); nick != "" {
			displayName = nick
		}
	}

	stars, _ := m.ReactionTally(emoji)
	link := m.Link()

	return &models.CurationPayload{
		AuthorLabel: fmt.Sprintf("%s (%s)", displayName, m.Author.AccountName),
		AuthorIcon:  m.Author.AvatarURL,
		Body:        fmt.Sprintf("%s\n\n👉 [Original Message](%s)", body, link),
		ImageURL:    extractImage(m),
		SourceLink:  link,
		StarCount:   stars,
		Timestamp:   m.Timestamp,
	}
}
