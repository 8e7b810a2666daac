package models

import "time"

// Author identifies who wrote a source message.
type Author struct {
	ID          string `json:"id"`
	AccountName string `json:"account_name"` // unique account handle
	DisplayName string `json:"display_name"` // global display name
	AvatarURL   string `json:"avatar_url"`
}

// Attachment is a file attached to a source message.
type Attachment struct {
	URL string `json:"url"`
}

// Embed is a rich embed carried by a source message. Only the fields the
// synthesizer reads are kept.
type Embed struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	ImageURL     string `json:"image_url"`
	VideoURL     string `json:"video_url"`
}

// QuotedMessage is the message a snapshot replies to, if any.
type QuotedMessage struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}

// ReactionCount is the tally of one reaction kind on a message.
type ReactionCount struct {
	Emoji string `json:"emoji"`
	Count int    `json:"count"`
}

// MessageSnapshot is a point-in-time read of a source message. It is built
// fresh for every pipeline pass and never mutated afterwards; reaction counts
// go stale the moment they are read.
type MessageSnapshot struct {
	ID          string          `json:"id"`
	ChannelID   string          `json:"channel_id"`
	GuildID     string          `json:"guild_id"` // empty for DMs
	Author      Author          `json:"author"`
	Content     string          `json:"content"`
	Attachments []Attachment    `json:"attachments"`
	Embeds      []Embed         `json:"embeds"`
	Quoted      *QuotedMessage  `json:"quoted,omitempty"`
	Reactions   []ReactionCount `json:"reactions"`
	Timestamp   time.Time       `json:"timestamp"`
}

// ReactionTally returns the count for one reaction kind and whether that kind
// is present on the message at all.
func (m *MessageSnapshot) ReactionTally(emoji string) (int, bool) {
	for _, r := range m.Reactions {
		if r.Emoji == emoji {
			return r.Count, true
		}
	}
	return 0, false
}

// Link returns the jump URL of the source message.
func (m *MessageSnapshot) Link() string {
	guild := m.GuildID
	if guild == "" {
		guild = "@me"
	}
	return "https://discord.com/channels/" + guild + "/" + m.ChannelID + "/" + m.ID
}

// CurationPayload is the canonical display form of a promoted message. It is
// derived from a snapshot on every publish or update call and never stored.
type CurationPayload struct {
	AuthorLabel string    // "DisplayName (AccountName)"
	AuthorIcon  string    // avatar URL
	Body        string    // citation + content + source link
	ImageURL    string    // empty when no image was found
	SourceLink  string
	StarCount   int
	Timestamp   time.Time
}
