package starboard

import (
	"fmt"
	"time"

	"starboard-bot/models"

	"github.com/bwmarrin/discordgo"
)

// DiscordPlatform implements Platform on top of a discordgo session. All
// rate limiting, retries and reconnects are discordgo's business.
type DiscordPlatform struct {
	session *discordgo.Session
	guildID string // fallback for REST responses that omit the guild
	emoji   string // endorsement emoji, rendered in the footer
}

// NewDiscordPlatform wraps an open session.
func NewDiscordPlatform(session *discordgo.Session, guildID, emoji string) *DiscordPlatform {
	return &DiscordPlatform{session: session, guildID: guildID, emoji: emoji}
}

// SnapshotFromMessage converts a discordgo message into an immutable
// snapshot. REST-fetched messages carry no guild ID, so callers supply a
// fallback.
func SnapshotFromMessage(m *discordgo.Message, fallbackGuildID string) *models.MessageSnapshot {
	guildID := m.GuildID
	if guildID == "" {
		guildID = fallbackGuildID
	}

	snapshot := &models.MessageSnapshot{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   guildID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}

	if m.Author != nil {
		snapshot.Author = models.Author{
			ID:          m.Author.ID,
			AccountName: m.Author.Username,
			DisplayName: m.Author.GlobalName,
			AvatarURL:   m.Author.AvatarURL(""),
		}
	}

	for _, att := range m.Attachments {
		snapshot.Attachments = append(snapshot.Attachments, models.Attachment{URL: att.URL})
	}

	for _, embed := range m.Embeds {
		e := models.Embed{
			Title:       embed.Title,
			Description: embed.Description,
		}
		if embed.Thumbnail != nil {
			e.ThumbnailURL = embed.Thumbnail.URL
		}
		if embed.Image != nil {
			e.ImageURL = embed.Image.URL
		}
		if embed.Video != nil {
			e.VideoURL = embed.Video.URL
		}
		snapshot.Embeds = append(snapshot.Embeds, e)
	}

	if ref := m.ReferencedMessage; ref != nil && ref.Author != nil {
		snapshot.Quoted = &models.QuotedMessage{
			AuthorName: ref.Author.Username,
			Content:    ref.Content,
		}
	}

	for _, r := range m.Reactions {
		if r.Emoji == nil {
			continue
		}
		snapshot.Reactions = append(snapshot.Reactions, models.ReactionCount{
			Emoji: r.Emoji.Name,
			Count: r.Count,
		})
	}

	return snapshot
}

// FetchMessage reads a fresh snapshot of a source message.
func (d *DiscordPlatform) FetchMessage(channelID, messageID string) (*models.MessageSnapshot, error) {
	m, err := d.session.ChannelMessage(channelID, messageID)
	if err != nil {
		if restErr, ok := err.(*discordgo.RESTError); ok && restErr.Response != nil && restErr.Response.StatusCode == 404 {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to fetch message %s: %w", messageID, err)
	}
	return SnapshotFromMessage(m, d.guildID), nil
}

// ResolveNickname returns the member's guild nickname, or "" when none is set
// or the lookup fails.
func (d *DiscordPlatform) ResolveNickname(guildID, userID string) string {
	member, err := d.session.GuildMember(guildID, userID)
	if err != nil {
		return ""
	}
	return member.Nick
}

// ListReactionUsers returns the account IDs that reacted with an emoji.
func (d *DiscordPlatform) ListReactionUsers(channelID, messageID, emoji string) ([]string, error) {
	users, err := d.session.MessageReactions(channelID, messageID, emoji, 100, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to list %s reactions on message %s: %w", emoji, messageID, err)
	}

	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}

// SelfID returns the bot's own account ID.
func (d *DiscordPlatform) SelfID() string {
	if d.session.State != nil && d.session.State.User != nil {
		return d.session.State.User.ID
	}
	return ""
}

// renderEmbed turns a payload into the starboard embed.
func (d *DiscordPlatform) renderEmbed(p *models.CurationPayload) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Author: &discordgo.MessageEmbedAuthor{
			Name:    p.AuthorLabel,
			IconURL: p.AuthorIcon,
		},
		Description: p.Body,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s %d", d.emoji, p.StarCount),
		},
		Timestamp: p.Timestamp.Format(time.RFC3339),
	}
	if p.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: p.ImageURL}
	}
	return embed
}

// CreatePublication posts the curated copy and returns its message ID.
func (d *DiscordPlatform) CreatePublication(channelID string, p *models.CurationPayload) (string, error) {
	m, err := d.session.ChannelMessageSendEmbed(channelID, d.renderEmbed(p))
	if err != nil {
		return "", fmt.Errorf("failed to send publication to channel %s: %w", channelID, err)
	}
	return m.ID, nil
}

// EditPublication rewrites an existing publication in place.
func (d *DiscordPlatform) EditPublication(channelID, publicationID string, p *models.CurationPayload) error {
	if _, err := d.session.ChannelMessageEditEmbed(channelID, publicationID, d.renderEmbed(p)); err != nil {
		return fmt.Errorf("failed to edit publication %s: %w", publicationID, err)
	}
	return nil
}

// ApplyReaction adds a reaction to a source message.
func (d *DiscordPlatform) ApplyReaction(channelID, messageID, emoji string) error {
	if err := d.session.MessageReactionAdd(channelID, messageID, emoji); err != nil {
		return fmt.Errorf("failed to react to message %s: %w", messageID, err)
	}
	return nil
}

// SendReply posts a reply to a source message.
func (d *DiscordPlatform) SendReply(channelID, messageID, text string) error {
	ref := &discordgo.MessageReference{MessageID: messageID, ChannelID: channelID}
	if _, err := d.session.ChannelMessageSendReply(channelID, text, ref); err != nil {
		return fmt.Errorf("failed to reply to message %s: %w", messageID, err)
	}
	return nil
}
