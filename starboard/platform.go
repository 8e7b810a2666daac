package starboard

import (
	"errors"

	"starboard-bot/models"
)

// ErrMessageNotFound is returned by FetchMessage when the referenced message
// vanished before processing. The pipeline treats it as a silent abort.
var ErrMessageNotFound = errors.New("message not found")

// Platform is the collaborator boundary: everything the pipeline needs from
// the chat platform. The production implementation wraps a discordgo session;
// tests substitute a mock.
type Platform interface {
	// FetchMessage reads a fresh snapshot of a source message.
	FetchMessage(channelID, messageID string) (*models.MessageSnapshot, error)

	// ResolveNickname returns the member's guild nickname, or "" when none is
	// set or the lookup fails.
	ResolveNickname(guildID, userID string) string

	// ListReactionUsers returns the account IDs that reacted with the given
	// emoji on a message.
	ListReactionUsers(channelID, messageID, emoji string) ([]string, error)

	// SelfID returns the bot's own account ID.
	SelfID() string

	// CreatePublication posts a curated copy to the starboard channel and
	// returns the new publication's message ID.
	CreatePublication(channelID string, p *models.CurationPayload) (string, error)

	// EditPublication rewrites an existing publication in place.
	EditPublication(channelID, publicationID string, p *models.CurationPayload) error

	// ApplyReaction adds a reaction to a source message.
	ApplyReaction(channelID, messageID, emoji string) error

	// SendReply posts a reply to a source message.
	SendReply(channelID, messageID, text string) error
}
