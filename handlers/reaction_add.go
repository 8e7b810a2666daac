package handlers

import (
	"starboard-bot/bot"
	"starboard-bot/starboard"

	"github.com/bwmarrin/discordgo"
)

// ReactionAdd feeds reaction-added events into the curation pipeline. Every
// reaction re-evaluates the message, so star counts that crossed the
// threshold since the last look get picked up regardless of which emoji
// triggered the event.
func ReactionAdd(b *bot.Bot) func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	return func(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
		// The bot's own acknowledgement reactions come back as events too.
		if s.State.User != nil && r.UserID == s.State.User.ID {
			return
		}

		b.Orchestrator.HandleReaction(starboard.ReactionTrigger{
			MessageID: r.MessageID,
			ChannelID: r.ChannelID,
			GuildID:   r.GuildID,
			ReactorID: r.UserID,
		})
	}
}
