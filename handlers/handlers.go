package handlers

import (
	"fmt"
	"log"

	"starboard-bot/bot"

	"github.com/bwmarrin/discordgo"
)

// Register all handlers to the bot.
func Register(b *bot.Bot) {
	b.Session.AddHandler(ReactionAdd(b))
	b.Session.AddHandler(InteractionCreate(b))

	// Log the account and set the presence once the gateway is ready.
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
		if err := s.UpdateGameStatus(0, fmt.Sprintf("on v%s ⭐", bot.Version)); err != nil {
			log.Printf("Could not set presence: %v", err)
		}
	})
}
